package query

import "github.com/livp123/logscope/internal/entry"

// EventCount is the number of distinct event kinds in rng.
func (e *Engine) EventCount(rng TimeRange) int {
	return e.Events(rng).Len()
}

func (e *Engine) Events(rng TimeRange) Set[entry.EventKind] {
	return collect(e, rng, anyEntry, pickEvent)
}

func (e *Engine) EventsForOrigin(origin string, rng TimeRange) Set[entry.EventKind] {
	return collect(e, rng, withOrigin(origin), pickEvent)
}

func (e *Engine) EventsForActor(actor string, rng TimeRange) Set[entry.EventKind] {
	return collect(e, rng, withActor(actor), pickEvent)
}

func (e *Engine) FailedEvents(rng TimeRange) Set[entry.EventKind] {
	return collect(e, rng, withOutcome(entry.OutcomeFailed), pickEvent)
}

func (e *Engine) ErrorEvents(rng TimeRange) Set[entry.EventKind] {
	return collect(e, rng, withOutcome(entry.OutcomeError), pickEvent)
}

// AttemptCount is the number of ATTEMPT_TASK entries for task in rng.
func (e *Engine) AttemptCount(task int, rng TimeRange) int {
	return count(e, rng, withTask(entry.EventAttemptTask, task))
}

// CompletionCount is the number of COMPLETE_TASK entries for task in rng,
// whatever their outcome.
func (e *Engine) CompletionCount(task int, rng TimeRange) int {
	return count(e, rng, withTask(entry.EventCompleteTask, task))
}

// AttemptsPerTask maps every task number attempted in rng to its attempt count.
func (e *Engine) AttemptsPerTask(rng TimeRange) map[int]int {
	return e.perTask(entry.EventAttemptTask, rng)
}

// CompletionsPerTask maps every task number completed in rng to its completion count.
func (e *Engine) CompletionsPerTask(rng TimeRange) map[int]int {
	return e.perTask(entry.EventCompleteTask, rng)
}

// perTask tallies in a single pass over the range.
func (e *Engine) perTask(kind entry.EventKind, rng TimeRange) map[int]int {
	out := make(map[int]int)
	e.each(rng, func(en entry.Entry) {
		if en.Event() != kind {
			return
		}
		if task, ok := en.Task(); ok {
			out[task]++
		}
	})
	return out
}
