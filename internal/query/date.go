package query

import (
	"time"

	"github.com/livp123/logscope/internal/entry"
)

// pickTime yields the instant of entries that carry a timestamp.
func pickTime(en entry.Entry) (time.Time, bool) {
	return en.Timestamp().Time()
}

// Dates returns every timestamp seen in rng. Entries without a timestamp
// contribute nothing.
func (e *Engine) Dates(rng TimeRange) Set[time.Time] {
	return collect(e, rng, anyEntry, pickTime)
}

func (e *Engine) DatesForActorAndEvent(actor string, kind entry.EventKind, rng TimeRange) Set[time.Time] {
	return collect(e, rng, allOf(withActor(actor), withEvent(kind)), pickTime)
}

func (e *Engine) DatesWhenFailed(rng TimeRange) Set[time.Time] {
	return collect(e, rng, withOutcome(entry.OutcomeFailed), pickTime)
}

func (e *Engine) DatesWhenErrored(rng TimeRange) Set[time.Time] {
	return collect(e, rng, withOutcome(entry.OutcomeError), pickTime)
}

// DatesActorSentMessage includes messages of any outcome.
func (e *Engine) DatesActorSentMessage(actor string, rng TimeRange) Set[time.Time] {
	return e.DatesForActorAndEvent(actor, entry.EventSendMessage, rng)
}

// DatesActorDownloadedPlugin includes downloads of any outcome.
func (e *Engine) DatesActorDownloadedPlugin(actor string, rng TimeRange) Set[time.Time] {
	return e.DatesForActorAndEvent(actor, entry.EventDownloadPlugin, rng)
}

// EarliestLogin returns the first LOGIN of actor in rng.
func (e *Engine) EarliestLogin(actor string, rng TimeRange) (time.Time, bool) {
	return e.earliest(rng, allOf(withActor(actor), withEvent(entry.EventLogin)))
}

// EarliestAttempt returns the first ATTEMPT_TASK of actor for task in rng.
func (e *Engine) EarliestAttempt(actor string, task int, rng TimeRange) (time.Time, bool) {
	return e.earliest(rng, allOf(withActor(actor), withTask(entry.EventAttemptTask, task)))
}

// EarliestCompletion returns the first COMPLETE_TASK of actor for task in rng.
func (e *Engine) EarliestCompletion(actor string, task int, rng TimeRange) (time.Time, bool) {
	return e.earliest(rng, allOf(withActor(actor), withTask(entry.EventCompleteTask, task)))
}

func (e *Engine) earliest(rng TimeRange, match predicate) (time.Time, bool) {
	var (
		first time.Time
		found bool
	)
	e.each(rng, func(en entry.Entry) {
		if !match(en) {
			return
		}
		t, ok := en.Timestamp().Time()
		if !ok {
			return
		}
		if !found || t.Before(first) {
			first, found = t, true
		}
	})
	return first, found
}
