package query

import "github.com/livp123/logscope/internal/entry"

// Actors returns every actor seen in rng. An entry without an actor
// contributes the empty string.
func (e *Engine) Actors(rng TimeRange) Set[string] {
	return collect(e, rng, anyEntry, pickActor)
}

func (e *Engine) ActorCount(rng TimeRange) int {
	return e.Actors(rng).Len()
}

// DistinctEventCountForActor counts the distinct event kinds actor produced.
func (e *Engine) DistinctEventCountForActor(actor string, rng TimeRange) int {
	return collect(e, rng, withActor(actor), pickEvent).Len()
}

func (e *Engine) ActorsForOrigin(origin string, rng TimeRange) Set[string] {
	return collect(e, rng, withOrigin(origin), pickActor)
}

// ActorsWhoLoggedIn counts any LOGIN entry, whatever its outcome.
func (e *Engine) ActorsWhoLoggedIn(rng TimeRange) Set[string] {
	return collect(e, rng, withEvent(entry.EventLogin), pickActor)
}

// ActorsWhoDownloadedPlugin only counts successful downloads.
func (e *Engine) ActorsWhoDownloadedPlugin(rng TimeRange) Set[string] {
	match := allOf(withEvent(entry.EventDownloadPlugin), withOutcome(entry.OutcomeOK))
	return collect(e, rng, match, pickActor)
}

// ActorsWhoSentMessage only counts successfully sent messages.
func (e *Engine) ActorsWhoSentMessage(rng TimeRange) Set[string] {
	match := allOf(withEvent(entry.EventSendMessage), withOutcome(entry.OutcomeOK))
	return collect(e, rng, match, pickActor)
}

func (e *Engine) ActorsWhoAttemptedTask(rng TimeRange) Set[string] {
	return collect(e, rng, withEvent(entry.EventAttemptTask), pickActor)
}

func (e *Engine) ActorsWhoAttemptedTaskNumber(task int, rng TimeRange) Set[string] {
	return collect(e, rng, withTask(entry.EventAttemptTask, task), pickActor)
}

func (e *Engine) ActorsWhoCompletedTask(rng TimeRange) Set[string] {
	return collect(e, rng, withEvent(entry.EventCompleteTask), pickActor)
}

func (e *Engine) ActorsWhoCompletedTaskNumber(task int, rng TimeRange) Set[string] {
	return collect(e, rng, withTask(entry.EventCompleteTask, task), pickActor)
}
