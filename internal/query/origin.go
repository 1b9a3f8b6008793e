package query

import "github.com/livp123/logscope/internal/entry"

// UniqueOrigins returns every origin address seen in rng.
func (e *Engine) UniqueOrigins(rng TimeRange) Set[string] {
	return collect(e, rng, anyEntry, pickOrigin)
}

// OriginCount is the number of distinct origin addresses in rng.
func (e *Engine) OriginCount(rng TimeRange) int {
	return e.UniqueOrigins(rng).Len()
}

func (e *Engine) OriginsForActor(actor string, rng TimeRange) Set[string] {
	return collect(e, rng, withActor(actor), pickOrigin)
}

func (e *Engine) OriginsForEvent(kind entry.EventKind, rng TimeRange) Set[string] {
	return collect(e, rng, withEvent(kind), pickOrigin)
}

func (e *Engine) OriginsForOutcome(o entry.Outcome, rng TimeRange) Set[string] {
	return collect(e, rng, withOutcome(o), pickOrigin)
}
