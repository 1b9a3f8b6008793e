package query

import "github.com/livp123/logscope/internal/entry"

func (e *Engine) Outcomes(rng TimeRange) Set[entry.Outcome] {
	return collect(e, rng, anyEntry, pickOutcome)
}

func (e *Engine) OutcomesForEvent(kind entry.EventKind, rng TimeRange) Set[entry.Outcome] {
	return collect(e, rng, withEvent(kind), pickOutcome)
}
