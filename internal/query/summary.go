package query

import (
	"time"

	"github.com/livp123/logscope/internal/entry"
)

// Summary describes the entries inside a range.
type Summary struct {
	Entries       int
	Origins       int
	Actors        int
	Events        int
	WithoutTime   int
	Earliest      time.Time
	Latest        time.Time
	HasTimestamps bool
}

// Summary computes a Summary in one pass.
func (e *Engine) Summary(rng TimeRange) Summary {
	var (
		s       Summary
		origins = make(Set[string])
		actors  = make(Set[string])
		events  = make(Set[entry.EventKind])
	)
	e.each(rng, func(en entry.Entry) {
		s.Entries++
		origins.Add(en.Origin())
		actors.Add(en.Actor())
		events.Add(en.Event())

		t, ok := en.Timestamp().Time()
		if !ok {
			s.WithoutTime++
			return
		}
		if !s.HasTimestamps || t.Before(s.Earliest) {
			s.Earliest = t
		}
		if !s.HasTimestamps || t.After(s.Latest) {
			s.Latest = t
		}
		s.HasTimestamps = true
	})
	s.Origins = origins.Len()
	s.Actors = actors.Len()
	s.Events = events.Len()
	return s
}
