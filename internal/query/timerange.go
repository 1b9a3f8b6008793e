package query

import (
	"time"

	"github.com/livp123/logscope/internal/entry"
)

// TimeRange is an inclusive [after, before] window; either side may be open.
type TimeRange struct {
	after     time.Time
	before    time.Time
	hasAfter  bool
	hasBefore bool
}

// Unbounded matches every entry, including entries without a timestamp.
func Unbounded() TimeRange { return TimeRange{} }

// Between bounds both sides, inclusive.
func Between(after, before time.Time) TimeRange {
	return TimeRange{after: after, before: before, hasAfter: true, hasBefore: true}
}

// Since bounds the lower side only.
func Since(after time.Time) TimeRange {
	return TimeRange{after: after, hasAfter: true}
}

// Until bounds the upper side only.
func Until(before time.Time) TimeRange {
	return TimeRange{before: before, hasBefore: true}
}

// Range builds a TimeRange from optional bounds; nil means open.
func Range(after, before *time.Time) TimeRange {
	var r TimeRange
	if after != nil {
		r.after, r.hasAfter = *after, true
	}
	if before != nil {
		r.before, r.hasBefore = *before, true
	}
	return r
}

func (r TimeRange) After() (time.Time, bool)  { return r.after, r.hasAfter }
func (r TimeRange) Before() (time.Time, bool) { return r.before, r.hasBefore }

// IsUnbounded reports whether neither side is set.
func (r TimeRange) IsUnbounded() bool {
	return !r.hasAfter && !r.hasBefore
}

// Contains reports whether ts falls in the range. Both bounds are inclusive.
// A missing timestamp is only contained in the unbounded range.
func (r TimeRange) Contains(ts entry.Timestamp) bool {
	t, ok := ts.Time()
	if !ok {
		return r.IsUnbounded()
	}
	if r.hasAfter && t.Before(r.after) {
		return false
	}
	if r.hasBefore && t.After(r.before) {
		return false
	}
	return true
}

func (r TimeRange) String() string {
	lo, hi := "-inf", "+inf"
	if r.hasAfter {
		lo = r.after.Format(entry.CanonicalLayout)
	}
	if r.hasBefore {
		hi = r.before.Format(entry.CanonicalLayout)
	}
	return "[" + lo + ", " + hi + "]"
}
