package query

import (
	"cmp"
	"slices"
	"time"
)

// Set is an unordered collection of distinct values. A Set[time.Time] is
// keyed by instant: members are stored in UTC and Has matches the same
// instant in any location.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, v := range items {
		s.Add(v)
	}
	return s
}

func (s Set[T]) Add(v T) { s[setKey(v)] = struct{}{} }

func (s Set[T]) Has(v T) bool {
	_, ok := s[setKey(v)]
	return ok
}

// setKey strips location and monotonic reading from times.
func setKey[T comparable](v T) T {
	if t, ok := any(v).(time.Time); ok {
		return any(t.Round(0).UTC()).(T)
	}
	return v
}

func (s Set[T]) Len() int { return len(s) }

// Slice returns the members in unspecified order.
func (s Set[T]) Slice() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Sorted returns the members of an ordered set in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	out := s.Slice()
	slices.Sort(out)
	return out
}

// SortedFunc returns the members ordered by cmpFn.
func SortedFunc[T comparable](s Set[T], cmpFn func(a, b T) int) []T {
	out := s.Slice()
	slices.SortFunc(out, cmpFn)
	return out
}
