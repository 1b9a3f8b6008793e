package query

import (
	"github.com/livp123/logscope/internal/entry"
	"github.com/livp123/logscope/internal/store"
	lserrors "github.com/livp123/logscope/pkg/errors"
)

// Engine answers queries over a Store. It holds no state of its own beyond the
// store reference, so one Engine may serve any number of goroutines.
type Engine struct {
	store *store.Store
}

// New creates an Engine over s.
func New(s *store.Store) *Engine {
	return &Engine{store: s}
}

// Store returns the underlying store.
func (e *Engine) Store() *store.Store {
	return e.store
}

// each calls fn for every entry inside rng, in insertion order.
func (e *Engine) each(rng TimeRange, fn func(entry.Entry)) {
	for _, en := range e.store.All() {
		if rng.Contains(en.Timestamp()) {
			fn(en)
		}
	}
}

// predicate selects entries after the range filter has been applied.
type predicate func(entry.Entry) bool

func anyEntry(entry.Entry) bool { return true }

func withOrigin(origin string) predicate {
	return func(en entry.Entry) bool { return en.Origin() == origin }
}

func withActor(actor string) predicate {
	return func(en entry.Entry) bool { return en.Actor() == actor }
}

func withEvent(kind entry.EventKind) predicate {
	return func(en entry.Entry) bool { return en.Event() == kind }
}

func withOutcome(o entry.Outcome) predicate {
	return func(en entry.Entry) bool { return en.Outcome() == o }
}

// withTask matches task events of the given kind carrying task number n.
func withTask(kind entry.EventKind, n int) predicate {
	return func(en entry.Entry) bool {
		if en.Event() != kind {
			return false
		}
		task, ok := en.Task()
		return ok && task == n
	}
}

func allOf(preds ...predicate) predicate {
	return func(en entry.Entry) bool {
		for _, p := range preds {
			if !p(en) {
				return false
			}
		}
		return true
	}
}

// collect projects every matching entry in rng through pick into a set.
func collect[T comparable](e *Engine, rng TimeRange, match predicate, pick func(entry.Entry) (T, bool)) Set[T] {
	out := make(Set[T])
	e.each(rng, func(en entry.Entry) {
		if !match(en) {
			return
		}
		if v, ok := pick(en); ok {
			out.Add(v)
		}
	})
	return out
}

func count(e *Engine, rng TimeRange, match predicate) int {
	n := 0
	e.each(rng, func(en entry.Entry) {
		if match(en) {
			n++
		}
	})
	return n
}

func pickOrigin(en entry.Entry) (string, bool)         { return en.Origin(), true }
func pickActor(en entry.Entry) (string, bool)          { return en.Actor(), true }
func pickEvent(en entry.Entry) (entry.EventKind, bool) { return en.Event(), true }
func pickOutcome(en entry.Entry) (entry.Outcome, bool) { return en.Outcome(), true }

// Project returns the distinct values of target among entries in rng. When
// where is non-nil only entries whose where.Field() dimension equals where
// are considered. Projecting a dimension filtered by itself is rejected with
// ErrUnsupportedFieldCombination.
func (e *Engine) Project(target Field, where *Value, rng TimeRange) (Set[Value], error) {
	pick, ok := extractors[target]
	if !ok {
		return nil, lserrors.NewFieldError(target.String())
	}

	match := anyEntry
	if where != nil {
		if where.Field() == target {
			return nil, lserrors.NewFieldCombinationError(target.String(), where.Field().String())
		}
		filterPick, ok := extractors[where.Field()]
		if !ok {
			return nil, lserrors.NewFieldError(where.Field().String())
		}
		want := *where
		match = func(en entry.Entry) bool {
			got, ok := filterPick(en)
			return ok && got == want
		}
	}

	return collect(e, rng, match, pick), nil
}
