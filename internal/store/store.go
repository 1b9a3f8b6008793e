package store

import (
	"iter"

	"github.com/livp123/logscope/internal/entry"
)

// Store is an ordered, read-only collection of entries. Insertion order is the
// order lines were supplied, which is not necessarily chronological.
//
// A Store has no mutating methods, so concurrent readers need no locking.
type Store struct {
	entries []entry.Entry
}

// Len returns the number of entries.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// At returns the i-th entry in insertion order.
func (s *Store) At(i int) entry.Entry {
	return s.entries[i]
}

// All yields entries with their insertion index.
func (s *Store) All() iter.Seq2[int, entry.Entry] {
	return func(yield func(int, entry.Entry) bool) {
		if s == nil {
			return
		}
		for i, e := range s.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Builder accumulates entries during ingestion. It is not safe for
// concurrent use; ingestion folds lines into it from a single goroutine.
type Builder struct {
	entries []entry.Entry
	built   bool
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends e. Adding after Build panics.
func (b *Builder) Add(e entry.Entry) {
	if b.built {
		panic("store: Add called after Build")
	}
	b.entries = append(b.entries, e)
}

// Len returns the number of entries added so far.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Build freezes the builder and returns the Store. Build may be called more
// than once; every call returns a Store over the same entries.
func (b *Builder) Build() *Store {
	b.built = true
	return &Store{entries: b.entries[:len(b.entries):len(b.entries)]}
}

// FromEntries builds a Store from an existing slice, copying it.
func FromEntries(entries []entry.Entry) *Store {
	cp := make([]entry.Entry, len(entries))
	copy(cp, entries)
	return &Store{entries: cp}
}
