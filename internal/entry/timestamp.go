package entry

import "time"

const (
	// TimestampLayout accepts single or double digit day, month, hour, minute and second.
	TimestampLayout = "2.1.2006 15:4:5"
	// CanonicalLayout is used when an entry is written back out.
	CanonicalLayout = "02.01.2006 15:04:05"
)

// Timestamp is an optional point in time. An entry whose date and time tokens
// could not be parsed carries an invalid Timestamp that remembers the raw text.
//
// Timestamps are comparable: two valid values produced by the same Parser are
// equal exactly when they denote the same instant. Use UTC or Equal to compare
// timestamps built in different locations.
type Timestamp struct {
	t     time.Time
	valid bool
	raw   string
	err   error
}

// At returns a valid Timestamp for t. Any monotonic clock reading is dropped.
func At(t time.Time) Timestamp {
	return Timestamp{t: t.Round(0), valid: true}
}

// Missing returns an invalid Timestamp remembering the unparsed text.
func Missing(raw string) Timestamp {
	return Timestamp{raw: raw}
}

// Err returns why a missing timestamp could not be parsed. It is nil for
// valid timestamps and for Missing values built without a parse attempt.
func (ts Timestamp) Err() error { return ts.err }

// UTC returns ts with its instant expressed in UTC. Missing timestamps are
// returned unchanged.
func (ts Timestamp) UTC() Timestamp {
	if !ts.valid {
		return ts
	}
	return Timestamp{t: ts.t.UTC(), valid: true}
}

// Equal reports whether both timestamps are valid and denote the same instant.
func (ts Timestamp) Equal(other Timestamp) bool {
	return ts.valid && other.valid && ts.t.Equal(other.t)
}

// Time returns the point in time and whether it is present.
func (ts Timestamp) Time() (time.Time, bool) {
	return ts.t, ts.valid
}

func (ts Timestamp) Valid() bool { return ts.valid }

// Before reports whether ts is earlier than other. Missing timestamps sort last.
func (ts Timestamp) Before(other Timestamp) bool {
	switch {
	case !ts.valid:
		return false
	case !other.valid:
		return true
	default:
		return ts.t.Before(other.t)
	}
}

func (ts Timestamp) String() string {
	if !ts.valid {
		return ts.raw
	}
	return ts.t.Format(CanonicalLayout)
}
