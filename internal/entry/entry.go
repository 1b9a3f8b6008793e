package entry

import (
	"strconv"
	"strings"
)

// Entry is one parsed log record. Entries are only produced by Parser and are
// never modified afterwards.
type Entry struct {
	origin  string
	actor   string
	ts      Timestamp
	event   EventKind
	task    int
	outcome Outcome
}

func (e Entry) Origin() string       { return e.origin }
func (e Entry) Actor() string        { return e.actor }
func (e Entry) Timestamp() Timestamp { return e.ts }
func (e Entry) Event() EventKind     { return e.event }
func (e Entry) Outcome() Outcome     { return e.outcome }

// Task returns the task number. It is present only for ATTEMPT_TASK and
// COMPLETE_TASK entries.
func (e Entry) Task() (int, bool) {
	if !e.event.HasTask() {
		return 0, false
	}
	return e.task, true
}

// String writes the entry back in the raw line format, tab separated.
func (e Entry) String() string {
	var b strings.Builder
	b.WriteString(e.origin)
	b.WriteByte('\t')
	if e.actor != "" {
		b.WriteString(e.actor)
		b.WriteByte('\t')
	}
	b.WriteString(e.ts.String())
	b.WriteByte('\t')
	b.WriteString(string(e.event))
	if task, ok := e.Task(); ok {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(task))
	}
	b.WriteByte('\t')
	b.WriteString(string(e.outcome))
	return b.String()
}
