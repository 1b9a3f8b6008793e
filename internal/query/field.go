package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/livp123/logscope/internal/entry"
	lserrors "github.com/livp123/logscope/pkg/errors"
)

// Field names one of the five dimensions of an entry.
type Field int

const (
	FieldOrigin Field = iota + 1
	FieldActor
	FieldTimestamp
	FieldEvent
	FieldOutcome
)

var fieldNames = map[Field]string{
	FieldOrigin:    "ip",
	FieldActor:     "user",
	FieldTimestamp: "date",
	FieldEvent:     "event",
	FieldOutcome:   "status",
}

// Fields returns all dimensions in declaration order.
func Fields() []Field {
	return []Field{FieldOrigin, FieldActor, FieldTimestamp, FieldEvent, FieldOutcome}
}

// ParseField maps a query-language field name (ip, user, date, event, status) to a Field.
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, lserrors.NewFieldError(name)
}

func (f Field) Valid() bool {
	_, ok := fieldNames[f]
	return ok
}

func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Value is one dimension value tagged with its Field. Values are comparable
// and can be used as Set members. Timestamp values hold their instant in UTC,
// so two values of the same instant are equal whatever zone they were built in.
type Value struct {
	field Field
	text  string
	ts    entry.Timestamp
}

func OriginValue(origin string) Value { return Value{field: FieldOrigin, text: origin} }
func ActorValue(actor string) Value   { return Value{field: FieldActor, text: actor} }
func EventValue(k entry.EventKind) Value {
	return Value{field: FieldEvent, text: string(k)}
}
func OutcomeValue(o entry.Outcome) Value {
	return Value{field: FieldOutcome, text: string(o)}
}

// TimestampValue wraps a timestamp. Missing timestamps never match anything.
func TimestampValue(ts entry.Timestamp) Value {
	return Value{field: FieldTimestamp, ts: ts.UTC()}
}

// TimeValue is shorthand for TimestampValue(entry.At(t)).
func TimeValue(t time.Time) Value {
	return TimestampValue(entry.At(t))
}

func (v Value) Field() Field { return v.field }

// Text returns the textual form of origin, actor, event and outcome values.
func (v Value) Text() string { return v.text }

// Time returns the instant of a timestamp value, in UTC.
func (v Value) Time() (time.Time, bool) {
	if v.field != FieldTimestamp {
		return time.Time{}, false
	}
	return v.ts.Time()
}

func (v Value) String() string {
	if v.field == FieldTimestamp {
		return v.ts.String()
	}
	return v.text
}

// Compare orders values by field, then chronologically for timestamps and
// lexically for everything else.
func (v Value) Compare(o Value) int {
	if v.field != o.field {
		return int(v.field) - int(o.field)
	}
	if v.field == FieldTimestamp {
		switch {
		case v.ts.Before(o.ts):
			return -1
		case o.ts.Before(v.ts):
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(v.text, o.text)
}

// extractors is the field -> value lookup table driving Project.
var extractors = map[Field]func(entry.Entry) (Value, bool){
	FieldOrigin: func(e entry.Entry) (Value, bool) { return OriginValue(e.Origin()), true },
	FieldActor:  func(e entry.Entry) (Value, bool) { return ActorValue(e.Actor()), true },
	FieldTimestamp: func(e entry.Entry) (Value, bool) {
		ts := e.Timestamp()
		if !ts.Valid() {
			return Value{}, false
		}
		return TimestampValue(ts), true
	},
	FieldEvent:   func(e entry.Entry) (Value, bool) { return EventValue(e.Event()), true },
	FieldOutcome: func(e entry.Entry) (Value, bool) { return OutcomeValue(e.Outcome()), true },
}
