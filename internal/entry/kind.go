package entry

import (
	lserrors "github.com/livp123/logscope/pkg/errors"
)

// EventKind is the category of action an entry records.
type EventKind string

const (
	EventLogin          EventKind = "LOGIN"
	EventDownloadPlugin EventKind = "DOWNLOAD_PLUGIN"
	EventSendMessage    EventKind = "SEND_MESSAGE"
	EventAttemptTask    EventKind = "ATTEMPT_TASK"
	EventCompleteTask   EventKind = "COMPLETE_TASK"
)

var eventKinds = []EventKind{
	EventLogin,
	EventDownloadPlugin,
	EventSendMessage,
	EventAttemptTask,
	EventCompleteTask,
}

// EventKinds returns every known event kind in declaration order.
func EventKinds() []EventKind {
	out := make([]EventKind, len(eventKinds))
	copy(out, eventKinds)
	return out
}

// ParseEventKind maps a token to its EventKind. Matching is exact.
func ParseEventKind(token string) (EventKind, error) {
	for _, k := range eventKinds {
		if string(k) == token {
			return k, nil
		}
	}
	return "", lserrors.NewEventKindError(token)
}

// HasTask reports whether entries of this kind carry a task number.
func (k EventKind) HasTask() bool {
	return k == EventAttemptTask || k == EventCompleteTask
}

func (k EventKind) String() string { return string(k) }

// Outcome classifies the result of an event.
type Outcome string

const (
	OutcomeOK     Outcome = "OK"
	OutcomeFailed Outcome = "FAILED"
	OutcomeError  Outcome = "ERROR"
)

var outcomes = []Outcome{OutcomeOK, OutcomeFailed, OutcomeError}

// Outcomes returns every known outcome in declaration order.
func Outcomes() []Outcome {
	out := make([]Outcome, len(outcomes))
	copy(out, outcomes)
	return out
}

// ParseOutcome maps a token to its Outcome. Matching is exact.
func ParseOutcome(token string) (Outcome, error) {
	for _, o := range outcomes {
		if string(o) == token {
			return o, nil
		}
	}
	return "", lserrors.NewOutcomeError(token)
}

func (o Outcome) String() string { return string(o) }
