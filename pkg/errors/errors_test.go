package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	sentinelErrors := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrMalformedLine", ErrMalformedLine, "malformed log line"},
		{"ErrUnknownEventKind", ErrUnknownEventKind, "unknown event kind"},
		{"ErrInvalidTaskNumber", ErrInvalidTaskNumber, "invalid task number"},
		{"ErrUnknownOutcome", ErrUnknownOutcome, "unknown outcome"},
		{"ErrUnparseableTimestamp", ErrUnparseableTimestamp, "unparseable timestamp"},
		{"ErrUnsupportedFieldCombination", ErrUnsupportedFieldCombination, "unsupported field combination"},
		{"ErrUnknownQuerySyntax", ErrUnknownQuerySyntax, "unknown query syntax"},
		{"ErrUnknownField", ErrUnknownField, "unknown field"},
		{"ErrInvalidFilter", ErrInvalidFilter, "invalid filter expression"},
		{"ErrConfigInvalid", ErrConfigInvalid, "invalid configuration"},
		{"ErrFileUnreadable", ErrFileUnreadable, "file unreadable"},
	}

	for _, tc := range sentinelErrors {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err == nil {
				t.Errorf("%s is nil", tc.name)
				return
			}
			if tc.err.Error() != tc.msg {
				t.Errorf("%s: got %q, want %q", tc.name, tc.err.Error(), tc.msg)
			}
		})
	}
}

func TestConstructorsWrapSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		want     string
	}{
		{
			name:     "malformed line",
			err:      NewMalformedLineError(3, "missing outcome"),
			sentinel: ErrMalformedLine,
			want:     "malformed log line: missing outcome (3 tokens)",
		},
		{
			name:     "event kind",
			err:      NewEventKindError("LOGOUT"),
			sentinel: ErrUnknownEventKind,
			want:     `unknown event kind: "LOGOUT"`,
		},
		{
			name:     "task number",
			err:      NewTaskNumberError("x1"),
			sentinel: ErrInvalidTaskNumber,
			want:     `invalid task number: "x1"`,
		},
		{
			name:     "outcome",
			err:      NewOutcomeError("MAYBE"),
			sentinel: ErrUnknownOutcome,
			want:     `unknown outcome: "MAYBE"`,
		},
		{
			name:     "timestamp",
			err:      NewTimestampError("30.2.2028 0:0:0", fmt.Errorf("day out of range")),
			sentinel: ErrUnparseableTimestamp,
			want:     `unparseable timestamp: "30.2.2028 0:0:0": day out of range`,
		},
		{
			name:     "field combination",
			err:      NewFieldCombinationError("ip", "ip"),
			sentinel: ErrUnsupportedFieldCombination,
			want:     "unsupported field combination: get ip for ip",
		},
		{
			name:     "query syntax",
			err:      NewQuerySyntaxError(4, `expected "for"`),
			sentinel: ErrUnknownQuerySyntax,
			want:     `unknown query syntax at offset 4: expected "for"`,
		},
		{
			name:     "field",
			err:      NewFieldError("host"),
			sentinel: ErrUnknownField,
			want:     `unknown field: "host"`,
		},
		{
			name:     "config",
			err:      NewConfigError("ingest.workers", 0),
			sentinel: ErrConfigInvalid,
			want:     "invalid configuration: field=ingest.workers value=0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Error() != tc.want {
				t.Errorf("got %q, want %q", tc.err.Error(), tc.want)
			}
			if !errors.Is(tc.err, tc.sentinel) {
				t.Errorf("error should wrap %v", tc.sentinel)
			}
		})
	}
}

func TestNewFileError(t *testing.T) {
	reason := errors.New("permission denied")
	err := NewFileError("/var/log/app/a.log", reason)

	if !errors.Is(err, ErrFileUnreadable) {
		t.Errorf("error should wrap ErrFileUnreadable")
	}
	want := "file unreadable: /var/log/app/a.log: permission denied"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestNewFilterError(t *testing.T) {
	err := NewFilterError(`Event ==`, errors.New("unexpected token EOF"))
	if !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("error should wrap ErrInvalidFilter")
	}
}
