package errors

import (
	"errors"
	"fmt"
)

var (
	// Line-level failures. The line is skipped and recorded in the ingestion report.
	// 行级错误。该行被跳过并记录在导入报告中。
	ErrMalformedLine     = errors.New("malformed log line")
	ErrUnknownEventKind  = errors.New("unknown event kind")
	ErrInvalidTaskNumber = errors.New("invalid task number")
	ErrUnknownOutcome    = errors.New("unknown outcome")

	// ErrUnparseableTimestamp is a warning: the entry is kept without a timestamp.
	// ErrUnparseableTimestamp 是警告：条目被保留，但没有时间戳。
	ErrUnparseableTimestamp = errors.New("unparseable timestamp")

	// Query-level failures. The query is declined.
	// 查询级错误。查询被拒绝。
	ErrUnsupportedFieldCombination = errors.New("unsupported field combination")
	ErrUnknownQuerySyntax          = errors.New("unknown query syntax")
	ErrUnknownField                = errors.New("unknown field")
	ErrInvalidFilter               = errors.New("invalid filter expression")

	ErrConfigInvalid  = errors.New("invalid configuration")
	ErrFileUnreadable = errors.New("file unreadable")
)

func NewMalformedLineError(tokens int, reason string) error {
	return fmt.Errorf("%w: %s (%d tokens)", ErrMalformedLine, reason, tokens)
}

func NewEventKindError(token string) error {
	return fmt.Errorf("%w: %q", ErrUnknownEventKind, token)
}

func NewTaskNumberError(token string) error {
	return fmt.Errorf("%w: %q", ErrInvalidTaskNumber, token)
}

func NewOutcomeError(token string) error {
	return fmt.Errorf("%w: %q", ErrUnknownOutcome, token)
}

func NewTimestampError(value string, reason error) error {
	return fmt.Errorf("%w: %q: %v", ErrUnparseableTimestamp, value, reason)
}

func NewFieldCombinationError(target, filter string) error {
	return fmt.Errorf("%w: get %s for %s", ErrUnsupportedFieldCombination, target, filter)
}

func NewQuerySyntaxError(pos int, msg string) error {
	return fmt.Errorf("%w at offset %d: %s", ErrUnknownQuerySyntax, pos, msg)
}

func NewFieldError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func NewFilterError(src string, reason error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidFilter, src, reason)
}

func NewConfigError(field string, value interface{}) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrConfigInvalid, field, value)
}

func NewFileError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, reason)
}
