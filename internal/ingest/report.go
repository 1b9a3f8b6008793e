package ingest

import (
	"errors"
	"fmt"
)

// Failure is one rejected or flagged line.
type Failure struct {
	Source string
	Line   int
	Text   string
	Err    error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s:%d: %v", f.Source, f.Line, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// FileError records a file that could not be read.
type FileError struct {
	Path string
	Err  error
}

func (f FileError) Error() string { return f.Err.Error() }

func (f FileError) Unwrap() error { return f.Err }

// Report describes one ingestion run. Failures are lines that were skipped;
// Warnings are lines kept without a timestamp.
// Report 描述一次导入：Failures 为被跳过的行，Warnings 为保留但缺少时间戳的行。
type Report struct {
	Files      int
	FileErrors []FileError
	Lines      int
	Parsed     int
	Blank      int
	Failures   []Failure
	Warnings   []Failure
}

// Failed is the number of skipped lines.
func (r *Report) Failed() int {
	return len(r.Failures)
}

// Err joins every file error and line failure, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, fe := range r.FileErrors {
		errs = append(errs, fe)
	}
	for _, f := range r.Failures {
		errs = append(errs, f)
	}
	return errors.Join(errs...)
}

func (r *Report) fail(source string, line int, text string, err error) {
	r.Failures = append(r.Failures, Failure{Source: source, Line: line, Text: text, Err: err})
}

func (r *Report) warn(source string, line int, text string, err error) {
	r.Warnings = append(r.Warnings, Failure{Source: source, Line: line, Text: text, Err: err})
}
