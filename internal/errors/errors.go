// Package errors defines the failure taxonomy for report processing.
//
// Every failure the processor can raise carries a stable machine-readable
// code so callers can map it to user-facing messages without string
// matching. Errors wrap their cause and cooperate with errors.Is/As.
package errors

import (
	"errors"
	"fmt"
)

// Code classifies a processing failure.
type Code string

const (
	// CodeFileNotFound means the report file does not exist. Nothing has
	// been modified when this is returned.
	CodeFileNotFound Code = "FILE_NOT_FOUND"

	// CodeParseError means the report structure, a required column, or a
	// timestamp value could not be parsed.
	CodeParseError Code = "PARSE_ERROR"
)

// ProcessError is a classified report-processing failure.
type ProcessError struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProcessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ProcessError) Unwrap() error {
	return e.Err
}

// New creates a classified error without an underlying cause.
func New(code Code, message string) *ProcessError {
	return &ProcessError{Code: code, Message: message}
}

// Newf creates a classified error with a formatted message.
func Newf(code Code, format string, args ...interface{}) *ProcessError {
	return &ProcessError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error.
func Wrap(code Code, message string, err error) *ProcessError {
	return &ProcessError{Code: code, Message: message, Err: err}
}

// CodeOf returns the classification of err, or the empty code when err is
// not a ProcessError.
func CodeOf(err error) Code {
	var pe *ProcessError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
