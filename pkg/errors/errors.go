// Package errors provides the coded error type used across GoBan.
//
// Every failure that aborts a render carries one of a small set of codes so
// the CLI can report what went wrong without string matching:
//   - RESOURCE_MISSING: the font file is absent or unreadable
//   - RESOURCE_INVALID: the font bytes cannot be parsed
//   - IO_FAILURE: the PNG cannot be written
//   - INVALID_GEOMETRY: board constants do not fit the canvas
//
// # Usage
//
//	err := errors.Wrap(errors.ErrCodeResourceMissing, cause, "read font %s", path)
//	if errors.Is(err, errors.ErrCodeResourceMissing) {
//	    // ...
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the render pipeline.
const (
	ErrCodeResourceMissing Code = "RESOURCE_MISSING"
	ErrCodeResourceInvalid Code = "RESOURCE_INVALID"
	ErrCodeIOFailure       Code = "IO_FAILURE"
	ErrCodeInvalidGeometry Code = "INVALID_GEOMETRY"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for the outermost *Error.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
