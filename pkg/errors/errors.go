// Package errors provides structured error types for ontokit.
//
// Errors carry a machine-readable [Code] alongside a human-readable message.
// The code drives two things: how the CLI and HTTP API report a failure, and
// whether a failed call to the OntoUML server may be retried.
//
// # Error Codes
//
//   - INVALID_*, MALFORMED_*: defects in user or host data
//   - UNKNOWN_ELEMENT: a lookup for an element id failed
//   - SERVER_*, BAD_REQUEST, UNKNOWN_STATUS: remote server outcomes
//   - NETWORK_ERROR, TIMEOUT: transport failures
//   - INTERNAL_ERROR: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedTaggedValue, "element %s: tag %q", id, name)
//	if errors.Is(err, errors.ErrCodeMalformedTaggedValue) {
//	    // host data is inconsistent
//	}
//
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "post %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input and host data errors
	ErrCodeInvalidInput         Code = "INVALID_INPUT"
	ErrCodeInvalidFormat        Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig        Code = "INVALID_CONFIG"
	ErrCodeMalformedTaggedValue Code = "MALFORMED_TAGGED_VALUE"
	ErrCodeUnknownElement       Code = "UNKNOWN_ELEMENT"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Remote server outcomes
	ErrCodeServerNotFound Code = "SERVER_NOT_FOUND"
	ErrCodeBadRequest     Code = "BAD_REQUEST"
	ErrCodeServerError    Code = "SERVER_ERROR"
	ErrCodeUnknownStatus  Code = "UNKNOWN_STATUS"

	// Network errors
	ErrCodeNetwork Code = "NETWORK_ERROR"
	ErrCodeTimeout Code = "TIMEOUT"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
// It unwraps the error chain looking for an *Error with a matching code.
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

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
