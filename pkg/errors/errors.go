// Package errors provides structured error types for cardgraph.
//
// Store mutations in pkg/board never fail: unknown ids and repeated edges are
// silent no-ops. Errors only surface at the persistence boundary (saving,
// importing, restoring) and at the I/O edges (board files, storage backends).
// This package gives those failures machine-readable codes so the CLI can
// turn them into user-facing messages.
//
// # Error Codes
//
//   - EMPTY_STATE: a save was attempted with nothing to save (informational)
//   - MALFORMED_CONFIG: an imported or stored configuration has the wrong shape
//   - INVALID_*: other input validation failures
//   - STORAGE: the key-value backend failed
//   - INTERNAL_ERROR: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedConfig, "missing key %q", "dependencies")
//	if errors.IsMalformedConfig(err) {
//	    // tell the user the pasted configuration is invalid
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeStorage, origErr, "write %s", key)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Persistence boundary
	ErrCodeEmptyState      Code = "EMPTY_STATE"
	ErrCodeMalformedConfig Code = "MALFORMED_CONFIG"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidBoard  Code = "INVALID_BOARD"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeStorage      Code = "STORAGE"

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

// IsEmptyState reports whether err is a "nothing to save" condition.
func IsEmptyState(err error) bool { return Is(err, ErrCodeEmptyState) }

// IsMalformedConfig reports whether err is a configuration shape failure.
func IsMalformedConfig(err error) bool { return Is(err, ErrCodeMalformedConfig) }
