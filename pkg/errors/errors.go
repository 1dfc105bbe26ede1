// Package errors provides structured error types for hexpic.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The render core reports four kinds of failure:
//   - CONFIGURATION_ERROR: invalid layout settings (non-positive columns or
//     group size, fade bands that do not fit in the rendered rows)
//   - FONT_UNAVAILABLE: a glyph could not be measured or the font not loaded
//   - DATA_INTEGRITY: a byte value outside 0..255
//   - DRAW_FAILURE: the drawing primitive failed mid-sweep
//
// The remaining codes cover the surfaces around the core (files, flags, HTTP).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeConfiguration, "bytes per row must be positive, got %d", n)
//	if errors.Is(err, errors.ErrCodeConfiguration) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFontUnavailable, origErr, "parse font %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Render core errors
	ErrCodeConfiguration   Code = "CONFIGURATION_ERROR"
	ErrCodeFontUnavailable Code = "FONT_UNAVAILABLE"
	ErrCodeDataIntegrity   Code = "DATA_INTEGRITY"
	ErrCodeDrawFailure     Code = "DRAW_FAILURE"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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

// As is errors.As from the standard library, re-exported so callers that
// import this package need not import both.
func As(err error, target any) bool {
	return errors.As(err, target)
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

// IsSizing reports whether err was raised while sizing a render, before any
// pixel was written. Such errors are safe to retry after fixing the input.
func IsSizing(err error) bool {
	switch GetCode(err) {
	case ErrCodeConfiguration, ErrCodeFontUnavailable:
		return true
	}
	return false
}
