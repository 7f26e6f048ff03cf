// Package errors provides structured error types for amidakuji.
//
// Every failure the generator, renderer or CLI reports carries a
// machine-readable [Code], so callers (the CLI exit path, the HTTP server)
// can map errors to exit codes or status codes without string matching.
//
// # Error Codes
//
//   - INVALID_*: input validation failures, raised before any work begins
//   - CONNECTIVITY: a connected ladder could not cover every vertical line
//   - IO_ERROR: reading or writing files failed
//   - INTERNAL_ERROR: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidParameter, "line count must be >= 2, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidParameter) {
//	    // ask the user for different inputs
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidParameter Code = "INVALID_PARAMETER"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidDiagram   Code = "INVALID_DIAGRAM"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Generation errors
	ErrCodeConnectivity Code = "CONNECTIVITY"

	// I/O and internal errors
	ErrCodeIO       Code = "IO_ERROR"
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// It unwraps the error chain looking for an *Error or a *ConnectivityError
// with a matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error carries no code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var ce *ConnectivityError
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error and *ConnectivityError, returns the message without the code
// prefix. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var ce *ConnectivityError
	if errors.As(err, &ce) {
		return ce.message()
	}
	return err.Error()
}

// ConnectivityError reports the vertical lines a connected ladder left
// untouched. Uncovered holds 0-based line indices in ascending order.
type ConnectivityError struct {
	Uncovered []int
}

// Error implements the error interface. Lines are listed 1-based, matching
// the start labels printed on the diagram.
func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCodeConnectivity, e.message())
}

func (e *ConnectivityError) message() string {
	nums := make([]string, len(e.Uncovered))
	for i, idx := range e.Uncovered {
		nums[i] = fmt.Sprint(idx + 1)
	}
	return fmt.Sprintf("not enough rungs to connect every vertical line (uncovered lines: %s); try increasing the maximum rung count",
		strings.Join(nums, ", "))
}

// Code returns the error code for this error type.
func (e *ConnectivityError) Code() Code {
	return ErrCodeConnectivity
}
