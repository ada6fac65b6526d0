// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the smallvec library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrOutOfRange      = fmt.Errorf("index out of range")
	ErrLengthOverflow  = fmt.Errorf("length exceeds maximum size")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeOutOfRange
	ErrCodeLengthOverflow
	ErrCodeInvalidArgument
	ErrCodeInternal
)

// Err maps a code to its sentinel error, or nil when no sentinel applies.
func (c ErrorCode) Err() error {
	switch c {
	case ErrCodeOutOfRange:
		return ErrOutOfRange
	case ErrCodeLengthOverflow:
		return ErrLengthOverflow
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	}
	return nil
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the code's sentinel so callers can match with errors.Is.
func (e *Error) Unwrap() error {
	return e.Code.Err()
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
