// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-sync library.

package api

import "fmt"

// Common errors used across the library. All steady-state conditions are
// signaled through these values (matched with errors.Is), never panics.
var (
	ErrRingFull        = fmt.Errorf("ring buffer is full")
	ErrRingEmpty       = fmt.Errorf("ring buffer is empty")
	ErrBufferTooSmall  = fmt.Errorf("destination buffer too small for record")
	ErrInvalidCapacity = fmt.Errorf("capacity must be a positive power of two")
	ErrNotSupported    = fmt.Errorf("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeFull
	ErrCodeEmpty
	ErrCodeBufferTooSmall
	ErrCodeInvalidCapacity
	ErrCodeNotSupported
	ErrCodeInternal
)

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

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
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
