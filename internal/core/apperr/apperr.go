// Package apperr holds the error kinds surfaced by the feed and write paths.
package apperr

import (
	"errors"
	"fmt"
	"time"
)

// Code classifies an Error for callers and transports.
type Code string

const (
	CodeNotFound          Code = "NOT_FOUND"
	CodeAuthorNotResolved Code = "AUTHOR_NOT_RESOLVED"
	CodeValidation        Code = "VALIDATION_ERROR"
	CodeUnauthenticated   Code = "UNAUTHENTICATED"
	CodeThrottled         Code = "THROTTLED"
	CodeUpstream          Code = "UPSTREAM_FAILURE"
)

// Error is the application error carried through services and adapters.
type Error struct {
	Code    Code
	Message string
	Err     error

	// RetryAfter is set on THROTTLED errors when the limiter knows when
	// the next slot frees up.
	RetryAfter time.Duration
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(resource string, id any) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func AuthorNotResolved(authorID string) *Error {
	return &Error{
		Code:    CodeAuthorNotResolved,
		Message: fmt.Sprintf("author %s not found", authorID),
	}
}

func Validation(message string) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: message,
	}
}

func Unauthenticated(message string) *Error {
	return &Error{
		Code:    CodeUnauthenticated,
		Message: message,
	}
}

func Throttled(retryAfter time.Duration) *Error {
	return &Error{
		Code:       CodeThrottled,
		Message:    "rate limit exceeded",
		RetryAfter: retryAfter,
	}
}

// Upstream wraps a storage, identity provider or limiter failure.
func Upstream(what string, err error) *Error {
	return &Error{
		Code:    CodeUpstream,
		Message: what + " unavailable",
		Err:     err,
	}
}

// CodeOf returns the Code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
