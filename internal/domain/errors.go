package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound indicates the requested user or photo does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrServerOffline indicates the API is unreachable
	ErrServerOffline = errors.New("api server is unreachable")

	// ErrAuthFailed indicates the bearer token was rejected
	ErrAuthFailed = errors.New("authentication token is invalid")
)

// ValidationError is returned when the server answers with a non-empty
// error list. Only the first entry is surfaced.
type ValidationError struct {
	Errors []string
}

// First returns the first server error, or a placeholder when the list is empty
func (e *ValidationError) First() string {
	if e == nil || len(e.Errors) == 0 {
		return "validation failed"
	}
	return e.Errors[0]
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.First()
}

// RequestFailure is a transport or remote failure with no structured error list
type RequestFailure struct {
	Op     string // e.g. "GET /users/{id}"
	Status int    // HTTP status, 0 when no response was received
	Err    error
}

// Error implements the error interface
func (e *RequestFailure) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As
func (e *RequestFailure) Unwrap() error {
	return e.Err
}

// AsValidation extracts a ValidationError from err's chain
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
