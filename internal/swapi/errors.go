package swapi

import (
	"fmt"
	"strings"
)

// FetchError is the only error FetchAll returns. Transport failures,
// non-2xx responses and undecodable bodies all map to it; callers show
// Error() and do not branch on the cause.
type FetchError struct {
	// Message provides human-readable error description
	Message string

	// StatusCode is set when a response was received
	StatusCode int

	// Cause is the underlying error, if any
	Cause error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	parts := []string{e.Message}

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status %d", e.StatusCode))
	}

	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Cause
}

func newFetchError(message string, cause error) *FetchError {
	return &FetchError{Message: message, Cause: cause}
}

func newStatusError(status int) *FetchError {
	return &FetchError{Message: "unexpected response", StatusCode: status}
}
