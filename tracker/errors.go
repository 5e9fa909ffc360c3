/*
errors.go - Centralized error types for the tracker core

PURPOSE:
  All error types in one place. Two categories only:

  1. Validation errors - missing required input, caught before any
     statement is issued. Client fixable (HTTP 400).
  2. Persistence errors - connection or query failure surfaced by a
     store. Transient or operator fixable (HTTP 500). Raw driver
     detail stays in the wrapped message for server-side logs and is
     never shown to clients.

USAGE:
  Stores wrap their failures:

    fmt.Errorf("list goals: %w: %v", tracker.ErrQuery, err)

  The HTTP boundary classifies with the helpers:

    if tracker.IsClientError(err) { ... 400 ... }

SEE ALSO:
  - store.go: Store contract returning these errors
  - api/handlers.go: status-code mapping
*/
package tracker

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the sentinel all validation failures unwrap to.
	ErrValidation = errors.New("invalid or missing data")

	// ErrConnection is returned when the database cannot be reached.
	ErrConnection = errors.New("database unreachable")

	// ErrQuery is returned when a statement fails to execute.
	ErrQuery = errors.New("query failed")
)

// ValidationError identifies the first missing required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsPersistenceError returns true for connection or query failures.
func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrConnection) || errors.Is(err, ErrQuery)
}
