package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when the targeted listing does not exist
// (or was removed by a concurrent operation).
var ErrNotFound = errors.New("listing not found")

// FieldErrors maps a submitted field name to its validation messages.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// ValidationError reports that a submission failed validation. It carries
// every violation found in one pass so the form can show them all.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// Denial reasons for AuthorizationError.
const (
	DenyUnauthenticated = "Unauthenticated"
	DenyNotOwner        = "NotOwner"
)

// AuthorizationError reports a denied operation. Ownership is binary:
// there are no roles or partial permissions.
type AuthorizationError struct {
	Reason string // DenyUnauthenticated or DenyNotOwner
}

func (e *AuthorizationError) Error() string {
	return "not authorized: " + e.Reason
}

// InfrastructureError wraps a failure of the store or another collaborator.
// It is surfaced verbatim; the service never retries.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error { return e.Err }

func infraErr(op string, err error) error {
	return &InfrastructureError{Op: op, Err: err}
}
