package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound marks an absent entity. The newsletter visibility rule also
// maps deliberately hidden newsletters onto it, so readers cannot tell
// "hidden" from "absent".
var ErrNotFound = errors.New("not found")

// ForbiddenError is a terminal policy denial for a single request. No
// partial mutation is performed once it is raised.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return e.Reason
}

// Forbidden builds a policy denial with the given user-facing reason
func Forbidden(reason string) error {
	return &ForbiddenError{Reason: reason}
}

// ExternalServiceError marks a failure of an external collaborator after
// the primary mutation has already been committed
type ExternalServiceError struct {
	Op  string
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// FieldErrors maps field names to validation messages and is surfaced to
// API clients as the 400 response body
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
