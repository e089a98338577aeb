package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrValidation     = errors.New("validation error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("conflict")
	ErrLockedOut      = errors.New("too many failed attempts")
	ErrSessionExpired = errors.New("session expired")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// LockedOutError is returned while a login key is locked. It matches
// ErrLockedOut and carries the time the lock lifts.
type LockedOutError struct {
	Until time.Time
}

func (e *LockedOutError) Error() string {
	return "too many failed attempts, locked until " + e.Until.UTC().Format(time.RFC3339)
}

func (e *LockedOutError) Unwrap() error { return ErrLockedOut }

// RetryAfter is the whole seconds remaining at now, at least 1.
func (e *LockedOutError) RetryAfter(now time.Time) int {
	return max(int(math.Ceil(e.Until.Sub(now).Seconds())), 1)
}
