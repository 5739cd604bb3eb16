package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Validation failures wrap one of the Err* kinds below in a
// *ValidationError so callers can match with errors.Is and read the field with errors.As.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")

	ErrMissingField      = errors.New("missing required field")
	ErrInvalidArrayField = errors.New("invalid array field")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidTime       = errors.New("invalid time")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidSlug       = errors.New("invalid slug")
	ErrDanglingReference = errors.New("referenced record does not exist")
	ErrDuplicateKey      = errors.New("duplicate key")

	// ErrDependencyUnavailable means a storage call needed to decide the write
	// could not complete. The record itself may be valid.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// ValidationError describes why a record was rejected before commit.
type ValidationError struct {
	Kind   error
	Field  string
	Reason string
}

// NewValidationError returns a ValidationError of the given kind for field.
func NewValidationError(kind error, field, reason string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Field, e.Kind, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

// IsValidationError reports whether err was caused by the record itself rather than by infrastructure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// DependencyError wraps a failed storage call as ErrDependencyUnavailable.
func DependencyError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrDependencyUnavailable, err)
}
