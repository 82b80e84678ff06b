package domain

import (
	"errors"
	"fmt"
)

// Common domain error categories. Specific validation errors wrap these so
// callers can classify failures with errors.Is without matching message text.
var (
	// ErrValidation is the base error for all entity validation failures.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID indicates an identifier that is malformed or out of range.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrUnauthorized indicates the caller is not authenticated for the
	// requested operation.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError describes a validation failure for a single field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field,
// wrapping the provided base error (usually ErrValidation or ErrInvalidID).
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
