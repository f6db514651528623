package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrCourseNotFound = errors.New("course not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Storage errors
	ErrStorage = errors.New("catalog storage error")
)

// ValidationError reports the first required course field that was empty.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a validation error naming the offending field
func NewValidationError(field string) error {
	return &ValidationError{Field: field}
}

// NewStorageError wraps a lower-level I/O or decode failure as a storage error
func NewStorageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}
