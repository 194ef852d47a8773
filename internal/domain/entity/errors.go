package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")

	// ErrDuplicateName indicates that another author already uses the name
	ErrDuplicateName = errors.New("duplicate name")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
// Err optionally carries the underlying cause, such as a storage constraint violation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation error on field '%s': %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports ErrValidationFailed for every validation error so callers can
// match the whole kind with errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// NewDuplicateNameError builds the validation error returned when an author
// name is already taken. cause may be nil when the conflict was detected
// before writing.
func NewDuplicateNameError(cause error) *ValidationError {
	if cause == nil {
		cause = ErrDuplicateName
	} else if !errors.Is(cause, ErrDuplicateName) {
		cause = fmt.Errorf("%w: %w", ErrDuplicateName, cause)
	}
	return &ValidationError{Field: "name", Message: "duplicate name", Err: cause}
}

// IsDuplicateName reports whether err is a duplicate author name failure.
func IsDuplicateName(err error) bool {
	return errors.Is(err, ErrDuplicateName)
}
