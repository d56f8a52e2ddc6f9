package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrInvalidIdentity means a food identity carries neither a catalog key
	// nor a usable name, so it cannot be priced.
	ErrInvalidIdentity = errors.New("invalid food identity")
)

// Specific errors. Each one wraps a sentinel so callers at the edges can
// branch with errors.Is on either.
var (
	ErrLedgerNotFound       = fmt.Errorf("ledger %w", ErrNotFound)
	ErrRecordNotFound       = fmt.Errorf("dish %w", ErrNotFound)
	ErrRoutineNotFound      = fmt.Errorf("routine %w", ErrNotFound)
	ErrPlannedFoodNotFound  = fmt.Errorf("planned food %w", ErrNotFound)
	ErrCatalogEntryNotFound = fmt.Errorf("catalog entry %w", ErrNotFound)
	ErrCheckNotFound        = fmt.Errorf("planned food check %w", ErrNotFound)

	ErrCheckAlreadyExists = fmt.Errorf("planned food check already exists: %w", ErrConflict)
	ErrDishAlreadyExists  = fmt.Errorf("planned food already fulfilled by a dish: %w", ErrConflict)
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
