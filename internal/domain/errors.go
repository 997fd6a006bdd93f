package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrBackend           = errors.New("generation backend error")
	ErrMalformedResponse = errors.New("malformed response")
	ErrMissingCategory   = fmt.Errorf("missing category: %w", ErrMalformedResponse)
	ErrExhaustedCategory = errors.New("category exhausted")
	ErrValidation        = errors.New("validation error")
)

// MissingCategoryError reports a category absent from a backend payload.
type MissingCategoryError struct {
	Category Category
}

func (e *MissingCategoryError) Error() string {
	return fmt.Sprintf("malformed response: category %q missing from data", e.Category)
}

func (e *MissingCategoryError) Unwrap() error { return ErrMissingCategory }

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
