package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation signals a rejected filter or parameter value.
	ErrValidation = errors.New("validation failed")
	// ErrTaxonomyNotFound signals an unknown taxonomy name.
	ErrTaxonomyNotFound = errors.New("taxonomy not found")
	// ErrCompanyExists signals a duplicate company add-request.
	ErrCompanyExists = errors.New("company already exists")
)

// ValidationError wraps ErrValidation with the offending field and a
// human-readable message safe to return to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidation creates a validation error for a field.
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
