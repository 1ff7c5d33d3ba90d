package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ValidationErrors accumulates every field violation found while validating
// a payload, so callers can report all of them at once rather than only the
// first. It implements the error interface.
type ValidationErrors []*ValidationError

// Error joins all field messages into a single string.
func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add appends a violation for the given field.
func (ve *ValidationErrors) Add(field, message string) {
	*ve = append(*ve, &ValidationError{Field: field, Message: message})
}

// AddErr appends err if it is a *ValidationError; other error kinds are
// recorded against the field with the error text as the message.
func (ve *ValidationErrors) AddErr(field string, err error) {
	if err == nil {
		return
	}
	var fieldErr *ValidationError
	if errors.As(err, &fieldErr) {
		*ve = append(*ve, fieldErr)
		return
	}
	ve.Add(field, err.Error())
}

// Err returns the accumulated violations as an error, or nil if none were added.
func (ve ValidationErrors) Err() error {
	if len(ve) == 0 {
		return nil
	}
	return ve
}
