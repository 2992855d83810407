package model

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned when a required field is missing. No store
	// access happens before it is returned.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when the store rejects a row because of a
	// unique-key violation.
	ErrConflict = errors.New("already exists")

	// ErrStore wraps connection and statement failures.
	ErrStore = errors.New("store error")

	// ErrConfiguration is returned for malformed connection or server settings.
	ErrConfiguration = errors.New("invalid configuration")
)

// ValidationError names the field that failed validation.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s is required", ErrValidation, e.Field)
}

// Is reports ErrValidation as a match so callers can use errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
