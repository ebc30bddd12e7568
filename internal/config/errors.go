package config

import (
	"errors"
	"fmt"
)

// ErrValidationFailed indicates one or more settings are invalid.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Key is the setting that failed validation.
	Key string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Key, e.Value, e.Message)
}

// Is reports ErrValidationFailed as a match so callers can test for any
// validation failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
