package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed indicates a setting has an invalid value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownSetting indicates a key that is not a known setting.
	ErrUnknownSetting = errors.New("unknown setting")
)

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Path is the dotted setting path that failed validation.
	Path string
	// Message describes the problem.
	Message string
	// Value is the invalid value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %v for %s: %s", e.Value, e.Path, e.Message)
}

// Unwrap allows errors.Is(err, ErrValidationFailed).
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
