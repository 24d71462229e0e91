package models

import (
	"fmt"
)

// ValidationError reports a setting or content field holding an unusable value
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid value: %s", e.Message)
}

// Unwrap exposes the underlying error
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError reports a state file that could not be decoded
type ParseError struct {
	Path string
	Err  error
}

// NewParseError constructs a ParseError
func NewParseError(path string, err error) error {
	return &ParseError{Path: path, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
