package errors

import (
	"fmt"
)

// ConstructionError reports an argument that prevents a palette from being built.
type ConstructionError struct {
	Field   string
	Message string
	Err     error
}

// NewConstructionError constructs a ConstructionError.
func NewConstructionError(field, message string, err error) error {
	return &ConstructionError{Field: field, Message: message, Err: err}
}

func (e *ConstructionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("construction error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("construction error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConstructionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidColorError indicates a value that cannot be detected or normalised as a color.
// Key names the scheme entry the value came from and is empty for bare colors.
type InvalidColorError struct {
	Key   string
	Value any
	Err   error
}

// NewInvalidColorError constructs an InvalidColorError for a bare color value.
func NewInvalidColorError(value any, err error) error {
	return &InvalidColorError{Value: value, Err: err}
}

// NewInvalidSchemeColorError constructs an InvalidColorError for a custom scheme entry.
func NewInvalidSchemeColorError(key string, value any, err error) error {
	return &InvalidColorError{Key: key, Value: value, Err: err}
}

func (e *InvalidColorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("custom color scheme %s is not a valid color", e.Key)
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid color %v: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid color %v", e.Value)
}

// Unwrap exposes the underlying error.
func (e *InvalidColorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TypeMismatchError reports a custom scheme color whose representation differs from the primary color.
type TypeMismatchError struct {
	Key  string
	Want string
	Got  string
}

// NewTypeMismatchError constructs a TypeMismatchError.
func NewTypeMismatchError(key, want, got string) error {
	return &TypeMismatchError{Key: key, Want: want, Got: got}
}

func (e *TypeMismatchError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("custom color scheme %s color type must be the same as the primary color type", e.Key)
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
