package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrMalformedShape indicates a shape or property shape that cannot be
	// turned into a type or field.
	ErrMalformedShape = errors.New("sdx: malformed shape")
	// ErrUnresolvedClass indicates a sh:class reference without exactly one
	// shape targeting that class.
	ErrUnresolvedClass = errors.New("sdx: unresolved class reference")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("sdx: missing configuration")
)

// SchemaError represents a malformed shape definition.
type SchemaError struct {
	Shape    string // Shape IRI or name
	Property string // Property name (if applicable)
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("sdx: schema error")
	if e.Shape != "" {
		b.WriteString(" on shape ")
		b.WriteString(e.Shape)
	}
	if e.Property != "" {
		b.WriteString(" property ")
		b.WriteString(e.Property)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrMalformedShape
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(shape, property, message string, cause error) *SchemaError {
	return &SchemaError{
		Shape:    shape,
		Property: property,
		Message:  message,
		Cause:    cause,
	}
}

// ResolutionError represents a class reference that did not resolve to
// exactly one shape.
type ResolutionError struct {
	Shape    string
	Property string
	Class    string
	Cause    error
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	var b strings.Builder
	b.WriteString("sdx: resolution error")
	if e.Shape != "" {
		b.WriteString(" on shape ")
		b.WriteString(e.Shape)
	}
	if e.Property != "" {
		b.WriteString(" property ")
		b.WriteString(e.Property)
	}
	if e.Class != "" {
		fmt.Fprintf(&b, " (class %s)", e.Class)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for ResolutionError.
func (e *ResolutionError) Is(target error) bool {
	return target == ErrUnresolvedClass
}

// NewResolutionError creates a new ResolutionError.
func NewResolutionError(shape, property, class string, cause error) *ResolutionError {
	return &ResolutionError{
		Shape:    shape,
		Property: property,
		Class:    class,
		Cause:    cause,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("sdx: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("sdx: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

// IsResolutionError reports whether the error is a ResolutionError.
func IsResolutionError(err error) bool {
	var resErr *ResolutionError
	return errors.As(err, &resErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}
