// Package errors provides the typed error taxonomy shared by the engine.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeNotFound indicates a catalog or directory lookup miss
	TypeNotFound Type = "NOT_FOUND"

	// TypeInvalidRequest indicates a structurally invalid pricing request
	TypeInvalidRequest Type = "INVALID_REQUEST"

	// TypeValidation indicates missing required proposal fields
	TypeValidation Type = "VALIDATION_ERROR"

	// TypePersistence indicates an external store failure
	TypePersistence Type = "PERSISTENCE_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// NotFound creates a not found error
func NotFound(resourceType, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", resourceType, identifier)
}

// InvalidRequest creates an invalid request error naming the offending field.
// The field name is carried in the context so callers can render
// field-specific feedback.
func InvalidRequest(field, message string) *Error {
	return New(TypeInvalidRequest, message).WithContext("field", field)
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(TypeValidation, message)
}

// Persistence creates a persistence error
func Persistence(message string, cause error) *Error {
	return Wrap(TypePersistence, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}

// Field returns the offending field recorded on an invalid request error,
// or an empty string when the error carries none.
func Field(err error) string {
	e, ok := err.(*Error)
	if !ok || e.Context == nil {
		return ""
	}
	if f, ok := e.Context["field"].(string); ok {
		return f
	}
	return ""
}
