package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Form field names used in validation errors.
const (
	FieldName       = "name"
	FieldInitiative = "initiative"
	FieldPosition   = "position"
	FieldDirection  = "direction"
)

// ValidationError reports bad input, keyed by field so forms can show each
// message next to its input.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add records a message for field, keeping the first message per field.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// Merge copies the field messages of err when it is a ValidationError.
// Other errors are returned untouched.
func (e *ValidationError) Merge(err error) error {
	var v *ValidationError
	if !errors.As(err, &v) {
		return err
	}
	for field, message := range v.Fields {
		e.Add(field, message)
	}
	return nil
}

// Empty reports whether no field failed.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// Field returns the message for field, if any.
func (e *ValidationError) Field(field string) string {
	if e == nil {
		return ""
	}
	return e.Fields[field]
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NotFoundError reports an unknown character id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("character %q not found", e.ID)
}

// AsValidation returns the ValidationError in err's chain, if any.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
