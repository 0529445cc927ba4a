package domain

import (
	"sort"
	"strings"
)

// ValidationError carries field-keyed human-readable messages for a payload
// that failed validation. Handlers never see it as an exception path; the
// central error handler renders it as a structured 422.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError builds a ValidationError for a single failed field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {message}}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}
