package domain

import (
	"errors"
	"fmt"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("incorrect email or password")
var ErrProjectNotFound = errors.New("project not found")
var ErrUnauthorized = errors.New("unauthorized")

// ValidationError reports a single rejected input field. It maps to a 400 at
// the API boundary, always naming the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for field with a printf-style reason.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
