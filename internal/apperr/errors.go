package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateCategory  = errors.New("category already exists")
	ErrNotFound           = errors.New("not found")
	ErrForeignKey         = errors.New("referenced category does not exist")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password too weak")
)

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add records a field failure and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
	return e
}

// OrNil returns nil when no field failed, so callers can `return v.OrNil()`.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, FormatFields(e.Fields))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// FormatFields renders field errors in a stable order.
func FormatFields(fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, fmt.Sprintf("%s: %s", name, fields[name]))
	}
	return strings.Join(msgs, "; ")
}

// Describe maps an error to the message shown to an operator.
func Describe(err error) string {
	var verr *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		return "Invalid input: " + FormatFields(verr.Fields)
	case errors.Is(err, ErrDuplicateUsername):
		return "That username is already taken"
	case errors.Is(err, ErrDuplicateCategory):
		return "A category with that name already exists"
	case errors.Is(err, ErrNotFound):
		return "Not found"
	case errors.Is(err, ErrForeignKey):
		return "The referenced category does not exist"
	case errors.Is(err, ErrUnauthorized):
		return "You are not allowed to do that"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, ErrWeakPassword):
		return "Password is too weak"
	default:
		return "Unexpected error: " + err.Error()
	}
}
