package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrDependencyNotFound  = errors.New("task dependency not found")
	ErrSelfDependency      = errors.New("task cannot depend on itself")
	ErrCircularDependency  = errors.New("dependency would create a cycle")
	ErrDuplicateDependency = errors.New("dependency already exists")
)

// ValidationError reports a task field that violates the schema. Callers fix
// the input; nothing is retried.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
