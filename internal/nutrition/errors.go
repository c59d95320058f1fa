package nutrition

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// ValidationError reports the failing input field and the constraint it broke.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Constraint)
}

func newValidationError(field, constraint string) *ValidationError {
	return &ValidationError{
		Field:      field,
		Constraint: constraint,
	}
}

// IsValidationError checks if any error in the chain is a *ValidationError
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
