package schema

import (
	"errors"
	"fmt"
)

// ErrUnknownField indicates an edit for a field the schema does not define.
var ErrUnknownField = errors.New("unknown field")

// ErrInvalidValue indicates an edit value of the wrong type or out of range.
var ErrInvalidValue = errors.New("invalid value")

// FieldError reports which field an edit failed for.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidValue}, args...)...)
}
