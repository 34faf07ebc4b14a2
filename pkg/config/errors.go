package config

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ValidationError reports an option with an unusable value
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string

	frame xerrors.Frame
}

// NewValidationError creates a validation error recording the caller's frame
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
		frame:   xerrors.Caller(1),
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Message)
}

func (e *ValidationError) Format(f fmt.State, c rune) { // implements fmt.Formatter
	xerrors.FormatError(e, f, c)
}

func (e *ValidationError) FormatError(p xerrors.Printer) error { // implements xerrors.Formatter
	p.Print(e.Error())
	if p.Detail() {
		e.frame.Format(p)
	}
	return nil
}
