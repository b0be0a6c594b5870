package validators

import (
	"errors"
	"fmt"
)

// ErrInvalidParent is returned when parent_id does not reference a stored transaction.
var ErrInvalidParent = errors.New("invalid parent id")

// MissingFieldError reports a required field that is absent, null or blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// ConversionError reports a field whose value does not parse to its declared type.
type ConversionError struct {
	Field string
	Value any
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("Value Error: %s", e.Field)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

var (
	errUnsupportedType = errors.New("unsupported value type")
	errNotFinite       = errors.New("value is not a finite number")
	errNotInteger      = errors.New("value is not an integer")
)
