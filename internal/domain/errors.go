package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every *InvalidInputError via errors.Is.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidInflationRate is reported when inflation is at or below -100%.
	ErrInvalidInflationRate = errors.New("invalid inflation rate")
)

// InvalidInputError rejects a value before it reaches the calculation core.
type InvalidInputError struct {
	Field  string
	Reason string
	Err    error
}

// NewInvalidInput builds an InvalidInputError for field with a formatted reason.
func NewInvalidInput(field, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// WithField returns a copy of e whose field is prefixed with parent, e.g. "scenarios[0]".
func (e *InvalidInputError) WithField(parent string) *InvalidInputError {
	c := *e
	if c.Field == "" {
		c.Field = parent
	} else {
		c.Field = parent + "." + c.Field
	}
	return &c
}

// PrefixField qualifies the field of an InvalidInputError inside err with
// parent. Other errors are returned unchanged.
func PrefixField(parent string, err error) error {
	var ie *InvalidInputError
	if errors.As(err, &ie) {
		return ie.WithField(parent)
	}
	return err
}
