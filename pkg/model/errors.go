package model

import (
	"errors"
	"fmt"

	"github.com/timelinekit/timelinekit/pkg/constants"
)

// InvalidFieldError reports a public value that could not be converted to
// its live type.
type InvalidFieldError struct {
	Field string
	Value any
	Err   error
}

func (e *InvalidFieldError) Error() string {
	msg := fmt.Sprintf("invalid field %q", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf(" (value %q)", fmt.Sprint(e.Value))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidFieldError) Unwrap() error {
	return e.Err
}

func (e *InvalidFieldError) Is(target error) bool {
	return target == constants.ErrInvalidField
}

// Nest prefixes the field path of err with parent. Errors that are not an
// InvalidFieldError are wrapped in one.
func Nest(parent string, err error) error {
	var fe *InvalidFieldError
	if errors.As(err, &fe) {
		return &InvalidFieldError{
			Field: parent + "." + fe.Field,
			Value: fe.Value,
			Err:   fe.Err,
		}
	}
	return &InvalidFieldError{Field: parent, Err: err}
}
