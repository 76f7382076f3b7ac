package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequiredField    = errors.New("field is required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrUnknownIcon      = errors.New("unknown icon")
	ErrUnknownKind      = errors.New("unknown resource kind")
	ErrNotCreatable     = errors.New("records of this kind cannot be created")
)

// FieldError reports the field a rule failed on.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FailedFields lists the fields of every FieldError joined into err, in
// order.
func FailedFields(err error) []string {
	if err == nil {
		return nil
	}

	var out []string
	var walk func(error)
	walk = func(e error) {
		if fe, ok := e.(*FieldError); ok {
			out = append(out, fe.Field)
			return
		}
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
		}
	}
	walk(err)
	return out
}
