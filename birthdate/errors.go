package birthdate

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidDateFormat indicates the input cannot be parsed as a date.
	ErrInvalidDateFormat = errors.New("birthdate: invalid date format")

	// ErrOutOfRangeDate indicates a syntactically plausible date that is not
	// a real Gregorian calendar day, or a year outside 1..9999.
	ErrOutOfRangeDate = errors.New("birthdate: date out of range")
)

// Field names reported by FieldError.
const (
	FieldDate  = "date"
	FieldYear  = "year"
	FieldMonth = "month"
	FieldDay   = "day"
)

// FieldError reports which part of the input was rejected.
type FieldError struct {
	Field string // one of the Field* constants
	Value string // offending input, as given
	Err   error  // ErrInvalidDateFormat or ErrOutOfRangeDate
}

// Error implements error.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s %q", e.Err, e.Field, e.Value)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *FieldError) Unwrap() error { return e.Err }

func formatError(value, hint string) error {
	err := &FieldError{Field: FieldDate, Value: value, Err: ErrInvalidDateFormat}

	return errors.WithHint(errors.WithStack(err), hint)
}

func rangeError(field string, value int, hintf string, args ...interface{}) error {
	err := &FieldError{Field: field, Value: fmt.Sprint(value), Err: ErrOutOfRangeDate}

	return errors.WithHintf(errors.WithStack(err), hintf, args...)
}
