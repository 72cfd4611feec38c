package quotation

import (
	"errors"
	"fmt"
)

// Sentinel errors, test them with errors.Is.
var (
	// Draft validation
	ErrMissing    = errors.New("quotation: required value is missing")
	ErrNotANumber = errors.New("quotation: not a number")
	ErrNegative   = errors.New("quotation: negative value")

	ErrUnknownCurrency = errors.New("quotation: unknown currency code")

	// Session files
	ErrInconsistentTotal = errors.New("quotation: stored total does not match its line")
	ErrDuplicateID       = errors.New("quotation: duplicate item id")
	ErrInvalidID         = errors.New("quotation: invalid item id")
)

// FieldError reports why one field of a Draft was rejected.
type FieldError struct {
	Field string // Field is the draft field name, e.g. "rate".
	Value string // Value is the raw input.
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
