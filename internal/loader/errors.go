package loader

import (
	"errors"
	"fmt"
)

// Classification of load failures. Every error returned by Load wraps exactly
// one of these, so callers dispatch with errors.Is.
var (
	ErrSourceUnreadable = errors.New("descriptor unreadable")
	ErrMalformedSource  = errors.New("descriptor not valid TOML")
	ErrMissingField     = errors.New("required field missing")
	ErrDuplicateTicker  = errors.New("duplicate ticker")
)

// FieldError reports a required key that is absent, empty, or not a string
// within one descriptor section. It unwraps to ErrMissingField.
type FieldError struct {
	Section string // Descriptor section, conventionally the ticker
	Key     string // Offending key
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("section %q: required field %q missing or not a string", e.Section, e.Key)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}
