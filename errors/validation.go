package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies the kind of validation failure.
type ErrorCode string

const (
	// ErrMarkupParse indicates the markup could not be read or parsed.
	ErrMarkupParse ErrorCode = "markup-parse-error"
	// ErrSelectorRequired indicates a required selector resolved to no value.
	ErrSelectorRequired ErrorCode = "selector-required"
	// ErrAnyExhausted indicates a required fallback selector exhausted all members.
	ErrAnyExhausted ErrorCode = "selector-any-exhausted"
)

// Validation describes a selector resolution failure with an error code and
// optional selector pattern and schema field context.
//
//nolint:errname // public API name uses the schema domain term.
type Validation struct {
	Code     string
	Message  string
	Selector string
	Field    string
}

// Error formats the validation for display, including code, message, and context.
func (v *Validation) Error() string {
	if v == nil {
		return "validation <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", v.Code, v.Message))
	if v.Selector != "" {
		b.WriteString(fmt.Sprintf(" (selector: %s)", v.Selector))
	}
	if v.Field != "" {
		b.WriteString(fmt.Sprintf(" (field: %s)", v.Field))
	}
	return b.String()
}

// NewValidation builds a Validation with a code, message, and optional selector pattern.
func NewValidation(code ErrorCode, msg, selector string) *Validation {
	return &Validation{Code: string(code), Message: msg, Selector: selector}
}

// NewValidationf formats a message and builds a Validation.
func NewValidationf(code ErrorCode, selector, format string, args ...any) *Validation {
	return NewValidation(code, fmt.Sprintf(format, args...), selector)
}

// WithField returns a copy of the validation annotated with a schema field name.
func (v *Validation) WithField(field string) *Validation {
	if v == nil {
		return nil
	}
	c := *v
	c.Field = field
	return &c
}

// AsValidation extracts a validation error from an error returned by resolution helpers.
func AsValidation(err error) (*Validation, bool) {
	if err == nil {
		return nil, false
	}
	var v *Validation
	if errors.As(err, &v) && v != nil {
		return v, true
	}
	return nil, false
}
