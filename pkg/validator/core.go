package validator

import "fmt"

// Code classifies why a value failed validation.
type Code string

const (
	// CodeRequired marks a value that is missing where it is mandatory.
	CodeRequired Code = "required"
	// CodeTooShort marks a value below its minimum length.
	CodeTooShort Code = "too_short"
	// CodeMalformed marks a value that is present but fails a format rule.
	CodeMalformed Code = "malformed"
	// CodeMismatch marks a value that must equal another one but does not.
	CodeMismatch Code = "mismatch"
)

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Field   string
	Code    Code
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap maps the failure code onto the package sentinel errors,
// so errors.Is(err, ErrFieldRequired) works on a single ValidationError.
func (e ValidationError) Unwrap() error {
	switch e.Code {
	case CodeRequired:
		return ErrFieldRequired
	case CodeTooShort:
		return ErrInvalidLength
	case CodeMalformed:
		return ErrInvalidFormat
	case CodeMismatch:
		return ErrMismatch
	default:
		return ErrValidationFailed
	}
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of the rule reporting msg instead of its default message.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

// First executes rules in order and returns the first failure.
// Rules after the first failing one are not evaluated.
func First(rules ...Rule) (ValidationError, bool) {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error, true
		}
	}
	return ValidationError{}, false
}
