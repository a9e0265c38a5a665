package signup

import (
	"github.com/dmitrymomot/signupkit/pkg/validator"
)

// ValidationResult is the outcome of validating one field.
// A zero Code means the field is valid.
type ValidationResult struct {
	Field   FieldID
	Code    validator.Code
	Message string
}

// Valid returns a passing result for id.
func Valid(id FieldID) ValidationResult {
	return ValidationResult{Field: id}
}

// Invalid returns a failing result for id.
func Invalid(id FieldID, code validator.Code, message string) ValidationResult {
	return ValidationResult{Field: id, Code: code, Message: message}
}

func (r ValidationResult) IsValid() bool {
	return r.Code == ""
}

// FormResult is the outcome of validating a whole snapshot.
type FormResult struct {
	Valid   bool
	Results map[FieldID]ValidationResult
	order   []FieldID
}

// Ordered returns the results in validation order.
func (r FormResult) Ordered() []ValidationResult {
	out := make([]ValidationResult, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.Results[id])
	}
	return out
}

// Failures maps every failing field to its code.
func (r FormResult) Failures() map[string]string {
	out := make(map[string]string)
	for id, res := range r.Results {
		if !res.IsValid() {
			out[string(id)] = string(res.Code)
		}
	}
	return out
}
