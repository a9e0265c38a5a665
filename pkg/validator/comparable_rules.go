package validator

// RequiredComparable validates that a comparable value is not its zero value.
func RequiredComparable[T comparable](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value != zero
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeRequired,
			Message: "field is required",
		},
	}
}

// Equal validates that value equals other, e.g. a repeated password.
func Equal[T comparable](field string, value, other T) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMismatch,
			Message: "values do not match",
		},
	}
}
