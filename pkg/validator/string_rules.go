package validator

import (
	"fmt"
	"unicode/utf8"
)

// NotEmpty validates that a string has at least one character.
// Whitespace counts as content; trim first where it should not.
func NotEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeRequired,
			Message: "field is required",
		},
	}
}

// MinLenString validates that a string has at least min characters.
// Length is counted in runes.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeTooShort,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}
