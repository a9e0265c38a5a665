package validator

import "regexp"

var (
	// One @ between a whitespace-free local part and a dotted domain.
	// Unicode separators and BOM count as whitespace, not only ASCII.
	emailRegex = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)

	// Digits, whitespace, hyphens and parentheses only.
	phoneRegex = regexp.MustCompile(`^[\d\s\p{Z}\x{FEFF}\-\(\)]+$`)
)

// ValidEmail validates that a string looks like local@domain.tld.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMalformed,
			Message: "must be a valid email address",
		},
	}
}

// ValidPhone validates that a non-empty string is made of digits,
// whitespace, hyphens and parentheses.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phoneRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMalformed,
			Message: "must be a valid phone number",
		},
	}
}
