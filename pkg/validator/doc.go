// Package validator provides small, composable validation rules for form input.
//
// A Rule pairs a boolean Check with the ValidationError reported when the
// check fails. Every ValidationError carries a Code from a fixed taxonomy:
//
//   - CodeRequired  – value missing where it is mandatory
//   - CodeTooShort  – value below its minimum length
//   - CodeMalformed – value present but failing a format rule
//   - CodeMismatch  – value not equal to the value it must repeat
//
// # Usage
//
// First evaluates a chain for a single field and stops at the first failure:
//
//	if verr, failed := validator.First(
//	    validator.NotEmpty("password", pw).WithMessage("Password is required"),
//	    validator.MinLenString("password", pw, 8),
//	); failed {
//	    // render verr.Message next to the field
//	}
//
// Rules hold no state, so the package is safe for concurrent use.
//
// # Error Handling
//
// A ValidationError unwraps to one of the package sentinels
// (ErrFieldRequired, ErrInvalidLength, ErrInvalidFormat, ErrMismatch), so
// errors.Is works on individual failures.
package validator
