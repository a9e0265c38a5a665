package signup

import (
	"strings"

	"github.com/dmitrymomot/signupkit/pkg/validator"
)

// MinPasswordLength is the minimum password length in characters.
const MinPasswordLength = 8

const (
	msgPasswordRequired     = "Password is required"
	msgPasswordTooShort     = "Password must be at least 8 characters long"
	msgEmailRequired        = "Email is required"
	msgEmailMalformed       = "Please enter a valid email address"
	msgPhoneMalformed       = "Please enter a valid phone number"
	msgConfirmationRequired = "Please confirm your password"
	msgPasswordMismatch     = "Passwords do not match"
	msgTermsRequired        = "You must agree to the terms and conditions"
)

// firstFailure runs rules in order and reports the first failure for id.
func firstFailure(id FieldID, rules ...validator.Rule) ValidationResult {
	if verr, failed := validator.First(rules...); failed {
		return Invalid(id, verr.Code, verr.Message)
	}
	return Valid(id)
}

// ValidateRequired applies the generic checks to any field: a required field
// must not be blank, and the password field must be at least
// MinPasswordLength characters once trimmed.
func ValidateRequired(f Field) ValidationResult {
	name := string(f.ID)
	value := strings.TrimSpace(f.Value)

	var rules []validator.Rule
	if f.Required {
		rules = append(rules, validator.NotEmpty(name, value).WithMessage(Label(f.ID)+" is required"))
	}
	if f.ID == Password && f.Kind == KindPassword {
		rules = append(rules, validator.MinLenString(name, value, MinPasswordLength).WithMessage(msgPasswordTooShort))
	}

	return firstFailure(f.ID, rules...)
}

// ValidatePassword checks the raw, untrimmed password.
func ValidatePassword(value string) ValidationResult {
	return firstFailure(Password,
		validator.NotEmpty(string(Password), value).WithMessage(msgPasswordRequired),
		validator.MinLenString(string(Password), value, MinPasswordLength).WithMessage(msgPasswordTooShort),
	)
}

// ValidateEmail checks the trimmed address for local@domain.tld shape.
func ValidateEmail(value string) ValidationResult {
	value = strings.TrimSpace(value)
	return firstFailure(Email,
		validator.NotEmpty(string(Email), value).WithMessage(msgEmailRequired),
		validator.ValidEmail(string(Email), value).WithMessage(msgEmailMalformed),
	)
}

// ValidatePhone checks the trimmed number. Phone is optional, so an empty
// value is valid.
func ValidatePhone(value string) ValidationResult {
	value = strings.TrimSpace(value)
	if value == "" {
		return Valid(Phone)
	}
	return firstFailure(Phone,
		validator.ValidPhone(string(Phone), value).WithMessage(msgPhoneMalformed),
	)
}

// ValidatePasswordConfirmation checks that confirmation repeats password
// exactly. Neither value is trimmed.
func ValidatePasswordConfirmation(password, confirmation string) ValidationResult {
	return firstFailure(ConfirmPassword,
		validator.NotEmpty(string(ConfirmPassword), confirmation).WithMessage(msgConfirmationRequired),
		validator.Equal(string(ConfirmPassword), confirmation, password).WithMessage(msgPasswordMismatch),
	)
}

// ValidateTerms checks that the terms were accepted.
func ValidateTerms(accepted bool) ValidationResult {
	return firstFailure(Terms,
		validator.RequiredComparable(string(Terms), accepted).WithMessage(msgTermsRequired),
	)
}

// validateOne runs the full submit chain of one field.
func validateOne(f Field, snap Snapshot) ValidationResult {
	switch f.Kind {
	case KindEmail:
		return ValidateEmail(f.Value)
	case KindPhone:
		return ValidatePhone(f.Value)
	case KindPassword:
		// The generic check runs first; only its failure is observable
		// when both would fail.
		if res := ValidateRequired(f); !res.IsValid() {
			return res
		}
		res := ValidatePassword(f.Value)
		res.Field = f.ID
		return res
	case KindPasswordConfirmation:
		res := ValidatePasswordConfirmation(snap.Value(Password), f.Value)
		res.Field = f.ID
		return res
	case KindCheckbox:
		if !f.Required {
			return Valid(f.ID)
		}
		res := ValidateTerms(f.Checked())
		res.Field = f.ID
		return res
	default:
		return ValidateRequired(f)
	}
}

// ValidateForm validates every declared field of snap. It never stops at
// the first failure: every field gets a result.
func ValidateForm(snap Snapshot) FormResult {
	result := FormResult{
		Valid:   true,
		Results: make(map[FieldID]ValidationResult, len(catalogue)),
		order:   make([]FieldID, 0, len(catalogue)),
	}

	for _, spec := range catalogue {
		res := validateOne(capture(snap, spec), snap)
		result.Results[spec.ID] = res
		result.order = append(result.order, spec.ID)
		if !res.IsValid() {
			result.Valid = false
		}
	}

	return result
}

// ValidateField validates a single field of snap the way leaving the field
// does: only the generic checks of ValidateRequired apply. Format, match and
// consent rules wait for submit.
func ValidateField(id FieldID, snap Snapshot) (ValidationResult, error) {
	spec, ok := Lookup(id)
	if !ok {
		return ValidationResult{}, ErrUnknownField
	}

	f := capture(snap, spec)
	if f.Kind == KindCheckbox {
		// The box carries its value attribute whether ticked or not.
		f.Value = CheckboxValue
	}
	return ValidateRequired(f), nil
}

// capture reads the value of spec from snap. Kind and required flag always
// come from the catalogue.
func capture(snap Snapshot, spec Spec) Field {
	f, _ := snap.Field(spec.ID)
	f.ID = spec.ID
	f.Kind = spec.Kind
	f.Required = spec.Required
	return f
}
