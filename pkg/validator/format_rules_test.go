package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signupkit/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"a@b.com",
		"jane@doe.com",
		"first.last+tag@sub.example.org",
		"x@y.z",
	}
	invalid := []string{
		"",
		"a@b",
		"a.b.com",
		"a@@b.com",
		"a b@c.com",
		"a@b .com",
		"@b.com",
		"a@.com.",
		"a\u00a0b@c.com",
		"a@b\u2003c.com",
		"a@b.co\u3000m",
		"\ufeffa@b.com",
	}

	for _, email := range valid {
		_, failed := validator.First(validator.ValidEmail("email", email))
		assert.False(t, failed, email)
	}
	for _, email := range invalid {
		verr, failed := validator.First(validator.ValidEmail("email", email))
		if assert.True(t, failed, email) {
			assert.ErrorIs(t, verr, validator.ErrInvalidFormat)
		}
	}
}

func TestValidPhone(t *testing.T) {
	t.Parallel()

	valid := []string{
		"(555) 123-4567",
		"5551234567",
		"555 123 4567",
		"555\u00a0123\u00a04567",
		"--()",
	}
	invalid := []string{
		"",
		"abc",
		"+1 555 123 4567",
		"555.123.4567",
		"555-CALL-NOW",
		"\uff15\uff15\uff15",
	}

	for _, phone := range valid {
		_, failed := validator.First(validator.ValidPhone("phone", phone))
		assert.False(t, failed, phone)
	}
	for _, phone := range invalid {
		verr, failed := validator.First(validator.ValidPhone("phone", phone))
		if assert.True(t, failed, phone) {
			assert.Equal(t, validator.CodeMalformed, verr.Code)
		}
	}
}
