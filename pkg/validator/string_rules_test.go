package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signupkit/pkg/validator"
)

func TestNotEmpty(t *testing.T) {
	t.Parallel()

	_, failed := validator.First(validator.NotEmpty("password", "   "))
	assert.False(t, failed, "whitespace counts as content")

	verr, failed := validator.First(validator.NotEmpty("password", ""))
	if assert.True(t, failed) {
		assert.Equal(t, validator.CodeRequired, verr.Code)
		assert.ErrorIs(t, verr, validator.ErrFieldRequired)
	}
}

func TestMinLenString(t *testing.T) {
	t.Parallel()

	_, failed := validator.First(validator.MinLenString("password", "12345678", 8))
	assert.False(t, failed)
	_, failed = validator.First(validator.MinLenString("password", "пароль12", 8))
	assert.False(t, failed, "runes, not bytes")

	verr, failed := validator.First(validator.MinLenString("password", "1234567", 8))
	if assert.True(t, failed) {
		assert.Equal(t, validator.CodeTooShort, verr.Code)
		assert.Equal(t, "must be at least 8 characters long", verr.Message)
	}
}
