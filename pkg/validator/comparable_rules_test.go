package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signupkit/pkg/validator"
)

func TestRequiredComparable(t *testing.T) {
	t.Parallel()

	_, failed := validator.First(validator.RequiredComparable("terms", true))
	assert.False(t, failed)

	verr, failed := validator.First(validator.RequiredComparable("terms", false))
	if assert.True(t, failed) {
		assert.Equal(t, validator.CodeRequired, verr.Code)
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	_, failed := validator.First(validator.Equal("confirmPassword", "abc12345", "abc12345"))
	assert.False(t, failed)

	verr, failed := validator.First(validator.Equal("confirmPassword", "xyz", "abc12345"))
	if assert.True(t, failed) {
		assert.Equal(t, validator.CodeMismatch, verr.Code)
		assert.ErrorIs(t, verr, validator.ErrMismatch)
	}
}
