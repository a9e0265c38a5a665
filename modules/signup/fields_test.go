package signup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/modules/signup"
)

func TestFields(t *testing.T) {
	t.Parallel()

	fields := signup.Fields()
	ids := make([]signup.FieldID, 0, len(fields))
	for _, f := range fields {
		ids = append(ids, f.ID)
	}

	assert.Equal(t, []signup.FieldID{
		signup.FirstName,
		signup.LastName,
		signup.Email,
		signup.Phone,
		signup.Password,
		signup.ConfirmPassword,
		signup.Terms,
	}, ids)

	phone, ok := signup.Lookup(signup.Phone)
	require.True(t, ok)
	assert.False(t, phone.Required)
	assert.Equal(t, signup.KindPhone, phone.Kind)
	assert.Equal(t, "tel", phone.InputType)

	confirm, ok := signup.Lookup(signup.ConfirmPassword)
	require.True(t, ok)
	assert.Equal(t, signup.KindPasswordConfirmation, confirm.Kind)

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()

		fields := signup.Fields()
		fields[0].Label = "changed"
		assert.Equal(t, "First Name", signup.Label(signup.FirstName))
	})
}

func TestLabel(t *testing.T) {
	t.Parallel()

	tests := map[signup.FieldID]string{
		signup.FirstName:       "First Name",
		signup.LastName:        "Last Name",
		signup.Email:           "Email",
		signup.Phone:           "Phone Number",
		signup.Password:        "Password",
		signup.ConfirmPassword: "Confirm Password",
		signup.Terms:           "Terms",
		"nickname":             "nickname",
	}

	for id, want := range tests {
		assert.Equal(t, want, signup.Label(id), id)
	}
}

func TestParseFieldID(t *testing.T) {
	t.Parallel()

	id, err := signup.ParseFieldID("confirmPassword")
	require.NoError(t, err)
	assert.Equal(t, signup.ConfirmPassword, id)

	_, err = signup.ParseFieldID("nickname")
	assert.ErrorIs(t, err, signup.ErrUnknownField)

	_, err = signup.ParseFieldID("")
	assert.ErrorIs(t, err, signup.ErrUnknownField)
}
