package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/pkg/binder"
)

type signupForm struct {
	FirstName string   `form:"firstName"`
	Email     string   `form:"email"`
	Terms     bool     `form:"terms"`
	Age       *int     `form:"age"`
	Tags      []string `form:"tags"`
	Internal  string   `form:"-"`
	Untagged  string
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded body", func(t *testing.T) {
		t.Parallel()
		body := url.Values{
			"firstName": {"Jane"},
			"email":     {"jane@doe.com"},
			"terms":     {"on"},
			"age":       {"30"},
			"tags":      {"a,b", "c"},
			"Internal":  {"x"},
			"untagged":  {"y"},
		}
		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got signupForm
		require.NoError(t, binder.Form()(req, &got))

		assert.Equal(t, "Jane", got.FirstName)
		assert.Equal(t, "jane@doe.com", got.Email)
		assert.True(t, got.Terms)
		require.NotNil(t, got.Age)
		assert.Equal(t, 30, *got.Age)
		assert.Equal(t, []string{"a", "b", "c"}, got.Tags)
		assert.Empty(t, got.Internal)
		assert.Empty(t, got.Untagged)
	})

	t.Run("query string is not form data", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/signup?firstName=Query", strings.NewReader("email=a%40b.com"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got signupForm
		require.NoError(t, binder.Form()(req, &got))
		assert.Empty(t, got.FirstName)
		assert.Equal(t, "a@b.com", got.Email)
	})

	t.Run("unchecked checkbox stays false", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("firstName=Jane"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got signupForm
		require.NoError(t, binder.Form()(req, &got))
		assert.False(t, got.Terms)
	})

	t.Run("multipart body", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("firstName", "Jane"))
		require.NoError(t, mw.WriteField("terms", "true"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/signup", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		var got signupForm
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "Jane", got.FirstName)
		assert.True(t, got.Terms)
	})

	t.Run("get request is not applicable", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		var got signupForm
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name        string
			contentType string
			body        string
			target      any
			wantErr     error
		}{
			{"missing content type", "", "a=b", &signupForm{}, binder.ErrMissingContentType},
			{"json body", "application/json", `{}`, &signupForm{}, binder.ErrUnsupportedMediaType},
			{"multipart without boundary", "multipart/form-data", "", &signupForm{}, binder.ErrInvalidForm},
			{"invalid int", "application/x-www-form-urlencoded", "age=old", &signupForm{}, binder.ErrInvalidForm},
			{"invalid bool", "application/x-www-form-urlencoded", "terms=maybe", &signupForm{}, binder.ErrInvalidForm},
			{"non pointer target", "application/x-www-form-urlencoded", "a=b", signupForm{}, binder.ErrInvalidForm},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(tt.body))
				if tt.contentType != "" {
					req.Header.Set("Content-Type", tt.contentType)
				}
				assert.ErrorIs(t, binder.Form()(req, tt.target), tt.wantErr)
			})
		}
	})
}
