package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/pkg/binder"
)

func TestPath(t *testing.T) {
	t.Parallel()

	type fieldRequest struct {
		Field    string `path:"field"`
		Page     uint   `path:"page"`
		Email    string `form:"email"`
		Internal string `path:"-"`
	}

	t.Run("custom extractor", func(t *testing.T) {
		t.Parallel()
		params := map[string]string{"field": "email", "page": "2", "Internal": "x", "email": "nope"}
		extractor := func(_ *http.Request, name string) string { return params[name] }

		var got fieldRequest
		require.NoError(t, binder.Path(extractor)(httptest.NewRequest(http.MethodPost, "/", nil), &got))

		assert.Equal(t, "email", got.Field)
		assert.Equal(t, uint(2), got.Page)
		assert.Empty(t, got.Email)
		assert.Empty(t, got.Internal)
	})

	t.Run("chi url params", func(t *testing.T) {
		t.Parallel()
		var got fieldRequest
		r := chi.NewRouter()
		r.Post("/signup/validate/{field}", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, binder.Path(chi.URLParam)(r, &got))
			w.WriteHeader(http.StatusNoContent)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/signup/validate/confirmPassword", nil))

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "confirmPassword", got.Field)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		extractor := func(_ *http.Request, name string) string { return "not-a-number" }

		var got fieldRequest
		assert.ErrorIs(t, binder.Path(nil)(req, &got), binder.ErrInvalidPath)
		assert.ErrorIs(t, binder.Path(extractor)(req, &got), binder.ErrInvalidPath)
		assert.ErrorIs(t, binder.Path(extractor)(req, got), binder.ErrInvalidPath)
	})
}
