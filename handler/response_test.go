package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/handler"
)

func TestEmpty(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	require.NoError(t, handler.Empty().Render(w, httptest.NewRequest(http.MethodPost, "/signup/clear/email", nil)))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Empty(t, w.Header().Get("Content-Type"))

	w = httptest.NewRecorder()
	require.NoError(t, handler.EmptyWithStatus(http.StatusAccepted).Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	err := handler.Error(handler.ErrTooManyRequests).Render(w, httptest.NewRequest(http.MethodPost, "/signup", nil))
	assert.True(t, errors.Is(err, handler.ErrTooManyRequests))
	assert.Empty(t, w.Body.String())
}

func TestWithStatus(t *testing.T) {
	t.Parallel()

	page := handler.Templ(mockComponent{"<form>errors</form>"})

	t.Run("plain request gets the status", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		resp := handler.WithStatus(http.StatusUnprocessableEntity, page)
		require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodPost, "/signup", nil)))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<form>errors</form>", w.Body.String())
	})

	t.Run("explicit non-200 status from the wrapped response wins", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		resp := handler.WithStatus(http.StatusUnprocessableEntity, handler.EmptyWithStatus(http.StatusNoContent))
		require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodPost, "/signup", nil)))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("event streams keep 200", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		resp := handler.WithStatus(http.StatusUnprocessableEntity, page)
		require.NoError(t, resp.Render(w, dataStarRequest(http.MethodPost, "/signup")))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "datastar-patch-elements")
	})
}

func TestTemplResponses(t *testing.T) {
	t.Parallel()

	full := mockComponent{`<html>page</html>`}

	t.Run("Templ renders html for plain requests", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, handler.Templ(full).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, "<html>page</html>", w.Body.String())
	})

	t.Run("TemplMulti concatenates or streams", func(t *testing.T) {
		t.Parallel()

		resp := handler.TemplMulti(
			handler.Patch(mockComponent{"<p>a</p>"}, handler.WithTarget("#firstNameError")),
			handler.Patch(mockComponent{"<p>b</p>"}, handler.WithTarget("#lastNameError")),
		)

		w := httptest.NewRecorder()
		require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))
		assert.Equal(t, "<p>a</p><p>b</p>", w.Body.String())

		w = httptest.NewRecorder()
		require.NoError(t, resp.Render(w, dataStarRequest(http.MethodPost, "/")))
		assert.Contains(t, w.Body.String(), "#firstNameError")
		assert.Contains(t, w.Body.String(), "#lastNameError")
	})
}
