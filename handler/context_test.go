package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/handler"
)

func TestContext_SSE(t *testing.T) {
	t.Parallel()

	t.Run("DataStar request gets a generator", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/signup/validate/email", nil)
		req.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()

		ctx := handler.NewContext(w, req)
		assert.NotNil(t, ctx.SSE())
	})

	t.Run("plain request has no generator", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/signup", nil)
		w := httptest.NewRecorder()

		ctx := handler.NewContext(w, req)
		assert.Nil(t, ctx.SSE())
		assert.Empty(t, w.Header().Get("Content-Type"), "no headers written for plain requests")
	})

	t.Run("generator is created lazily and reused", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/signup", nil)
		req.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()

		ctx := handler.NewContext(w, req)
		assert.Empty(t, w.Header().Get("Content-Type"), "headers must not be written before first use")

		first := ctx.SSE()
		require.NotNil(t, first)
		assert.Same(t, first, ctx.SSE())
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	})

	t.Run("delegates to request context", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		reqCtx, cancel := context.WithCancel(req.Context())
		req = req.WithContext(context.WithValue(reqCtx, ctxKey{}, "value"))
		w := httptest.NewRecorder()

		ctx := handler.NewContext(w, req)
		assert.Equal(t, req, ctx.Request())
		assert.Equal(t, w, ctx.ResponseWriter())
		assert.Equal(t, "value", ctx.Value(ctxKey{}))

		_, hasDeadline := ctx.Deadline()
		assert.False(t, hasDeadline)

		cancel()
		<-ctx.Done()
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})
}

type ctxKey struct{}
