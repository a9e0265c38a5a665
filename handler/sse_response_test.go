package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/handler"
)

type mockComponent struct {
	content string
}

func (m mockComponent) Render(_ context.Context, w io.Writer) error {
	_, err := w.Write([]byte(m.content))
	return err
}

func dataStarRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Accept", "text/event-stream")
	return req
}

func TestSSE(t *testing.T) {
	t.Parallel()

	t.Run("rejects plain requests", func(t *testing.T) {
		t.Parallel()

		resp := handler.SSE(func(handler.StreamContext) error {
			t.Fatal("stream handler must not run")
			return nil
		})

		err := resp.Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/signup", nil))
		var httpErr handler.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("streams patches signals and scripts", func(t *testing.T) {
		t.Parallel()

		resp := handler.SSE(func(stream handler.StreamContext) error {
			if err := stream.SendComponent(mockComponent{`<div id="emailError">bad email</div>`}, handler.WithTarget("#emailError")); err != nil {
				return err
			}
			if err := stream.SendMultiple(
				handler.Patch(mockComponent{`<div id="phoneError"></div>`}, handler.WithTarget("#phoneError")),
				handler.Patch(mockComponent{`<div id="termsError">agree</div>`}, handler.WithTarget("#termsError")),
			); err != nil {
				return err
			}
			if err := stream.SendSignal("submitting", false); err != nil {
				return err
			}
			if err := stream.SendSignals(map[string]any{"invalid": map[string]bool{"email": true}}); err != nil {
				return err
			}
			return stream.ExecuteScript("window.scrolledToSuccess = true")
		})

		w := httptest.NewRecorder()
		require.NoError(t, resp.Render(w, dataStarRequest(http.MethodPost, "/signup")))

		body := w.Body.String()
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#emailError")
		assert.Contains(t, body, "bad email")
		assert.Contains(t, body, "#phoneError")
		assert.Contains(t, body, "#termsError")
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"submitting":false`)
		assert.Contains(t, body, `"invalid":{"email":true}`)
		assert.Contains(t, body, "window.scrolledToSuccess = true")
	})

	t.Run("stops on client disconnect", func(t *testing.T) {
		t.Parallel()

		started := make(chan struct{})
		stopped := make(chan struct{})

		resp := handler.SSE(func(stream handler.StreamContext) error {
			close(started)
			<-stream.Done()
			close(stopped)
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		req := dataStarRequest(http.MethodGet, "/signup").WithContext(ctx)

		go func() { _ = resp.Render(httptest.NewRecorder(), req) }()

		<-started
		cancel()

		select {
		case <-stopped:
		case <-time.After(time.Second):
			t.Fatal("stream handler did not stop on cancellation")
		}
	})

	t.Run("propagates handler error", func(t *testing.T) {
		t.Parallel()

		resp := handler.SSE(func(handler.StreamContext) error {
			return assert.AnError
		})

		err := resp.Render(httptest.NewRecorder(), dataStarRequest(http.MethodPost, "/signup"))
		assert.ErrorIs(t, err, assert.AnError)
	})
}
