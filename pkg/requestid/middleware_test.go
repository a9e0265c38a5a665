package requestid_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/pkg/logger"
	"github.com/dmitrymomot/signupkit/pkg/requestid"
)

func serve(t *testing.T, header string) (seen string, rec *httptest.ResponseRecorder) {
	t.Helper()

	h := requestid.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/signup", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates an id", func(t *testing.T) {
		t.Parallel()

		seen, rec := serve(t, "")
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(requestid.Header))
	})

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		t.Parallel()

		seen, rec := serve(t, "edge-proxy_42")
		assert.Equal(t, "edge-proxy_42", seen)
		assert.Equal(t, "edge-proxy_42", rec.Header().Get(requestid.Header))
	})

	t.Run("replaces invalid incoming ids", func(t *testing.T) {
		t.Parallel()

		for _, bad := range []string{
			"has space",
			"<script>alert(1)</script>",
			"a/b",
			strings.Repeat("x", 129),
		} {
			seen, _ := serve(t, bad)
			assert.NotEqual(t, bad, seen)
			_, err := uuid.Parse(seen)
			assert.NoError(t, err, bad)
		}
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	log.InfoContext(req.Context(), "without id")
	assert.NotContains(t, buf.String(), "request_id")

	buf.Reset()
	log.InfoContext(requestid.WithContext(req.Context(), "abc-123"), "with id")
	assert.Contains(t, buf.String(), "request_id=abc-123")

}
