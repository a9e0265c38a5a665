package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/pkg/metrics"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New("test", reg)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Post("/signup/validate/{field}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("page"))
	})

	for _, field := range []string{"email", "phone", "password"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/signup/validate/"+field, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	expected := `
# HELP test_http_requests_total HTTP requests by route pattern, method and status code.
# TYPE test_http_requests_total counter
test_http_requests_total{method="GET",route="/",status="200"} 1
test_http_requests_total{method="GET",route="unmatched",status="404"} 1
test_http_requests_total{method="POST",route="/signup/validate/{field}",status="204"} 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_http_requests_total"))
	count, err := testutil.GatherAndCount(reg, "test_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSignupCounters(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New("test", reg)

	m.ValidationFailed("email", "malformed")
	m.ValidationFailed("email", "malformed")
	m.ValidationFailed("terms", "required")
	m.SignupAccepted()
	m.RateLimited()

	expected := `
# HELP test_signup_accepted_total Signups that passed validation.
# TYPE test_signup_accepted_total counter
test_signup_accepted_total 1
# HELP test_signup_rate_limited_total Signup submissions rejected by the rate limiter.
# TYPE test_signup_rate_limited_total counter
test_signup_rate_limited_total 1
# HELP test_signup_validation_failures_total Field validation failures by field id and error code.
# TYPE test_signup_validation_failures_total counter
test_signup_validation_failures_total{code="malformed",field="email"} 2
test_signup_validation_failures_total{code="required",field="terms"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"test_signup_accepted_total",
		"test_signup_rate_limited_total",
		"test_signup_validation_failures_total",
	))
}

func TestHandler(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New("test", reg)
	m.SignupAccepted()

	w := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(body), "test_signup_accepted_total 1")
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics.New("test", reg)
	assert.Panics(t, func() { metrics.New("test", reg) })
}
