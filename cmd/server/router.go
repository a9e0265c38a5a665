package main

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/signupkit/pkg/clientip"
	"github.com/dmitrymomot/signupkit/pkg/environment"
	"github.com/dmitrymomot/signupkit/pkg/httpserver"
	"github.com/dmitrymomot/signupkit/pkg/metrics"
	"github.com/dmitrymomot/signupkit/pkg/ratelimiter"
	"github.com/dmitrymomot/signupkit/pkg/requestid"
)

const metricsNamespace = "signupkit"

type routerDeps struct {
	env         environment.Environment
	log         *slog.Logger
	metrics     *metrics.Metrics
	gatherer    prometheus.Gatherer
	checks      map[string]httpserver.Check
	fieldBucket *ratelimiter.Bucket
	signup      http.Handler
}

// fieldEndpointKey limits blur and clear requests per client address and
// leaves every other route alone.
func fieldEndpointKey(r *http.Request) string {
	if r.Method != http.MethodPost ||
		!(strings.HasPrefix(r.URL.Path, "/signup/validate/") || strings.HasPrefix(r.URL.Path, "/signup/clear/")) {
		return ""
	}
	return ratelimiter.Composite(ratelimiter.Prefix("field"), clientip.FromRequest)(r)
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(d.env),
		d.metrics.Middleware,
	)
	if d.fieldBucket != nil {
		r.Use(ratelimiter.Middleware(d.fieldBucket, fieldEndpointKey, d.log))
	}

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(d.log, d.checks))
	r.Method(http.MethodGet, "/metrics", metrics.Handler(d.gatherer))

	r.Mount("/", d.signup)

	return r
}
