package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LatencyBuckets suit server-rendered pages and small SSE responses.
var LatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// Metrics holds the HTTP and signup collectors of one service.
type Metrics struct {
	requests           *prometheus.CounterVec
	duration           *prometheus.HistogramVec
	inFlight           prometheus.Gauge
	validationFailures *prometheus.CounterVec
	signups            prometheus.Counter
	rateLimited        prometheus.Counter
}

// New registers all collectors under namespace with reg.
// It panics if they are already registered, like promauto.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   LatencyBuckets,
		}, []string{"route"}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Requests currently being served.",
		}),
		validationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signup",
			Name:      "validation_failures_total",
			Help:      "Field validation failures by field id and error code.",
		}, []string{"field", "code"}),
		signups: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signup",
			Name:      "accepted_total",
			Help:      "Signups that passed validation.",
		}),
		rateLimited: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signup",
			Name:      "rate_limited_total",
			Help:      "Signup submissions rejected by the rate limiter.",
		}),
	}
}

// ValidationFailed counts one failed field.
func (m *Metrics) ValidationFailed(field, code string) {
	m.validationFailures.WithLabelValues(field, code).Inc()
}

// SignupAccepted counts one accepted signup.
func (m *Metrics) SignupAccepted() {
	m.signups.Inc()
}

// RateLimited counts one rejected submission.
func (m *Metrics) RateLimited() {
	m.rateLimited.Inc()
}

// Middleware records request count and latency labelled by the chi route
// pattern, so /signup/validate/{field} is one series regardless of field.
// Unmatched requests are labelled "unmatched".
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// Handler exposes the collectors gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
