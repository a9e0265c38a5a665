// Package metrics exposes Prometheus collectors for HTTP traffic and signup
// outcomes.
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New("signupkit", reg)
//	r.Use(m.Middleware)
//	r.Method(http.MethodGet, "/metrics", metrics.Handler(reg))
//
// Collectors are registered on an explicit Registerer so tests can use a
// fresh prometheus.NewRegistry.
package metrics
