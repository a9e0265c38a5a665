package clientip

import (
	"context"
	"net/http"
)

type contextKey struct{}

// Middleware resolves the client address once and stores it in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), contextKey{}, GetIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromRequest returns the address stored by Middleware, resolving it
// directly when the middleware did not run.
func FromRequest(r *http.Request) string {
	if ip, ok := r.Context().Value(contextKey{}).(string); ok {
		return ip
	}
	return GetIP(r)
}
