package handler

import "net/http"

// emptyResponse represents an empty HTTP response with only a status code
type emptyResponse struct {
	status int
}

// Render writes the status code without any body content
func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty creates an empty response with status 204 (No Content).
//
// Example:
//
//	// plain form posts have nothing to clear on the server
//	return handler.Empty()
func Empty() Response {
	return emptyResponse{
		status: http.StatusNoContent,
	}
}

// EmptyWithStatus creates an empty response with a custom status code.
func EmptyWithStatus(status int) Response {
	return emptyResponse{
		status: status,
	}
}

// errorResponse hands an error to the configured error handler
type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error creates a response that renders nothing and reports err to the
// error handler, so status codes and pages stay in one place.
//
// Example:
//
//	if !limiter.Allow(ctx, key) {
//		return handler.Error(handler.ErrTooManyRequests)
//	}
func Error(err error) Response {
	return errorResponse{err: err}
}

// statusResponse overrides the status code of a regular HTML response
type statusResponse struct {
	status int
	next   Response
}

// Render applies the status to plain requests only; event streams always answer 200.
func (s statusResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return s.next.Render(w, r)
	}
	return s.next.Render(&statusWriter{ResponseWriter: w, status: s.status}, r)
}

// WithStatus wraps a response so that plain HTML requests receive status
// instead of 200. Headers set by the wrapped response are preserved.
//
// Example:
//
//	// re-render the form with errors
//	return handler.WithStatus(http.StatusUnprocessableEntity, handler.Templ(views.Page(state)))
func WithStatus(status int, resp Response) Response {
	return statusResponse{status: status, next: resp}
}

// statusWriter defers WriteHeader until the first write
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	if code == http.StatusOK {
		code = w.status
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
