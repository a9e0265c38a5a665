package handler

import (
	"net/http"
)

// SSEHandler streams events for one DataStar request.
// The stream closes when the handler returns or the client disconnects.
type SSEHandler func(ctx StreamContext) error

// sseResponse implements Response for Server-Sent Events.
type sseResponse struct {
	handler SSEHandler
}

// Render validates DataStar connection and executes the SSE handler.
func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "SSE endpoint requires DataStar connection")
	}

	base := NewContext(w, r)
	if base.SSE() == nil {
		return ErrSSENotInitialized
	}

	ctx := &streamContext{
		Context: base,
		sse:     base.SSE(),
	}

	return s.handler(ctx)
}

// SSE creates a response that runs handler with a StreamContext.
// Plain (non-DataStar) requests are rejected with 400.
//
// Example:
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		if err := stream.SendComponent(views.Success(receipt), handler.WithTarget("#signupForm")); err != nil {
//			return err
//		}
//		return stream.ExecuteScript(scrollToSuccess)
//	})
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
