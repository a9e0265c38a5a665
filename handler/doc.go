// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request struct filled in by binders,
// and returns a Response that knows how to render itself. The same handler
// serves both plain form posts and DataStar requests: responses check
// IsDataStar and either write HTML or stream patch events.
//
// # Handlers
//
//	submit := func(ctx handler.Context, req SignupRequest) handler.Response {
//		result := signup.ValidateForm(req.Snapshot())
//		if !result.Valid {
//			return handler.WithStatus(http.StatusUnprocessableEntity, handler.Templ(views.Page(result)))
//		}
//		return handler.Templ(views.Page(result))
//	}
//
//	r.Post("/signup", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, SignupRequest](binder.Form()),
//		handler.WithErrorHandler[handler.Context, SignupRequest](errorHandler),
//	))
//
// # Responses
//
//   - Templ and TemplMulti render templ components
//   - SSE streams several patches, signals and scripts in one response
//   - Empty and EmptyWithStatus write a bare status
//   - WithStatus overrides the status of a plain HTML response
//   - Error forwards an error to the error handler
//
// # Errors
//
// NewErrorHandler classifies errors into status codes: HTTPError carries its
// own code and binder errors become 400 or 415. Everything else is a 500. Plain requests
// get an error page, DataStar requests get a toast patch.
package handler
