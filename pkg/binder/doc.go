// Package binder binds HTTP request data onto Go structs for typed handlers.
//
// Each binder reads one source and one struct tag:
//
//   - Form()          – `form:"name"` from application/x-www-form-urlencoded or multipart/form-data bodies
//   - Path(extractor) – `path:"name"` from router path parameters (e.g. chi.URLParam)
//
// A binder returns ErrBinderNotApplicable when its source is absent from the
// request (for example Form on a GET without a body), so several binders can
// be stacked on one handler and the inapplicable ones are skipped.
//
// # Basic Usage
//
//	type SignupRequest struct {
//	    FirstName string `form:"firstName"`
//	    Email     string `form:"email"`
//	    Terms     bool   `form:"terms"`
//	}
//
//	r.Post("/signup", handler.Wrap(submit,
//	    handler.WithBinders[handler.Context, SignupRequest](binder.Form()),
//	))
//
// Supported field types are strings, signed and unsigned integers, floats,
// booleans (leniently: "on", "yes" and "1" are true), pointers to those for
// optional fields, and slices for multi-value fields.
//
// # Errors
//
// Binding failures wrap one of the package sentinels (ErrInvalidForm,
// ErrInvalidPath, ErrUnsupportedMediaType, ErrMissingContentType), so callers
// can classify them with errors.Is.
package binder
