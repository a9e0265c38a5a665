// Package signup implements the signup form: field catalogue, validation,
// error presentation and the HTTP handlers serving them.
//
// Validation is a set of pure functions over a Snapshot of the submitted
// values. ValidateForm evaluates every field and never stops at the first
// failure; ValidateField runs the same per-field chain for blur validation.
// Results are plain data (ValidationResult), never Go errors.
//
// A Presenter turns results into UI changes. For DataStar requests the
// service streams one patch per field error region (<fieldId>Error) plus an
// "invalid" signal map that toggles the input's error class and border;
// plain form posts get the whole page re-rendered, with status 422 when the
// submission was rejected.
//
// Routes:
//
//	GET  /                          landing page
//	POST /signup                    whole-form submit
//	POST /signup/validate/{field}   blur validation of one field
//	POST /signup/clear/{field}      clears one field's error on input
//
// Accepted signups are handed to a Registrar. The default LocalRegistrar
// only issues a receipt; nothing is persisted or sent anywhere.
package signup
