// Package views holds the HTML components of the signup page.
//
// Components are written in templ; the *_templ.go files are generated with
// `templ generate` and must not be edited by hand. Inputs carry DataStar
// attributes: blur posts the form to /signup/validate/{field}, typing into
// an invalid field posts to /signup/clear/{field}, and the "invalid" signal
// map toggles the error class and border color.
package views
