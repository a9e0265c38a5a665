package views

import (
	"github.com/dmitrymomot/signupkit/handler"
	"github.com/dmitrymomot/signupkit/modules/signup"
)

// Default returns the components the signup service renders with.
func Default() signup.Views {
	return signup.Views{
		Page:       Page,
		FieldError: FieldError,
		Success:    Success,
	}
}

// ErrorHandlerConfig returns the error page and toast used by the
// service's error handler.
func ErrorHandlerConfig() handler.ErrorHandlerConfig {
	return handler.ErrorHandlerConfig{
		ErrorPage:  ErrorPage,
		ErrorToast: Toast,
	}
}
