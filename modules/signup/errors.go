package signup

import "errors"

var (
	ErrUnknownField     = errors.New("unknown form field")
	ErrInvalidCatalogue = errors.New("invalid form catalogue")
	ErrNoViews          = errors.New("signup views are not configured")
)
