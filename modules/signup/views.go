package signup

import (
	"fmt"

	"github.com/a-h/templ"
)

// FieldState is a field as rendered on the full page.
type FieldState struct {
	Spec
	Value string
	Error string
}

func (f FieldState) Invalid() bool {
	return f.Error != ""
}

// PageParams contains data for rendering the landing page.
// Receipt is set once a submission was accepted.
type PageParams struct {
	Fields  []FieldState
	Receipt *Receipt
}

// FieldErrorParams contains data for rendering one error region.
// An empty Message renders the region cleared.
type FieldErrorParams struct {
	Field   FieldID
	Message string
}

// SuccessParams contains data for rendering the success region.
type SuccessParams struct {
	Receipt Receipt
}

// Views are the components the service renders with.
type Views struct {
	Page       func(PageParams) templ.Component
	FieldError func(FieldErrorParams) templ.Component
	Success    func(SuccessParams) templ.Component
}

func (v Views) validate() error {
	switch {
	case v.Page == nil:
		return fmt.Errorf("%w: Page", ErrNoViews)
	case v.FieldError == nil:
		return fmt.Errorf("%w: FieldError", ErrNoViews)
	case v.Success == nil:
		return fmt.Errorf("%w: Success", ErrNoViews)
	}
	return nil
}

// newPageParams builds page data from captured values and presented
// errors. Password values are never echoed back.
func newPageParams(snap Snapshot, errs map[FieldID]string) PageParams {
	params := PageParams{Fields: make([]FieldState, 0, len(catalogue))}
	for _, spec := range catalogue {
		value := snap.Value(spec.ID)
		if spec.Kind == KindPassword || spec.Kind == KindPasswordConfirmation {
			value = ""
		}
		params.Fields = append(params.Fields, FieldState{
			Spec:  spec,
			Value: value,
			Error: errs[spec.ID],
		})
	}
	return params
}
