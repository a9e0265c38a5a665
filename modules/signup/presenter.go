package signup

import (
	"github.com/dmitrymomot/signupkit/handler"
)

// DOM conventions shared by the views and the presenters.
const (
	FormID            = "signupForm"
	SuccessID         = "successMessage"
	ErrorClass        = "error"
	ErrorMessageClass = "error-message"
	ErrorBorderColor  = "#FF6B6B"
)

// ErrorRegionID returns the id of the element holding id's message.
func ErrorRegionID(id FieldID) string {
	return string(id) + "Error"
}

// Presenter renders validation outcomes for individual fields.
type Presenter interface {
	ShowError(id FieldID, message string)
	ClearError(id FieldID)
}

// Present shows every failing result and clears every passing one.
func Present(p Presenter, results ...ValidationResult) {
	for _, r := range results {
		if r.IsValid() {
			p.ClearError(r.Field)
			continue
		}
		p.ShowError(r.Field, r.Message)
	}
}

// ClearAll clears every declared field.
func ClearAll(p Presenter) {
	for _, spec := range catalogue {
		p.ClearError(spec.ID)
	}
}

// pagePresenter collects messages for a full page render.
type pagePresenter map[FieldID]string

func (p pagePresenter) ShowError(id FieldID, message string) { p[id] = message }
func (p pagePresenter) ClearError(id FieldID)                { delete(p, id) }

// streamPresenter collects one patch per field, last call wins. Flush sends
// them over a DataStar stream together with the "invalid" signal map that
// drives the input's error class and border.
type streamPresenter struct {
	views    Views
	order    []FieldID
	messages map[FieldID]string
}

func newStreamPresenter(views Views) *streamPresenter {
	return &streamPresenter{
		views:    views,
		messages: make(map[FieldID]string),
	}
}

func (p *streamPresenter) ShowError(id FieldID, message string) { p.set(id, message) }
func (p *streamPresenter) ClearError(id FieldID)                { p.set(id, "") }

func (p *streamPresenter) set(id FieldID, message string) {
	if _, seen := p.messages[id]; !seen {
		p.order = append(p.order, id)
	}
	p.messages[id] = message
}

func (p *streamPresenter) patches() []handler.TemplPatch {
	patches := make([]handler.TemplPatch, 0, len(p.order))
	for _, id := range p.order {
		patches = append(patches, handler.Patch(
			p.views.FieldError(FieldErrorParams{Field: id, Message: p.messages[id]}),
			handler.WithTarget("#"+ErrorRegionID(id)),
		))
	}
	return patches
}

// Flush sends the collected patches and signals.
func (p *streamPresenter) Flush(stream handler.StreamContext) error {
	if len(p.order) == 0 {
		return nil
	}

	invalid := make(map[string]any, len(p.order))
	for _, id := range p.order {
		invalid[string(id)] = p.messages[id] != ""
	}

	if err := stream.SendMultiple(p.patches()...); err != nil {
		return err
	}
	return stream.SendSignals(map[string]any{"invalid": invalid})
}

// Fragments returns the collected regions as one response, for clients
// that swap the regions themselves.
func (p *streamPresenter) Fragments() handler.Response {
	return handler.TemplMulti(p.patches()...)
}
