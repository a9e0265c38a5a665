package handler

import (
	"encoding/json"

	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext extends Context with SSE streaming capabilities.
// It provides methods to send components and signals through an established SSE connection.
type StreamContext interface {
	Context

	// SendComponent sends a templ component with rendering options.
	// This is the primary method for updating UI elements via SSE.
	//
	// Example:
	//
	//	err := stream.SendComponent(
	//		views.FieldError("email", "Please enter a valid email address"),
	//		handler.WithTarget("#emailError"),
	//	)
	SendComponent(component TemplComponent, opts ...TemplOption) error

	// SendMultiple sends multiple components in a single batch.
	//
	// Example:
	//
	//	err := stream.SendMultiple(
	//		handler.Patch(views.FieldError("email", msg), handler.WithTarget("#emailError")),
	//		handler.Patch(views.FieldError("phone", ""), handler.WithTarget("#phoneError")),
	//	)
	SendMultiple(patches ...TemplPatch) error

	// SendSignal updates a single frontend signal/state value.
	// Signals are used for reactive UI updates without replacing DOM elements.
	//
	// Example:
	//
	//	err := stream.SendSignal("submitting", false)
	SendSignal(name string, value any) error

	// SendSignals updates multiple frontend signals at once.
	//
	// Example:
	//
	//	err := stream.SendSignals(map[string]any{
	//		"invalid": map[string]bool{"email": true, "phone": false},
	//	})
	SendSignals(signals map[string]any) error

	// ExecuteScript runs a script in the browser once.
	//
	// Example:
	//
	//	err := stream.ExecuteScript(`document.getElementById('successMessage').scrollIntoView({behavior: 'smooth'})`)
	ExecuteScript(script string) error
}

// streamContext implements StreamContext by wrapping a base Context
// with SSE streaming capabilities.
type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

// SendComponent sends a single component through SSE.
func (c *streamContext) SendComponent(component TemplComponent, opts ...TemplOption) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.PatchElementTempl(component, opts...)
}

// SendMultiple sends multiple components efficiently.
func (c *streamContext) SendMultiple(patches ...TemplPatch) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	for _, patch := range patches {
		if err := c.sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
			return err
		}
	}
	return nil
}

// SendSignal updates a single signal value.
func (c *streamContext) SendSignal(name string, value any) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	data, err := json.Marshal(map[string]any{name: value})
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}

// SendSignals updates multiple signals at once.
func (c *streamContext) SendSignals(signals map[string]any) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}

// ExecuteScript sends a one-off script to the browser.
func (c *streamContext) ExecuteScript(script string) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.ExecuteScript(script)
}
