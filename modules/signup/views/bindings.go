package views

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/signupkit/modules/signup"
)

// DataStarScript is the client bundle the page loads.
const DataStarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// Title is the document title of every page.
const Title = "Signup"

const termsText = "I agree to the terms and conditions"

var features = []struct{ title, text string }{
	{"Fast onboarding", "Create your account in under a minute."},
	{"Instant feedback", "Every field is checked as you go."},
	{"Private by default", "Nothing you type is stored until you say so."},
}

// signals returns the initial DataStar signals of the page, matching the
// server-rendered error state.
func signals(p signup.PageParams) string {
	invalid := make(map[string]bool, len(p.Fields))
	for _, f := range p.Fields {
		invalid[string(f.ID)] = f.Invalid()
	}
	data, _ := json.Marshal(map[string]any{
		"invalid":   invalid,
		"submitted": p.Receipt != nil,
	})
	return string(data)
}

func invalidSignal(id signup.FieldID) string {
	return "$invalid." + string(id)
}

func errorClassBinding(id signup.FieldID) string {
	return fmt.Sprintf("{%s: %s}", signup.ErrorClass, invalidSignal(id))
}

func errorStyleBinding(id signup.FieldID) string {
	return fmt.Sprintf("{style: %s ? 'border-color: %s' : ''}", invalidSignal(id), signup.ErrorBorderColor)
}

// validateAction posts the whole form so the password confirmation can be
// read next to the password.
func validateAction(id signup.FieldID) string {
	return fmt.Sprintf("@post('/signup/validate/%s', {contentType: 'form'})", id)
}

// clearAction only reaches the server while the field shows an error.
func clearAction(id signup.FieldID) string {
	return fmt.Sprintf("%s && @post('/signup/clear/%s')", invalidSignal(id), id)
}

func displayName(r signup.Receipt) string {
	if r.Name == "" {
		return "friend"
	}
	return r.Name
}

func errorTitle(status int) string {
	return fmt.Sprintf("%d %s", status, http.StatusText(status))
}

func toastKind(kind string) string {
	if kind == "" {
		return "info"
	}
	return kind
}
