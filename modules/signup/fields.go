package signup

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FieldID identifies a form field. It doubles as the input's DOM id.
type FieldID string

const (
	FirstName       FieldID = "firstName"
	LastName        FieldID = "lastName"
	Email           FieldID = "email"
	Phone           FieldID = "phone"
	Password        FieldID = "password"
	ConfirmPassword FieldID = "confirmPassword"
	Terms           FieldID = "terms"
)

// Kind is the declared kind of a field.
type Kind string

const (
	KindText                 Kind = "text"
	KindEmail                Kind = "email"
	KindPhone                Kind = "phone"
	KindPassword             Kind = "password"
	KindPasswordConfirmation Kind = "password-confirmation"
	KindCheckbox             Kind = "checkbox"
)

func (k Kind) valid() bool {
	switch k {
	case KindText, KindEmail, KindPhone, KindPassword, KindPasswordConfirmation, KindCheckbox:
		return true
	}
	return false
}

// Spec describes how a field is declared and rendered.
type Spec struct {
	ID           FieldID `yaml:"id"`
	Kind         Kind    `yaml:"kind"`
	Label        string  `yaml:"label"`
	Required     bool    `yaml:"required"`
	InputType    string  `yaml:"input_type"`
	Placeholder  string  `yaml:"placeholder"`
	Autocomplete string  `yaml:"autocomplete"`
}

//go:embed form.yaml
var formYAML []byte

var catalogue = mustParseCatalogue(formYAML)

type catalogueDoc struct {
	Fields []Spec `yaml:"fields"`
}

// parseCatalogue decodes a field catalogue and rejects duplicate ids,
// unknown keys and unknown kinds.
func parseCatalogue(data []byte) ([]Spec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc catalogueDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalogue, err)
	}
	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("%w: no fields declared", ErrInvalidCatalogue)
	}

	seen := make(map[FieldID]struct{}, len(doc.Fields))
	for _, f := range doc.Fields {
		if f.ID == "" {
			return nil, fmt.Errorf("%w: field without id", ErrInvalidCatalogue)
		}
		if _, dup := seen[f.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidCatalogue, f.ID)
		}
		if !f.Kind.valid() {
			return nil, fmt.Errorf("%w: field %q has unknown kind %q", ErrInvalidCatalogue, f.ID, f.Kind)
		}
		seen[f.ID] = struct{}{}
	}

	return doc.Fields, nil
}

func mustParseCatalogue(data []byte) []Spec {
	specs, err := parseCatalogue(data)
	if err != nil {
		panic(err)
	}
	return specs
}

// Fields returns the form fields in render and validation order.
func Fields() []Spec {
	out := make([]Spec, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup returns the declaration of id.
func Lookup(id FieldID) (Spec, bool) {
	for _, s := range catalogue {
		if s.ID == id {
			return s, true
		}
	}
	return Spec{}, false
}

// Label returns the human-readable label of id, or the id itself when the
// field is not declared.
func Label(id FieldID) string {
	if s, ok := Lookup(id); ok && s.Label != "" {
		return s.Label
	}
	return string(id)
}

// ParseFieldID validates a raw field id taken from a URL.
func ParseFieldID(raw string) (FieldID, error) {
	id := FieldID(raw)
	if _, ok := Lookup(id); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
	}
	return id, nil
}
