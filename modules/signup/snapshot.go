package signup

// Field is one input as read at validation time.
type Field struct {
	ID       FieldID
	Value    string
	Kind     Kind
	Required bool
}

// CheckboxValue is the value attribute of every checkbox input.
const CheckboxValue = "on"

// Checked reports whether a checkbox field is ticked.
// Browsers only submit checked boxes, so any non-empty value counts.
func (f Field) Checked() bool {
	return f.Value != ""
}

// Snapshot is the ordered set of field values captured for one validation.
type Snapshot []Field

// NewSnapshot builds a snapshot in catalogue order. Fields absent from
// values are captured empty.
func NewSnapshot(values map[FieldID]string) Snapshot {
	snap := make(Snapshot, 0, len(catalogue))
	for _, s := range catalogue {
		snap = append(snap, Field{
			ID:       s.ID,
			Value:    values[s.ID],
			Kind:     s.Kind,
			Required: s.Required,
		})
	}
	return snap
}

// Field returns the captured field. Declared fields missing from the
// snapshot come back empty with their declared kind and required flag.
func (s Snapshot) Field(id FieldID) (Field, bool) {
	for _, f := range s {
		if f.ID == id {
			return f, true
		}
	}
	if spec, ok := Lookup(id); ok {
		return Field{ID: id, Kind: spec.Kind, Required: spec.Required}, true
	}
	return Field{}, false
}

// Value returns the raw value of id, or "" when it was not captured.
func (s Snapshot) Value(id FieldID) string {
	f, _ := s.Field(id)
	return f.Value
}

// SignupRequest is the submitted signup form. Field carries the {field}
// path parameter of the per-field endpoints and is empty on submit.
type SignupRequest struct {
	Field           string `path:"field" form:"-"`
	FirstName       string `form:"firstName"`
	LastName        string `form:"lastName"`
	Email           string `form:"email"`
	Phone           string `form:"phone"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
	Terms           string `form:"terms"`
}

// Snapshot captures the request values.
func (r SignupRequest) Snapshot() Snapshot {
	return NewSnapshot(map[FieldID]string{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		Terms:           r.Terms,
	})
}
