package signup

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signupkit/pkg/sanitizer"
)

// Registration is the normalized data of an accepted signup.
// Passwords are never part of it.
type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// NewRegistration normalizes the submitted values of snap.
func NewRegistration(snap Snapshot) Registration {
	return Registration{
		FirstName: sanitizer.PlainText(snap.Value(FirstName)),
		LastName:  sanitizer.PlainText(snap.Value(LastName)),
		Email:     sanitizer.NormalizeEmail(snap.Value(Email)),
		Phone:     sanitizer.NormalizeWhitespace(snap.Value(Phone)),
	}
}

// Receipt confirms an accepted signup.
type Receipt struct {
	ID          uuid.UUID
	Name        string
	MaskedEmail string
	IssuedAt    time.Time
}

// Registrar accepts valid signups.
type Registrar interface {
	Register(ctx context.Context, reg Registration) (Receipt, error)
}

// LocalRegistrar simulates a successful signup: it issues a receipt and
// keeps nothing.
type LocalRegistrar struct {
	now func() time.Time
}

// NewLocalRegistrar creates a LocalRegistrar using the wall clock.
func NewLocalRegistrar() *LocalRegistrar {
	return &LocalRegistrar{now: time.Now}
}

func (r *LocalRegistrar) Register(ctx context.Context, reg Registration) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	return Receipt{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(reg.FirstName + " " + reg.LastName),
		MaskedEmail: sanitizer.MaskEmail(reg.Email),
		IssuedAt:    r.now().UTC(),
	}, nil
}
