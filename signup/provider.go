package signup

import (
	"context"

	"github.com/google/uuid"
)

// Identity is what gets registered with the identity provider. PhoneNumber
// is either empty or E.164.
type Identity struct {
	EmailAddress string
	PhoneNumber  string
	GivenName    string
	FamilyName   string
}

// IdentityProvider is the external user directory. Failures the user can act
// on should be returned as *ProviderError.
type IdentityProvider interface {
	Register(ctx context.Context, identity Identity, password string) error
	Confirm(ctx context.Context, emailAddress string, code string) error
	ResendCode(ctx context.Context, emailAddress string) error
}

// SessionStore persists sessions between requests. UpdateSession and
// DeleteSession take a session whose Version was already bumped past the
// stored one and fail with REASON_VERSION_CONFLICT if someone else wrote in
// between.
type SessionStore interface {
	CreateSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, id uuid.UUID) (Session, error)
	UpdateSession(ctx context.Context, session Session) error
	DeleteSession(ctx context.Context, session Session) error
}
