//go:generate go tool stringer -type=Phase,Operation,NoticeLevel -linecomment

package signup

import (
	"time"

	"github.com/google/uuid"
)

type Phase int

const (
	COLLECTING            Phase = iota // collecting
	AWAITING_CONFIRMATION              // awaiting_confirmation
	// CONFIRMED and CANCELLED are terminal. A session that reaches either
	// one is deleted, so they only ever show up in an Outcome.
	CONFIRMED // confirmed
	CANCELLED // cancelled
)

func (p Phase) IsTerminal() bool {
	return p == CONFIRMED || p == CANCELLED
}

// Operation is a call to the identity provider that a session can have in
// flight.
type Operation int

const (
	NO_OPERATION Operation = iota // idle
	REGISTERING                   // registering
	CONFIRMING                    // confirming
	RESENDING                     // resending
)

// requiredPhase is the phase a session has to be in to start op.
func (o Operation) requiredPhase() Phase {
	if o == REGISTERING {
		return COLLECTING
	}
	return AWAITING_CONFIRMATION
}

type Session struct {
	ID            uuid.UUID
	Version       int
	Phase         Phase
	InFlight      Operation
	InFlightSince time.Time
	GivenName     string
	FamilyName    string
	EmailAddress  string
	PhoneNumber   string
	CreatedAt     time.Time
	ExpiresAt     time.Time
}

func NewSession(id uuid.UUID, now time.Time, ttl time.Duration) Session {
	return Session{
		ID:        id,
		Version:   1,
		Phase:     COLLECTING,
		InFlight:  NO_OPERATION,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// inFlightAt reports whether a provider call is still considered running.
// Markers older than lease belong to a call whose caller went away.
func (s Session) inFlightAt(now time.Time, lease time.Duration) bool {
	if s.InFlight == NO_OPERATION {
		return false
	}
	return now.Sub(s.InFlightSince) < lease
}

// begin marks op as in flight. The returned session has its version bumped
// so that storing it races any concurrent begin on the same session.
func (s Session) begin(op Operation, now time.Time, lease time.Duration) (Session, error) {
	if s.Phase != op.requiredPhase() {
		return s, NewWrongPhaseError(op, s.Phase)
	}
	if s.inFlightAt(now, lease) {
		return s, NewOperationInFlightError(s.InFlight)
	}

	s.InFlight = op
	s.InFlightSince = now
	s.Version++
	return s, nil
}

// finish clears the in-flight marker without touching the phase.
func (s Session) finish() Session {
	s.InFlight = NO_OPERATION
	s.InFlightSince = time.Time{}
	s.Version++
	return s
}

// registered records a successful registration. The identity fields are
// frozen from here on; EmailAddress is the key for confirm and resend.
func (s Session) registered(fields Fields, normalizedPhone string) Session {
	s = s.finish()
	s.Phase = AWAITING_CONFIRMATION
	s.GivenName = fields.GivenName
	s.FamilyName = fields.FamilyName
	s.EmailAddress = fields.EmailAddress
	s.PhoneNumber = normalizedPhone
	return s
}

// Fields are the identity values entered in the collecting phase.
type Fields struct {
	GivenName    string
	FamilyName   string
	EmailAddress string
	PhoneNumber  string
}

type NoticeLevel int

const (
	INFO    NoticeLevel = iota // info
	SUCCESS                    // success
	FAILURE                    // error
)

// Notice is the message shown to the user after an action.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// Outcome is the result of a controller action: the session as it is now
// (or was, for terminal phases) and the notice to show.
type Outcome struct {
	Session Session
	Phase   Phase
	Notice  *Notice
}
