package signup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	CheckEmailMessage     = "Check your email for a confirmation code."
	ConfirmedMessage      = "Thank you for confirming your email."
	SomethingWrongMessage = "Something went wrong. Please try again."
)

const (
	DefaultSessionTTL    = 24 * time.Hour
	DefaultInFlightLease = 30 * time.Second
)

// settleAttempts is how many times a store write that follows a successful
// provider call is tried.
const settleAttempts = 2

func CodeResentMessage(emailAddress string) string {
	return fmt.Sprintf("A new code has been sent to %s", emailAddress)
}

// Hooks are how the controller hands control back to whatever embeds the
// flow. Each is optional.
type Hooks struct {
	// OnStart runs once when a session is created.
	OnStart func(ctx context.Context, session Session)
	// OnSubmitComplete runs once the provider has confirmed the email, even
	// if the session could not be deleted. Its context outlives the request.
	OnSubmitComplete func(ctx context.Context, session Session)
	// OnCancel runs once, after the cancelled session is deleted.
	OnCancel func(ctx context.Context, session Session)
}

type Settings struct {
	PasswordPolicy PasswordPolicy
	PhoneRegion    string
	SessionTTL     time.Duration
	InFlightLease  time.Duration
	// Random feeds password generation. Defaults to crypto/rand.
	Random io.Reader
	Now    func() time.Time
	// Logger gets the store failures callers never see. Defaults to
	// discarding them.
	Logger *slog.Logger
}

func DefaultSettings() Settings {
	return Settings{
		PasswordPolicy: DefaultPasswordPolicy,
		PhoneRegion:    DefaultPhoneRegion,
		SessionTTL:     DefaultSessionTTL,
		InFlightLease:  DefaultInFlightLease,
		Now:            time.Now,
		Logger:         slog.New(slog.DiscardHandler),
	}
}

// Controller runs the sign-up state machine:
//
//	COLLECTING --SubmitRegistration ok--> AWAITING_CONFIRMATION
//	COLLECTING --SubmitRegistration failed--> COLLECTING
//	AWAITING_CONFIRMATION --ConfirmCode ok--> CONFIRMED (deleted)
//	AWAITING_CONFIRMATION --ConfirmCode failed--> AWAITING_CONFIRMATION
//	AWAITING_CONFIRMATION --ResendCode--> AWAITING_CONFIRMATION
//	any --Cancel--> CANCELLED (deleted)
//
// The session is marked in flight in the store before each provider call, so
// two requests for the same session can never both reach the provider. Once
// the provider has succeeded its answer stands: the follow-up store write is
// retried, and if it still fails the success is reported anyway.
type Controller struct {
	provider IdentityProvider
	store    SessionStore
	settings Settings
	hooks    Hooks
}

func NewController(provider IdentityProvider, store SessionStore, settings Settings, hooks Hooks) *Controller {
	defaults := DefaultSettings()
	if settings.PasswordPolicy.Length == 0 {
		settings.PasswordPolicy = defaults.PasswordPolicy
	}
	if settings.PhoneRegion == "" {
		settings.PhoneRegion = defaults.PhoneRegion
	}
	if settings.SessionTTL <= 0 {
		settings.SessionTTL = defaults.SessionTTL
	}
	if settings.InFlightLease <= 0 {
		settings.InFlightLease = defaults.InFlightLease
	}
	if settings.Now == nil {
		settings.Now = defaults.Now
	}
	if settings.Logger == nil {
		settings.Logger = defaults.Logger
	}

	return &Controller{
		provider: provider,
		store:    store,
		settings: settings,
		hooks:    hooks,
	}
}

func (c *Controller) StartSession(ctx context.Context) (Outcome, error) {
	session := NewSession(uuid.New(), c.settings.Now(), c.settings.SessionTTL)

	err := c.store.CreateSession(ctx, session)
	if err != nil {
		return Outcome{}, err
	}

	if c.hooks.OnStart != nil {
		c.hooks.OnStart(ctx, session)
	}

	return Outcome{Session: session, Phase: session.Phase}, nil
}

func (c *Controller) GetSession(ctx context.Context, id uuid.UUID) (Session, error) {
	return c.liveSession(ctx, id)
}

func (c *Controller) SubmitRegistration(ctx context.Context, id uuid.UUID, fields Fields) (Outcome, error) {
	session, err := c.liveSession(ctx, id)
	if err != nil {
		return Outcome{}, err
	}

	fields = trimFields(fields)

	begun, err := session.begin(REGISTERING, c.settings.Now(), c.settings.InFlightLease)
	if err != nil {
		return outcomeOf(session, nil), err
	}

	if fieldErrs := ValidateRegistration(fields, c.settings.PhoneRegion); len(fieldErrs) > 0 {
		return outcomeOf(session, nil), NewInvalidFieldsError(fieldErrs)
	}

	phone, err := NormalizePhoneNumber(fields.PhoneNumber, c.settings.PhoneRegion)
	if err != nil {
		return outcomeOf(session, nil), NewInvalidFieldsError(ValidationErrors{{Field: FIELD_PHONE_NUMBER, Message: InvalidPhoneMessage}})
	}

	password, err := GeneratePassword(c.settings.Random, c.settings.PasswordPolicy)
	if err != nil {
		return outcomeOf(session, nil), NewFailedToGeneratePasswordError(err)
	}

	err = c.store.UpdateSession(ctx, begun)
	if err != nil {
		return outcomeOf(session, nil), err
	}

	err = c.provider.Register(ctx, Identity{
		EmailAddress: fields.EmailAddress,
		PhoneNumber:  phone,
		GivenName:    fields.GivenName,
		FamilyName:   fields.FamilyName,
	}, password)
	if err != nil {
		// Registration failures show the provider's own explanation, e.g.
		// that an account already exists for the email.
		notice := &Notice{Level: FAILURE, Message: providerMessage(err)}
		return c.abandon(ctx, begun, notice, providerFailure(notice.Message, err))
	}

	registered := begun.registered(fields, phone)
	err = c.settle(ctx, func(ctx context.Context) error {
		return c.store.UpdateSession(ctx, registered)
	})
	if err != nil {
		c.settings.Logger.ErrorContext(ctx, "Registered with the provider but failed to store the session",
			slog.String("session-id", id.String()),
			slog.String("error", err.Error()),
		)
	}

	return outcomeOf(registered, &Notice{Level: INFO, Message: CheckEmailMessage}), nil
}

func (c *Controller) ConfirmCode(ctx context.Context, id uuid.UUID, code string) (Outcome, error) {
	session, err := c.liveSession(ctx, id)
	if err != nil {
		return Outcome{}, err
	}

	code = strings.TrimSpace(code)

	begun, err := session.begin(CONFIRMING, c.settings.Now(), c.settings.InFlightLease)
	if err != nil {
		return outcomeOf(session, nil), err
	}

	if fieldErrs := ValidateConfirmation(code); len(fieldErrs) > 0 {
		return outcomeOf(session, nil), NewInvalidFieldsError(fieldErrs)
	}

	err = c.store.UpdateSession(ctx, begun)
	if err != nil {
		return outcomeOf(session, nil), err
	}

	err = c.provider.Confirm(ctx, begun.EmailAddress, code)
	if err != nil {
		notice := &Notice{Level: FAILURE, Message: SomethingWrongMessage}
		return c.abandon(ctx, begun, notice, providerFailure(SomethingWrongMessage, err))
	}

	done := begun.finish()
	err = c.settle(ctx, func(ctx context.Context) error {
		return c.store.DeleteSession(ctx, done)
	})
	if err != nil {
		c.settings.Logger.ErrorContext(ctx, "Confirmed with the provider but failed to delete the session, leaving it to expire",
			slog.String("session-id", id.String()),
			slog.String("error", err.Error()),
		)
	}

	if c.hooks.OnSubmitComplete != nil {
		c.hooks.OnSubmitComplete(context.WithoutCancel(ctx), done)
	}

	return Outcome{
		Session: done,
		Phase:   CONFIRMED,
		Notice:  &Notice{Level: SUCCESS, Message: ConfirmedMessage},
	}, nil
}

func (c *Controller) ResendCode(ctx context.Context, id uuid.UUID) (Outcome, error) {
	session, err := c.liveSession(ctx, id)
	if err != nil {
		return Outcome{}, err
	}

	begun, err := session.begin(RESENDING, c.settings.Now(), c.settings.InFlightLease)
	if err != nil {
		return outcomeOf(session, nil), err
	}

	err = c.store.UpdateSession(ctx, begun)
	if err != nil {
		return outcomeOf(session, nil), err
	}

	err = c.provider.ResendCode(ctx, begun.EmailAddress)
	if err != nil {
		notice := &Notice{Level: FAILURE, Message: SomethingWrongMessage}
		return c.abandon(ctx, begun, notice, providerFailure(SomethingWrongMessage, err))
	}

	done := begun.finish()
	err = c.settle(ctx, func(ctx context.Context) error {
		return c.store.UpdateSession(ctx, done)
	})
	if err != nil {
		c.settings.Logger.ErrorContext(ctx, "Resent the code but failed to clear the in-flight marker",
			slog.String("session-id", id.String()),
			slog.String("error", err.Error()),
		)
	}

	return outcomeOf(done, &Notice{Level: SUCCESS, Message: CodeResentMessage(done.EmailAddress)}), nil
}

// Cancel discards the session from either phase. It never calls the
// provider, and is refused while a provider call is in flight so a
// confirmation cannot complete on a session that was already cancelled.
func (c *Controller) Cancel(ctx context.Context, id uuid.UUID) (Outcome, error) {
	session, err := c.liveSession(ctx, id)
	if err != nil {
		return Outcome{}, err
	}

	if session.inFlightAt(c.settings.Now(), c.settings.InFlightLease) {
		return outcomeOf(session, nil), NewOperationInFlightError(session.InFlight)
	}

	cancelled := session.finish()
	err = c.store.DeleteSession(ctx, cancelled)
	if err != nil {
		return outcomeOf(session, nil), err
	}

	if c.hooks.OnCancel != nil {
		c.hooks.OnCancel(ctx, cancelled)
	}

	return Outcome{Session: cancelled, Phase: CANCELLED}, nil
}

func (c *Controller) liveSession(ctx context.Context, id uuid.UUID) (Session, error) {
	session, err := c.store.GetSession(ctx, id)
	if err != nil {
		return Session{}, err
	}

	if session.IsExpired(c.settings.Now()) {
		// Best effort: the dynamo store's TTL will get it otherwise.
		expired := session
		expired.Version++
		if err := c.store.DeleteSession(ctx, expired); err != nil {
			c.settings.Logger.WarnContext(ctx, "Failed to delete expired session",
				slog.String("session-id", id.String()),
				slog.String("error", err.Error()),
			)
		}

		return Session{}, NewSessionDoesNotExistError(fmt.Sprintf("Session with ID %q has expired", id), nil)
	}

	return session, nil
}

// abandon clears the in-flight marker after a failed provider call. The
// phase is left as it was so the user can retry.
func (c *Controller) abandon(ctx context.Context, begun Session, notice *Notice, cause error) (Outcome, error) {
	finished := begun.finish()

	err := c.settle(ctx, func(ctx context.Context) error {
		return c.store.UpdateSession(ctx, finished)
	})
	if err != nil {
		return outcomeOf(begun, notice), errors.Join(cause, err)
	}

	return outcomeOf(finished, notice), cause
}

// settle runs a store write that follows a provider call. The provider has
// already acted, so the write no longer depends on the caller staying
// connected, and it gets a second try.
func (c *Controller) settle(ctx context.Context, write func(ctx context.Context) error) error {
	ctx = context.WithoutCancel(ctx)

	var errs []error
	for range settleAttempts {
		err := write(ctx)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func outcomeOf(session Session, notice *Notice) Outcome {
	return Outcome{Session: session, Phase: session.Phase, Notice: notice}
}

func providerMessage(err error) string {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) && providerErr.Message != "" {
		return providerErr.Message
	}
	return SomethingWrongMessage
}

func providerFailure(message string, err error) *Error {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return NewProviderRejectedError(message, err)
	}
	return NewProviderUnavailableError(message, err)
}

func trimFields(fields Fields) Fields {
	return Fields{
		GivenName:    strings.TrimSpace(fields.GivenName),
		FamilyName:   strings.TrimSpace(fields.FamilyName),
		EmailAddress: strings.TrimSpace(fields.EmailAddress),
		PhoneNumber:  strings.TrimSpace(fields.PhoneNumber),
	}
}
