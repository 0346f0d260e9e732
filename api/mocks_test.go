package api

import (
	"context"
	"log/slog"

	"github.com/International-Combat-Archery-Alliance/member-signup/signup"
	"github.com/google/uuid"
)

var noopLogger = slog.New(slog.DiscardHandler)

var _ SignupFlow = &mockFlow{}

type mockFlow struct {
	StartSessionFunc       func(ctx context.Context) (signup.Outcome, error)
	GetSessionFunc         func(ctx context.Context, id uuid.UUID) (signup.Session, error)
	SubmitRegistrationFunc func(ctx context.Context, id uuid.UUID, fields signup.Fields) (signup.Outcome, error)
	ConfirmCodeFunc        func(ctx context.Context, id uuid.UUID, code string) (signup.Outcome, error)
	ResendCodeFunc         func(ctx context.Context, id uuid.UUID) (signup.Outcome, error)
	CancelFunc             func(ctx context.Context, id uuid.UUID) (signup.Outcome, error)
}

func (m *mockFlow) StartSession(ctx context.Context) (signup.Outcome, error) {
	return m.StartSessionFunc(ctx)
}

func (m *mockFlow) GetSession(ctx context.Context, id uuid.UUID) (signup.Session, error) {
	return m.GetSessionFunc(ctx, id)
}

func (m *mockFlow) SubmitRegistration(ctx context.Context, id uuid.UUID, fields signup.Fields) (signup.Outcome, error) {
	return m.SubmitRegistrationFunc(ctx, id, fields)
}

func (m *mockFlow) ConfirmCode(ctx context.Context, id uuid.UUID, code string) (signup.Outcome, error) {
	return m.ConfirmCodeFunc(ctx, id, code)
}

func (m *mockFlow) ResendCode(ctx context.Context, id uuid.UUID) (signup.Outcome, error) {
	return m.ResendCodeFunc(ctx, id)
}

func (m *mockFlow) Cancel(ctx context.Context, id uuid.UUID) (signup.Outcome, error) {
	return m.CancelFunc(ctx, id)
}

type mockProvider struct {
	RegisterFunc   func(ctx context.Context, identity signup.Identity, password string) error
	ConfirmFunc    func(ctx context.Context, emailAddress string, code string) error
	ResendCodeFunc func(ctx context.Context, emailAddress string) error
}

func (m *mockProvider) Register(ctx context.Context, identity signup.Identity, password string) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, identity, password)
	}
	return nil
}

func (m *mockProvider) Confirm(ctx context.Context, emailAddress string, code string) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, emailAddress, code)
	}
	return nil
}

func (m *mockProvider) ResendCode(ctx context.Context, emailAddress string) error {
	if m.ResendCodeFunc != nil {
		return m.ResendCodeFunc(ctx, emailAddress)
	}
	return nil
}
