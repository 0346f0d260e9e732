package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/International-Combat-Archery-Alliance/member-signup/signup"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEmailSender struct {
	SendEmailFunc func(ctx context.Context, e email.Email) error
}

func (m *mockEmailSender) SendEmail(ctx context.Context, e email.Email) error {
	return m.SendEmailFunc(ctx, e)
}

func TestNewHooks(t *testing.T) {
	session := signup.Session{ID: uuid.New(), GivenName: "Robin", EmailAddress: "robin@example.com"}

	t.Run("welcome email on completion", func(t *testing.T) {
		var sent []email.Email
		sender := &mockEmailSender{
			SendEmailFunc: func(ctx context.Context, e email.Email) error {
				sent = append(sent, e)
				return nil
			},
		}
		hooks := newHooks(slog.New(slog.DiscardHandler), sender, "ICAA <info@icaa.world>")

		hooks.OnSubmitComplete(context.Background(), session)

		require.Len(t, sent, 1)
		assert.Equal(t, []string{"robin@example.com"}, sent[0].ToAddresses)
		assert.Equal(t, "ICAA <info@icaa.world>", sent[0].FromAddress)
	})

	t.Run("email failure is logged", func(t *testing.T) {
		var buf bytes.Buffer
		sender := &mockEmailSender{
			SendEmailFunc: func(ctx context.Context, e email.Email) error {
				return errors.New("ses down")
			},
		}
		hooks := newHooks(slog.New(slog.NewTextHandler(&buf, nil)), sender, "info@icaa.world")

		hooks.OnSubmitComplete(context.Background(), session)

		assert.Contains(t, buf.String(), "Failed to send welcome email")
		assert.Contains(t, buf.String(), "ses down")
	})

	t.Run("cancel is logged", func(t *testing.T) {
		var buf bytes.Buffer
		hooks := newHooks(slog.New(slog.NewTextHandler(&buf, nil)), &mockEmailSender{}, "info@icaa.world")

		hooks.OnCancel(context.Background(), session)

		assert.Contains(t, buf.String(), "Sign up cancelled")
		assert.Contains(t, buf.String(), session.ID.String())
	})
}
