package signup

import (
	"context"
	"errors"
	"testing"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEmailSender struct {
	sent []email.Email
	err  error
}

func (m *mockEmailSender) SendEmail(ctx context.Context, e email.Email) error {
	m.sent = append(m.sent, e)
	return m.err
}

func TestSendWelcomeEmail(t *testing.T) {
	t.Run("renders both bodies", func(t *testing.T) {
		sender := &mockEmailSender{}
		session := Session{GivenName: "Robin", EmailAddress: "robin@example.com", PhoneNumber: "+15551234567"}

		err := SendWelcomeEmail(context.Background(), sender, "ICAA <info@icaa.world>", session)
		require.NoError(t, err)

		require.Len(t, sender.sent, 1)
		sent := sender.sent[0]
		assert.Equal(t, "ICAA <info@icaa.world>", sent.FromAddress)
		assert.Equal(t, []string{"robin@example.com"}, sent.ToAddresses)
		assert.Equal(t, welcomeSubject, sent.Subject)
		assert.Contains(t, sent.HTMLBody, "Hi Robin,")
		assert.Contains(t, sent.HTMLBody, "+15551234567")
		assert.Contains(t, sent.TextBody, "robin@example.com")
	})

	t.Run("no name or phone", func(t *testing.T) {
		sender := &mockEmailSender{}
		err := SendWelcomeEmail(context.Background(), sender, "info@icaa.world", Session{EmailAddress: "a@b.com"})
		require.NoError(t, err)

		assert.Contains(t, sender.sent[0].TextBody, "Hi,")
		assert.NotContains(t, sender.sent[0].TextBody, "by text")
	})

	t.Run("html is escaped", func(t *testing.T) {
		sender := &mockEmailSender{}
		err := SendWelcomeEmail(context.Background(), sender, "info@icaa.world", Session{GivenName: "<b>x</b>", EmailAddress: "a@b.com"})
		require.NoError(t, err)

		assert.NotContains(t, sender.sent[0].HTMLBody, "<b>x</b>")
	})

	t.Run("sender failure is returned", func(t *testing.T) {
		sender := &mockEmailSender{err: errors.New("ses down")}
		err := SendWelcomeEmail(context.Background(), sender, "info@icaa.world", Session{EmailAddress: "a@b.com"})
		assert.ErrorContains(t, err, "ses down")
	})
}
