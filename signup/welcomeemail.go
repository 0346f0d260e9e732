package signup

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/International-Combat-Archery-Alliance/email"
)

//go:embed templates
var templates embed.FS

const welcomeSubject = "Welcome to the ICAA"

func SendWelcomeEmail(ctx context.Context, emailSender email.Sender, fromAddress string, session Session) error {
	htmlBody, err := makeHtmlBody(session)
	if err != nil {
		return err
	}

	textOnlyBody, err := makeTextOnlyBody(session)
	if err != nil {
		return err
	}

	return emailSender.SendEmail(ctx, email.Email{
		FromAddress: fromAddress,
		ToAddresses: []string{session.EmailAddress},
		Subject:     welcomeSubject,
		HTMLBody:    htmlBody,
		TextBody:    textOnlyBody,
	})
}

func makeHtmlBody(session Session) (string, error) {
	tmpl, err := htmltemplate.New("welcome.tmpl").ParseFS(templates, "templates/welcome.tmpl")
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{
		"Session": session,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}

	return buf.String(), nil
}

func makeTextOnlyBody(session Session) (string, error) {
	tmpl, err := texttemplate.New("welcome-textonly.tmpl").ParseFS(templates, "templates/welcome-textonly.tmpl")
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{
		"Session": session,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}

	return buf.String(), nil
}
