package main

import (
	"context"
	"log/slog"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/International-Combat-Archery-Alliance/member-signup/signup"
)

// newHooks sends the welcome email once a member confirms. A failed email
// is logged only; the member is already confirmed at that point.
func newHooks(logger *slog.Logger, emailSender email.Sender, fromAddress string) signup.Hooks {
	return signup.Hooks{
		OnStart: func(ctx context.Context, session signup.Session) {
			logger.DebugContext(ctx, "Sign up session started", slog.String("session-id", session.ID.String()))
		},
		OnSubmitComplete: func(ctx context.Context, session signup.Session) {
			logger.InfoContext(ctx, "Member confirmed", slog.String("session-id", session.ID.String()))

			err := signup.SendWelcomeEmail(context.WithoutCancel(ctx), emailSender, fromAddress, session)
			if err != nil {
				logger.ErrorContext(ctx, "Failed to send welcome email",
					slog.String("session-id", session.ID.String()),
					slog.String("error", err.Error()),
				)
			}
		},
		OnCancel: func(ctx context.Context, session signup.Session) {
			logger.InfoContext(ctx, "Sign up cancelled",
				slog.String("session-id", session.ID.String()),
				slog.String("phase", session.Phase.String()),
			)
		},
	}
}
