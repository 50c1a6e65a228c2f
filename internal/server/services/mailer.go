package services

import (
	"context"

	"github.com/dmitrijs2005/hoopaconnect/internal/logging"
)

// Mailer delivers password reset tokens to users.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// LogMailer writes reset tokens to the log. It stands in for an email
// provider in development deployments.
type LogMailer struct {
	logger logging.Logger
}

func NewLogMailer(l logging.Logger) *LogMailer {
	return &LogMailer{logger: l.With("component", "mailer")}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	m.logger.Info(ctx, "password reset issued", "email", email, "token", token)
	return nil
}
