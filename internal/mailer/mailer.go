package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/mentorhub/mentorhub-backend/internal/config"
	"github.com/rs/zerolog/log"
)

const sendTimeout = 10 * time.Second

// Mailer delivers transactional mail. The only message the platform sends
// today is the password-reset link.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, token string) error
}

// MailgunMailer sends through the Mailgun HTTP API.
type MailgunMailer struct {
	client   *mailgun.MailgunImpl
	from     string
	linkBase string
}

// NewMailgunMailer creates a Mailgun-backed mailer from config.
func NewMailgunMailer(cfg *config.Config) *MailgunMailer {
	return &MailgunMailer{
		client:   mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
		from:     cfg.MailFromAddress,
		linkBase: cfg.ResetLinkBase,
	}
}

// SendPasswordReset mails a single-use reset link built from the token.
func (m *MailgunMailer) SendPasswordReset(ctx context.Context, to, token string) error {
	link := fmt.Sprintf("%s?token=%s", m.linkBase, token)
	body := fmt.Sprintf(
		"A password reset was requested for your account.\n\n"+
			"Open the link below to choose a new password. The link is valid for six hours and can be used once.\n\n%s\n\n"+
			"If you did not request this, you can ignore this message.",
		link,
	)

	msg := m.client.NewMessage(m.from, "Password reset", body, to)

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if _, _, err := m.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}

// LogMailer stands in when Mailgun is not configured. It logs the reset
// token instead of sending it, which keeps local development usable.
type LogMailer struct{}

// SendPasswordReset logs the token at warn level.
func (LogMailer) SendPasswordReset(_ context.Context, to, token string) error {
	log.Warn().
		Str("to", to).
		Str("token", token).
		Msg("mailgun not configured, reset token logged instead of mailed")
	return nil
}

// FromConfig picks the Mailgun mailer when credentials are present and the
// logging fallback otherwise.
func FromConfig(cfg *config.Config) Mailer {
	if cfg.MailgunDomain != "" && cfg.MailgunAPIKey != "" {
		return NewMailgunMailer(cfg)
	}
	return LogMailer{}
}
