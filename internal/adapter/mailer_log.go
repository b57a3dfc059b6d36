package adapter

import (
	"context"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
)

type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer returns a [Mailer] that only logs outgoing messages. It is
// used in development when no provider API key is configured.
func NewLogMailer(logger *logger.Logger) Mailer {
	return &logMailer{logger: logger}
}

// Send implements [Mailer].
func (l *logMailer) Send(ctx context.Context, mail models.Mail) error {
	l.logger.Info().
		Str("to", mail.To).
		Str("subject", mail.Subject).
		Str("html", mail.HTML).
		Msg("mail provider is not configured, message logged instead of sent")
	return nil
}

// NewMailer picks the SendGrid mailer when an API key is configured and the
// log mailer otherwise.
func NewMailer(mailCfg config.Mail, logger *logger.Logger) (Mailer, error) {
	if mailCfg.APIKey == "" {
		return NewLogMailer(logger), nil
	}
	return NewSendGridMailer(mailCfg, logger)
}
