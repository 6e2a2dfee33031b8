package external_services

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
	"github.com/sumitgupta24/eventxpert-backend/internal/infrastructure/config"
)

// sendMailFunc matches smtp.SendMail so tests can capture messages.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailService sends HTML mail through an SMTP relay.
type EmailService struct {
	Host        string
	Port        string
	Username    string
	AppPassword string
	From        string
	logger      zerolog.Logger
	sendMail    sendMailFunc
}

// EmailService factory
func NewEmailService(host, port, username, appPassword, from string, logger zerolog.Logger) *EmailService {
	return &EmailService{
		Host:        host,
		Port:        port,
		Username:    username,
		AppPassword: appPassword,
		From:        from,
		logger:      logger.With().Str("component", "email").Str("provider", "smtp").Logger(),
		sendMail:    smtp.SendMail,
	}
}

// make sure EmailService implements contract.IEmailService.go
var _ contract.IEmailService = (*EmailService)(nil)

// buildMessage renders the headers and HTML body of a single-recipient mail.
func (es *EmailService) buildMessage(to, subject, body string) []byte {
	return []byte(
		fmt.Sprintf(
			"To: %s\r\n"+
				"From: %s\r\n"+
				"Subject: %s\r\n"+
				"MIME-Version: 1.0\r\n"+
				"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
				"\r\n"+
				"%s\r\n",
			to, es.From, subject, body,
		),
	)
}

func (es *EmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	if strings.ContainsAny(to, "\r\n") || strings.ContainsAny(subject, "\r\n") {
		return fmt.Errorf("invalid email header: contains newline characters")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	auth := smtp.PlainAuth("", es.Username, es.AppPassword, es.Host)
	addr := fmt.Sprintf("%s:%s", es.Host, es.Port)
	if err := es.sendMail(addr, auth, es.From, []string{to}, es.buildMessage(to, subject, body)); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	es.logger.Info().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}

// NewMailer picks the configured email provider.
func NewMailer(cfg config.EmailConfig, logger zerolog.Logger) (contract.IEmailService, error) {
	switch cfg.Provider {
	case "", "smtp":
		return NewEmailService(cfg.Host, cfg.Port, cfg.Username, cfg.AppPassword, cfg.From, logger), nil
	case "resend":
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("RESEND_API_KEY is required when EMAIL_PROVIDER=resend")
		}
		return NewResendEmailService(cfg.ResendAPIKey, cfg.From, logger), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
