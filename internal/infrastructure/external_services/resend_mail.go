package external_services

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
)

// ResendEmailService sends mail through the Resend HTTP API.
type ResendEmailService struct {
	client *resend.Client
	from   string
	logger zerolog.Logger
}

func NewResendEmailService(apiKey, from string, logger zerolog.Logger) *ResendEmailService {
	return &ResendEmailService{
		client: resend.NewClient(apiKey),
		from:   from,
		logger: logger.With().Str("component", "email").Str("provider", "resend").Logger(),
	}
}

var _ contract.IEmailService = (*ResendEmailService)(nil)

// SendEmail does not retry when rate limited.
func (s *ResendEmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		var rateLimitErr *resend.RateLimitError
		if errors.As(err, &rateLimitErr) {
			s.logger.Warn().
				Str("limit", rateLimitErr.Limit).
				Str("reset", rateLimitErr.Reset).
				Msg("resend rate limit exceeded")
			return fmt.Errorf("email rate limit exceeded: %w", err)
		}
		return fmt.Errorf("resend API error: %w", err)
	}

	s.logger.Info().Str("email_id", sent.Id).Str("to", to).Msg("email sent")
	return nil
}
