package email

import (
	"context"

	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
)

// NoopSender implements core.EmailSender without sending anything. Used in
// development and tests where no SMTP credentials are configured; the
// would-be content is logged instead.
type NoopSender struct {
	logger coreport.Logger
}

// NewNoopSender creates a new NoopSender
func NewNoopSender(logger coreport.Logger) *NoopSender {
	return &NoopSender{logger: logger}
}

// SendVerificationEmail logs the verification link instead of mailing it
func (s *NoopSender) SendVerificationEmail(ctx context.Context, to, name, verificationURL string) error {
	s.logger.Info("Email delivery disabled, verification link not sent", map[string]any{
		"to":  to,
		"url": verificationURL,
	})
	return nil
}

// SendPasswordResetEmail logs the reset code instead of mailing it
func (s *NoopSender) SendPasswordResetEmail(ctx context.Context, to, name, code string) error {
	s.logger.Info("Email delivery disabled, reset code not sent", map[string]any{
		"to":   to,
		"code": code,
	})
	return nil
}
