package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	errs "github.com/salapeso/savings-api/internal/domain/error"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
)

// Config holds SMTP transport settings
type Config struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// Configured reports whether credentials are present. Without them the
// application falls back to the noop sender instead of failing requests.
func (c Config) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// SMTPSender implements core.EmailSender over plain SMTP with AUTH
type SMTPSender struct {
	config Config
	logger coreport.Logger
}

// NewSMTPSender creates a new SMTPSender
func NewSMTPSender(config Config, logger coreport.Logger) *SMTPSender {
	return &SMTPSender{config: config, logger: logger}
}

// SendVerificationEmail mails a clickable verification link
func (s *SMTPSender) SendVerificationEmail(ctx context.Context, to, name, verificationURL string) error {
	subject := "Verify your SalaPeso account"
	body := verificationEmailHTML(name, verificationURL)
	return s.send(ctx, to, subject, body)
}

// SendPasswordResetEmail mails the short reset code
func (s *SMTPSender) SendPasswordResetEmail(ctx context.Context, to, name, code string) error {
	subject := "Reset Your SalaPeso Password"
	body := passwordResetEmailHTML(name, code)
	return s.send(ctx, to, subject, body)
}

func (s *SMTPSender) send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: \"SalaPeso\" <%s>\r\n", s.config.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	s.logger.Debug("Sending email", map[string]any{
		"to":      to,
		"subject": subject,
	})

	if err := smtp.SendMail(addr, auth, s.config.From, []string{to}, []byte(msg.String())); err != nil {
		s.logger.Error("Failed to send email", map[string]any{
			"to":      to,
			"subject": subject,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrEmailDelivery, err.Error())
	}

	s.logger.Info("Email sent", map[string]any{
		"to":      to,
		"subject": subject,
	})
	return nil
}
