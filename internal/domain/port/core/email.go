package core

import "context"

// EmailSender delivers the two transactional emails the service sends.
// Implementations decide transport; the domain only knows the intent.
type EmailSender interface {
	// SendVerificationEmail mails a clickable verification link
	SendVerificationEmail(ctx context.Context, to, name, verificationURL string) error
	// SendPasswordResetEmail mails the short reset code
	SendPasswordResetEmail(ctx context.Context, to, name, code string) error
}
