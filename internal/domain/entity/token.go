package entity

import (
	"time"

	errs "github.com/salapeso/savings-api/internal/domain/error"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
)

// EmailVerificationToken gates the unverified → verified transition.
// Single-use, time-boxed, keyed by a random value. At most one unused,
// unexpired token is actionable per email: reissuing deletes older ones.
type EmailVerificationToken struct {
	ID        string
	Email     string
	Token     string
	Used      bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewEmailVerificationToken issues a verification token with the given TTL
func NewEmailVerificationToken(id, email, token string, ttl time.Duration, timeProvider coreport.TimeProvider) (*EmailVerificationToken, error) {
	email = NormalizeEmail(email)
	if email == "" || token == "" {
		return nil, errs.ErrValidation
	}

	now := timeProvider.Now()
	return &EmailVerificationToken{
		ID:        id,
		Email:     email,
		Token:     token,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}, nil
}

// Validate checks the token is still actionable
func (t *EmailVerificationToken) Validate(timeProvider coreport.TimeProvider) error {
	if t.Used {
		return errs.ErrTokenUsed
	}
	if timeProvider.Now().After(t.ExpiresAt) {
		return errs.ErrTokenExpired
	}
	return nil
}

// PasswordResetToken backs the 3-step reset protocol: the URL-safe Token
// identifies the reset attempt, the short Code is what gets emailed and
// typed back. Both must match for verification and consumption.
type PasswordResetToken struct {
	ID        string
	Email     string
	Token     string
	Code      string
	Used      bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewPasswordResetToken issues a reset token+code pair with the given TTL
func NewPasswordResetToken(id, email, token, code string, ttl time.Duration, timeProvider coreport.TimeProvider) (*PasswordResetToken, error) {
	email = NormalizeEmail(email)
	if email == "" || token == "" || code == "" {
		return nil, errs.ErrValidation
	}

	now := timeProvider.Now()
	return &PasswordResetToken{
		ID:        id,
		Email:     email,
		Token:     token,
		Code:      code,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}, nil
}

// ValidateCode checks the code matches and the token is still actionable
func (t *PasswordResetToken) ValidateCode(code string, timeProvider coreport.TimeProvider) error {
	if t.Used || t.Code != code || timeProvider.Now().After(t.ExpiresAt) {
		return errs.ErrResetCodeInvalid
	}
	return nil
}

// Rotate replaces the code and extends the expiry, keeping the same token.
// Used by the resend-code flow.
func (t *PasswordResetToken) Rotate(code string, ttl time.Duration, timeProvider coreport.TimeProvider) {
	t.Code = code
	t.ExpiresAt = timeProvider.Now().Add(ttl)
}

// MarkUsed consumes the token
func (t *PasswordResetToken) MarkUsed() {
	t.Used = true
}
