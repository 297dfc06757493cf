package persistence

import (
	"context"

	"github.com/salapeso/savings-api/internal/domain/entity"
)

// VerificationTokenRepository persists email-verification tokens
type VerificationTokenRepository interface {
	// GetByToken retrieves a token by its random value
	GetByToken(ctx context.Context, token string) (*entity.EmailVerificationToken, error)

	// Create persists a new token
	Create(ctx context.Context, token *entity.EmailVerificationToken) error

	// MarkUsed consumes a token
	MarkUsed(ctx context.Context, id string) error

	// DeleteByEmail removes all tokens for an email, enforcing the
	// one-actionable-token invariant on reissue
	DeleteByEmail(ctx context.Context, email string) error
}

// ResetTokenRepository persists password-reset tokens
type ResetTokenRepository interface {
	// GetByToken retrieves an unused reset token by its URL-safe value
	GetByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error)

	// Create persists a new token
	Create(ctx context.Context, token *entity.PasswordResetToken) error

	// Update persists a rotated code or the used flag
	Update(ctx context.Context, token *entity.PasswordResetToken) error

	// DeleteByEmail removes all reset tokens for an email
	DeleteByEmail(ctx context.Context, email string) error
}
