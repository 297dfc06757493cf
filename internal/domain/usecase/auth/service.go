package auth

import (
	"context"
	"time"

	"github.com/salapeso/savings-api/internal/domain/entity"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
	"github.com/salapeso/savings-api/internal/domain/port/persistence"
	"github.com/salapeso/savings-api/internal/domain/port/usecase"
)

// MinPasswordLength is enforced on signup, reset and change
const MinPasswordLength = 6

// Options carries the auth policy knobs that come from configuration
type Options struct {
	// AppURL is the frontend base URL used to build verification links
	AppURL string
	// VerificationTTL bounds email-verification tokens (default 24h)
	VerificationTTL time.Duration
	// ResetTTL bounds password-reset codes (default 15m)
	ResetTTL time.Duration
}

// Service implements the account and token lifecycle
type Service struct {
	users        persistence.UserRepository
	verifTokens  persistence.VerificationTokenRepository
	resetTokens  persistence.ResetTokenRepository
	uow          persistence.UnitOfWork
	hasher       coreport.PasswordHasher
	sessions     coreport.SessionTokens
	google       coreport.GoogleVerifier
	email        coreport.EmailSender
	random       coreport.RandomSource
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	opts         Options
}

// NewService creates the auth use case
func NewService(
	users persistence.UserRepository,
	verifTokens persistence.VerificationTokenRepository,
	resetTokens persistence.ResetTokenRepository,
	uow persistence.UnitOfWork,
	hasher coreport.PasswordHasher,
	sessions coreport.SessionTokens,
	google coreport.GoogleVerifier,
	email coreport.EmailSender,
	random coreport.RandomSource,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts Options,
) usecase.AuthUseCase {
	if opts.VerificationTTL <= 0 {
		opts.VerificationTTL = 24 * time.Hour
	}
	if opts.ResetTTL <= 0 {
		opts.ResetTTL = 15 * time.Minute
	}
	return &Service{
		users:        users,
		verifTokens:  verifTokens,
		resetTokens:  resetTokens,
		uow:          uow,
		hasher:       hasher,
		sessions:     sessions,
		google:       google,
		email:        email,
		random:       random,
		timeProvider: timeProvider,
		logger:       logger,
		opts:         opts,
	}
}

// Me returns the authenticated user's profile
func (s *Service) Me(ctx context.Context, userID string) (*entity.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *Service) verificationURL(token string) string {
	return s.opts.AppURL + "/verify-email?token=" + token
}
