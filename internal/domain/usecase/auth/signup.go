package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/salapeso/savings-api/internal/domain/entity"
	errs "github.com/salapeso/savings-api/internal/domain/error"
	"github.com/salapeso/savings-api/internal/domain/port/usecase"
)

// Signup creates an unverified credentials account and emails a verification
// link. The account cannot log in until the link is consumed.
func (s *Service) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupResult, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrValidation
	}
	if len(input.Password) < MinPasswordLength {
		return nil, errs.ErrValidation
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, errs.ErrDuplicateEmail
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewCredentialsUser(s.random.NewID(), email, hash, input.Name, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create account", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	if err := s.issueVerification(ctx, user.Email, user.Name); err != nil {
		// The account exists; the user can request a resend later
		s.logger.Warn("Verification email not sent at signup", map[string]any{
			"email": email,
			"error": err.Error(),
		})
	}

	s.logger.Info("Account created", map[string]any{
		"user_id": user.ID,
		"email":   email,
	})

	return &usecase.SignupResult{
		Email:                user.Email,
		RequiresVerification: true,
	}, nil
}

// issueVerification replaces any existing verification tokens for the email
// with a fresh one and mails the link
func (s *Service) issueVerification(ctx context.Context, email, name string) error {
	if err := s.verifTokens.DeleteByEmail(ctx, email); err != nil {
		return err
	}

	token, err := entity.NewEmailVerificationToken(
		s.random.NewID(),
		email,
		s.random.NewToken(),
		s.opts.VerificationTTL,
		s.timeProvider,
	)
	if err != nil {
		return err
	}

	if err := s.verifTokens.Create(ctx, token); err != nil {
		return err
	}

	return s.email.SendVerificationEmail(ctx, email, name, s.verificationURL(token.Token))
}
