package auth

import (
	"context"
	"errors"

	"github.com/salapeso/savings-api/internal/domain/entity"
	errs "github.com/salapeso/savings-api/internal/domain/error"
	"github.com/salapeso/savings-api/internal/domain/port/usecase"
)

// Login checks credentials and issues a session token.
//
// The password is verified before the email-verification gate: an attacker
// guessing passwords must not learn whether an account is verified. Unknown
// email and wrong password both surface as ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	email = entity.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.HasPassword() {
		// Google-only account; password login is impossible by construction
		return nil, errs.ErrInvalidCredentials
	}

	if !s.hasher.Compare(password, user.PasswordHash) {
		s.logger.Warn("Failed login attempt", map[string]any{
			"email": email,
		})
		return nil, errs.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, errs.ErrEmailNotVerified
	}

	token, err := s.sessions.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.Error("Failed to issue session token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
	})

	return &usecase.AuthResult{User: user, Token: token}, nil
}
