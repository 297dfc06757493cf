package auth

import (
	"context"
	"errors"

	"github.com/salapeso/savings-api/internal/domain/entity"
	errs "github.com/salapeso/savings-api/internal/domain/error"
	"github.com/salapeso/savings-api/internal/domain/port/usecase"
)

// GoogleSignIn resolves a Google credential to an account. First-time
// sign-ins create an auto-verified user; returning users get missing profile
// fields backfilled. Either way a session token is issued.
func (s *Service) GoogleSignIn(ctx context.Context, credential string) (*usecase.AuthResult, error) {
	if credential == "" {
		return nil, errs.ErrTokenInvalid
	}

	profile, err := s.google.FetchProfile(ctx, credential)
	if err != nil {
		s.logger.Warn("Google credential rejected", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	if profile.Email == "" {
		return nil, errs.ErrTokenInvalid
	}

	user, err := s.users.GetByEmail(ctx, entity.NormalizeEmail(profile.Email))
	switch {
	case err == nil:
		user.SyncGoogleProfile(profile.Name, profile.Picture, profile.AccountID, s.timeProvider)
		if err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}

	case errors.Is(err, errs.ErrUserNotFound):
		user, err = entity.NewGoogleUser(
			s.random.NewID(),
			profile.Email,
			profile.Name,
			profile.Picture,
			profile.AccountID,
			s.timeProvider,
		)
		if err != nil {
			return nil, err
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info("Account created via Google", map[string]any{
			"user_id": user.ID,
		})

	default:
		return nil, err
	}

	token, err := s.sessions.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthResult{User: user, Token: token}, nil
}
