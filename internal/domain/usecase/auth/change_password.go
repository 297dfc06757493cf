package auth

import (
	"context"

	errs "github.com/salapeso/savings-api/internal/domain/error"
)

// ChangePassword verifies the current password and stores a new hash.
// Accounts without a password (Google-only) cannot use this flow.
func (s *Service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if userID == "" {
		return errs.ErrTokenInvalid
	}
	if len(newPassword) < MinPasswordLength {
		return errs.ErrValidation
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.HasPassword() {
		return errs.ErrPasswordlessAccount
	}

	if !s.hasher.Compare(currentPassword, user.PasswordHash) {
		s.logger.Warn("Password change with wrong current password", map[string]any{
			"user_id": userID,
		})
		return errs.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	user.SetPasswordHash(hash, s.timeProvider)
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("Password changed", map[string]any{
		"user_id": userID,
	})
	return nil
}
