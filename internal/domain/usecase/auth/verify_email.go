package auth

import (
	"context"
	"errors"

	"github.com/salapeso/savings-api/internal/domain/entity"
	errs "github.com/salapeso/savings-api/internal/domain/error"
)

// VerifyEmail consumes a verification token and flips the account to
// verified. The user update and the token consumption land together.
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return errs.ErrTokenInvalid
	}

	verification, err := s.verifTokens.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if err := verification.Validate(s.timeProvider); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, verification.Email)
	if err != nil {
		return err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = s.uow.Rollback(txCtx) }()

	user.MarkVerified(s.timeProvider)
	if err := s.uow.Users(txCtx).Update(txCtx, user); err != nil {
		return err
	}
	if err := s.uow.VerificationTokens(txCtx).MarkUsed(txCtx, verification.ID); err != nil {
		return err
	}
	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("Email verified", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// ResendVerification reissues the verification link. Unknown emails return
// silently so the endpoint cannot be used to enumerate accounts; already
// verified accounts get an explicit error since the caller proved ownership
// by verifying.
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return errs.ErrValidation
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil
		}
		return err
	}

	if user.EmailVerified {
		return errs.ErrTokenUsed
	}

	return s.issueVerification(ctx, user.Email, user.Name)
}
