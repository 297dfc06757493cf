package auth

import (
	"context"
	"errors"

	"github.com/salapeso/savings-api/internal/domain/entity"
	errs "github.com/salapeso/savings-api/internal/domain/error"
)

// ForgotPassword starts the 3-step reset protocol: issue a token+code pair,
// email the code, hand the token back for the reset URL.
//
// The response never reveals whether the email has an account. Unknown and
// passwordless (Google-only) emails receive a decoy token that matches
// nothing server-side.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return "", errs.ErrValidation
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return s.random.NewToken(), nil
		}
		return "", err
	}

	if !user.HasPassword() {
		return s.random.NewToken(), nil
	}

	// One actionable reset per email: reissue replaces everything
	if err := s.resetTokens.DeleteByEmail(ctx, email); err != nil {
		return "", err
	}

	reset, err := entity.NewPasswordResetToken(
		s.random.NewID(),
		email,
		s.random.NewToken(),
		s.random.NewResetCode(),
		s.opts.ResetTTL,
		s.timeProvider,
	)
	if err != nil {
		return "", err
	}

	if err := s.resetTokens.Create(ctx, reset); err != nil {
		return "", err
	}

	if err := s.email.SendPasswordResetEmail(ctx, email, user.Name, reset.Code); err != nil {
		s.logger.Error("Failed to send reset email", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return "", errs.ErrEmailDelivery
	}

	s.logger.Info("Password reset requested", map[string]any{
		"user_id": user.ID,
	})
	return reset.Token, nil
}

// ResendResetCode rotates the code on an existing, unused reset token and
// extends its expiry. The token itself stays stable so the reset URL the
// user is sitting on keeps working.
func (s *Service) ResendResetCode(ctx context.Context, token string) error {
	if token == "" {
		return errs.ErrTokenInvalid
	}

	reset, err := s.resetTokens.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if reset.Used {
		return errs.ErrTokenInvalid
	}

	user, err := s.users.GetByEmail(ctx, reset.Email)
	if err != nil {
		return errs.ErrTokenInvalid
	}

	reset.Rotate(s.random.NewResetCode(), s.opts.ResetTTL, s.timeProvider)
	if err := s.resetTokens.Update(ctx, reset); err != nil {
		return err
	}

	if err := s.email.SendPasswordResetEmail(ctx, reset.Email, user.Name, reset.Code); err != nil {
		return errs.ErrEmailDelivery
	}
	return nil
}

// VerifyResetCode checks a token+code pair without consuming it. The
// frontend calls this before letting the user type a new password.
func (s *Service) VerifyResetCode(ctx context.Context, token, code string) error {
	if token == "" || code == "" {
		return errs.ErrResetCodeInvalid
	}

	reset, err := s.resetTokens.GetByToken(ctx, token)
	if err != nil {
		if errs.IsNotFoundError(err) || errors.Is(err, errs.ErrTokenInvalid) {
			return errs.ErrResetCodeInvalid
		}
		return err
	}

	return reset.ValidateCode(code, s.timeProvider)
}

// ResetPassword consumes a valid token+code pair and stores the new password
// hash. The hash write, the token consumption and the purge of any other
// reset tokens for the email land in one transaction, so a code can never be
// replayed after a successful reset.
func (s *Service) ResetPassword(ctx context.Context, token, code, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return errs.ErrValidation
	}

	reset, err := s.resetTokens.GetByToken(ctx, token)
	if err != nil {
		if errs.IsNotFoundError(err) || errors.Is(err, errs.ErrTokenInvalid) {
			return errs.ErrResetCodeInvalid
		}
		return err
	}
	if err := reset.ValidateCode(code, s.timeProvider); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, reset.Email)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = s.uow.Rollback(txCtx) }()

	user.SetPasswordHash(hash, s.timeProvider)
	if err := s.uow.Users(txCtx).Update(txCtx, user); err != nil {
		return err
	}

	reset.MarkUsed()
	if err := s.uow.ResetTokens(txCtx).Update(txCtx, reset); err != nil {
		return err
	}
	if err := s.uow.ResetTokens(txCtx).DeleteByEmail(txCtx, reset.Email); err != nil {
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("Password reset completed", map[string]any{
		"user_id": user.ID,
	})
	return nil
}
