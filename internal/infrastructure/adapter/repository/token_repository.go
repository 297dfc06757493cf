package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/salapeso/savings-api/internal/domain/entity"
	errs "github.com/salapeso/savings-api/internal/domain/error"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// VerificationTokenRepository implements persistence.VerificationTokenRepository using GORM
type VerificationTokenRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewVerificationTokenRepository creates a new VerificationTokenRepository instance
func NewVerificationTokenRepository(db *gorm.DB, logger coreport.Logger) *VerificationTokenRepository {
	return &VerificationTokenRepository{db: db, logger: logger}
}

// GetByToken retrieves a token by its random value
func (r *VerificationTokenRepository) GetByToken(ctx context.Context, token string) (*entity.EmailVerificationToken, error) {
	var tokenModel model.EmailVerificationToken
	result := r.db.WithContext(ctx).First(&tokenModel, "token = ?", token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTokenInvalid
		}
		r.logger.Error("Database error when getting verification token", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.EmailVerificationToken{
		ID:        tokenModel.ID,
		Email:     tokenModel.Email,
		Token:     tokenModel.Token,
		Used:      tokenModel.Used,
		ExpiresAt: tokenModel.ExpiresAt,
		CreatedAt: tokenModel.CreatedAt,
	}, nil
}

// Create persists a new token
func (r *VerificationTokenRepository) Create(ctx context.Context, token *entity.EmailVerificationToken) error {
	tokenModel := model.EmailVerificationToken{
		ID:        token.ID,
		Email:     token.Email,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		Used:      token.Used,
		CreatedAt: token.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&tokenModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating verification token", map[string]any{
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// MarkUsed consumes a token
func (r *VerificationTokenRepository) MarkUsed(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&model.EmailVerificationToken{}).
		Where("id = ?", id).
		Update("used", true)
	if result.Error != nil {
		r.logger.Error("Database error when consuming verification token", map[string]any{
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrTokenInvalid
	}
	return nil
}

// DeleteByEmail removes all tokens for an email
func (r *VerificationTokenRepository) DeleteByEmail(ctx context.Context, email string) error {
	result := r.db.WithContext(ctx).
		Delete(&model.EmailVerificationToken{}, "email = ?", entity.NormalizeEmail(email))
	if result.Error != nil {
		r.logger.Error("Database error when purging verification tokens", map[string]any{
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// ResetTokenRepository implements persistence.ResetTokenRepository using GORM
type ResetTokenRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewResetTokenRepository creates a new ResetTokenRepository instance
func NewResetTokenRepository(db *gorm.DB, logger coreport.Logger) *ResetTokenRepository {
	return &ResetTokenRepository{db: db, logger: logger}
}

// GetByToken retrieves an unused reset token by its URL-safe value
func (r *ResetTokenRepository) GetByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	var tokenModel model.PasswordResetToken
	result := r.db.WithContext(ctx).First(&tokenModel, "token = ? AND used = ?", token, false)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTokenInvalid
		}
		r.logger.Error("Database error when getting reset token", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.PasswordResetToken{
		ID:        tokenModel.ID,
		Email:     tokenModel.Email,
		Token:     tokenModel.Token,
		Code:      tokenModel.Code,
		Used:      tokenModel.Used,
		ExpiresAt: tokenModel.ExpiresAt,
		CreatedAt: tokenModel.CreatedAt,
	}, nil
}

// Create persists a new token
func (r *ResetTokenRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	tokenModel := model.PasswordResetToken{
		ID:        token.ID,
		Email:     token.Email,
		Token:     token.Token,
		Code:      token.Code,
		ExpiresAt: token.ExpiresAt,
		Used:      token.Used,
		CreatedAt: token.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&tokenModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating reset token", map[string]any{
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// Update persists a rotated code or the used flag
func (r *ResetTokenRepository) Update(ctx context.Context, token *entity.PasswordResetToken) error {
	result := r.db.WithContext(ctx).Model(&model.PasswordResetToken{}).
		Where("id = ?", token.ID).
		Updates(map[string]interface{}{
			"code":       token.Code,
			"used":       token.Used,
			"expires_at": token.ExpiresAt,
		})
	if result.Error != nil {
		r.logger.Error("Database error when updating reset token", map[string]any{
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrTokenInvalid
	}
	return nil
}

// DeleteByEmail removes all reset tokens for an email
func (r *ResetTokenRepository) DeleteByEmail(ctx context.Context, email string) error {
	result := r.db.WithContext(ctx).
		Delete(&model.PasswordResetToken{}, "email = ?", entity.NormalizeEmail(email))
	if result.Error != nil {
		r.logger.Error("Database error when purging reset tokens", map[string]any{
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}
