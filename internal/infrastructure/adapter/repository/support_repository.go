package repository

import (
	"context"
	"fmt"

	errs "github.com/salapeso/savings-api/internal/domain/error"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// SupportRepository implements persistence.SupportRepository using GORM
type SupportRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSupportRepository creates a new SupportRepository instance
func NewSupportRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SupportRepository {
	return &SupportRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Count returns the total number of hearts
func (r *SupportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.SupportHeart{}).Count(&count)
	if result.Error != nil {
		r.logger.Error("Database error when counting hearts", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count, nil
}

// HasHearted reports whether the user has an active heart
func (r *SupportRepository) HasHearted(ctx context.Context, userID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.SupportHeart{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		r.logger.Error("Database error when checking heart", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count > 0, nil
}

// Add records a heart for the user. A concurrent double-tap hits the
// unique index on user_id and is treated as already hearted.
func (r *SupportRepository) Add(ctx context.Context, id, userID string) error {
	heartModel := model.SupportHeart{
		ID:        id,
		UserID:    userID,
		CreatedAt: r.timeProvider.Now(),
	}

	result := r.db.WithContext(ctx).Create(&heartModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return nil
		}
		r.logger.Error("Database error when adding heart", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// Remove deletes the user's heart
func (r *SupportRepository) Remove(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).Delete(&model.SupportHeart{}, "user_id = ?", userID)
	if result.Error != nil {
		r.logger.Error("Database error when removing heart", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}
