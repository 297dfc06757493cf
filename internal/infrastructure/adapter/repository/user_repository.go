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

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:                m.ID,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		Name:              m.Name,
		Image:             m.Image,
		Provider:          entity.AuthProvider(m.Provider),
		ProviderAccountID: m.ProviderAccountID,
		EmailVerified:     m.EmailVerified,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func userEntityToModel(u *entity.User) *model.User {
	return &model.User{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		PasswordHash:      u.PasswordHash,
		Image:             u.Image,
		Provider:          string(u.Provider),
		ProviderAccountID: u.ProviderAccountID,
		EmailVerified:     u.EmailVerified,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}
	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateEmail
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, r.handleDatabaseError("getting user", result.Error)
	}
	return userModelToEntity(&userModel), nil
}

// GetByEmail retrieves a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, "email = ?", entity.NormalizeEmail(email))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, r.handleDatabaseError("getting user by email", result.Error)
	}
	return userModelToEntity(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"user_id":  user.ID,
		"provider": string(user.Provider),
	})

	result := r.db.WithContext(ctx).Create(userEntityToModel(user))
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error)
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id":  user.ID,
		"provider": string(user.Provider),
	})
	return nil
}

// Update updates user information
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"name":           user.Name,
			"password_hash":  user.PasswordHash,
			"image":          user.Image,
			"email_verified": user.EmailVerified,
			"updated_at":     user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": user.ID,
		})
		return errs.ErrUserNotFound
	}
	return nil
}
