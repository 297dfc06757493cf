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
	"gorm.io/gorm/clause"
)

// GoalRepository implements persistence.GoalRepository using GORM
type GoalRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewGoalRepository creates a new GoalRepository instance
func NewGoalRepository(db *gorm.DB, logger coreport.Logger) *GoalRepository {
	return &GoalRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func goalModelToEntity(m *model.SavingsGoal) *entity.SavingsGoal {
	goal := &entity.SavingsGoal{
		ID:            m.ID,
		UserID:        m.UserID,
		WalletID:      m.WalletID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		IsCompleted:   m.IsCompleted,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Wallet.ID != "" {
		goal.Wallet = walletModelToEntity(&m.Wallet)
	}
	for i := range m.Entries {
		goal.Entries = append(goal.Entries, entryModelToEntity(&m.Entries[i]))
	}
	return goal
}

func goalEntityToModel(g *entity.SavingsGoal) *model.SavingsGoal {
	return &model.SavingsGoal{
		ID:            g.ID,
		UserID:        g.UserID,
		WalletID:      g.WalletID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		IsCompleted:   g.IsCompleted,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *GoalRepository) handleDatabaseError(operation string, err error, goalID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrGoalNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"goal_id": goalID,
		"error":   err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetForUser retrieves a goal scoped to its owner, with its wallet
func (r *GoalRepository) GetForUser(ctx context.Context, goalID, userID string) (*entity.SavingsGoal, error) {
	var goalModel model.SavingsGoal
	result := r.db.WithContext(ctx).
		Preload("Wallet").
		First(&goalModel, "id = ? AND user_id = ?", goalID, userID)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting goal", result.Error, goalID)
	}
	return goalModelToEntity(&goalModel), nil
}

// GetForUpdate retrieves a goal scoped to its owner and locks the row
// for the remainder of the surrounding transaction
func (r *GoalRepository) GetForUpdate(ctx context.Context, goalID, userID string) (*entity.SavingsGoal, error) {
	var goalModel model.SavingsGoal
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&goalModel, "id = ? AND user_id = ?", goalID, userID)
	if result.Error != nil {
		if r.errorClassifier.IsLockError(result.Error) {
			r.logger.Warn("Goal is locked by another transaction", map[string]any{
				"goal_id": goalID,
				"error":   result.Error.Error(),
			})
		}
		return nil, r.handleDatabaseError("locking goal", result.Error, goalID)
	}
	return goalModelToEntity(&goalModel), nil
}

// ListByUser returns the user's goals oldest-first, each with its wallet
// and up to recentEntries most recent entries
func (r *GoalRepository) ListByUser(ctx context.Context, userID string, recentEntries int) ([]*entity.SavingsGoal, error) {
	var goalModels []model.SavingsGoal
	query := r.db.WithContext(ctx).
		Preload("Wallet").
		Where("user_id = ?", userID).
		Order("created_at ASC")
	if recentEntries > 0 {
		// A per-goal LIMIT inside Preload limits the whole result set, so
		// entries are loaded in full here and trimmed per goal below.
		query = query.Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		})
	}

	result := query.Find(&goalModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing goals", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	goals := make([]*entity.SavingsGoal, 0, len(goalModels))
	for i := range goalModels {
		goal := goalModelToEntity(&goalModels[i])
		if recentEntries > 0 && len(goal.Entries) > recentEntries {
			goal.Entries = goal.Entries[:recentEntries]
		}
		goals = append(goals, goal)
	}
	return goals, nil
}

// Create persists a new goal
func (r *GoalRepository) Create(ctx context.Context, goal *entity.SavingsGoal) error {
	r.logger.Debug("Creating savings goal", map[string]any{
		"goal_id":   goal.ID,
		"user_id":   goal.UserID,
		"wallet_id": goal.WalletID,
	})

	result := r.db.WithContext(ctx).Create(goalEntityToModel(goal))
	if result.Error != nil {
		return r.handleDatabaseError("creating goal", result.Error, goal.ID)
	}
	return nil
}

// Update persists the mutable goal fields
func (r *GoalRepository) Update(ctx context.Context, goal *entity.SavingsGoal) error {
	result := r.db.WithContext(ctx).Model(&model.SavingsGoal{}).
		Where("id = ?", goal.ID).
		Updates(map[string]interface{}{
			"name":           goal.Name,
			"target_amount":  goal.TargetAmount,
			"current_amount": goal.CurrentAmount,
			"is_completed":   goal.IsCompleted,
			"updated_at":     goal.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating goal", result.Error, goal.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrGoalNotFound
	}
	return nil
}

// Delete removes a goal and cascades to its entries
func (r *GoalRepository) Delete(ctx context.Context, goalID string) error {
	result := r.db.WithContext(ctx).Delete(&model.SavingsGoal{}, "id = ?", goalID)
	if result.Error != nil {
		return r.handleDatabaseError("deleting goal", result.Error, goalID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrGoalNotFound
	}

	r.logger.Info("Savings goal deleted", map[string]any{
		"goal_id": goalID,
	})
	return nil
}
