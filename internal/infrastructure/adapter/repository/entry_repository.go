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

// EntryRepository implements persistence.EntryRepository using GORM.
// Ledger lines are append-only, so there is no update path here.
type EntryRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewEntryRepository creates a new EntryRepository instance
func NewEntryRepository(db *gorm.DB, logger coreport.Logger) *EntryRepository {
	return &EntryRepository{db: db, logger: logger}
}

func entryModelToEntity(m *model.SavingsEntry) *entity.SavingsEntry {
	return &entity.SavingsEntry{
		ID:            m.ID,
		SavingsGoalID: m.GoalID,
		Amount:        m.Amount,
		Note:          m.Note,
		CreatedAt:     m.CreatedAt,
	}
}

// Create appends a ledger line
func (r *EntryRepository) Create(ctx context.Context, entry *entity.SavingsEntry) error {
	entryModel := model.SavingsEntry{
		ID:        entry.ID,
		GoalID:    entry.SavingsGoalID,
		Amount:    entry.Amount,
		Note:      entry.Note,
		CreatedAt: entry.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&entryModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating entry", map[string]any{
			"goal_id": entry.SavingsGoalID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// ListByGoal returns a goal's entries newest-first
func (r *EntryRepository) ListByGoal(ctx context.Context, goalID string) ([]*entity.SavingsEntry, error) {
	var entryModels []model.SavingsEntry
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("created_at DESC").
		Find(&entryModels)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrEntryNotFound
		}
		r.logger.Error("Database error when listing entries", map[string]any{
			"goal_id": goalID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	entries := make([]*entity.SavingsEntry, 0, len(entryModels))
	for i := range entryModels {
		entries = append(entries, entryModelToEntity(&entryModels[i]))
	}
	return entries, nil
}

// ListByUser returns entries across all the user's goals newest-first,
// capped at limit, each carrying its goal and the goal's wallet
func (r *EntryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.SavingsEntry, error) {
	var entryModels []model.SavingsEntry
	result := r.db.WithContext(ctx).
		Joins("JOIN savings_goals ON savings_goals.id = savings_entries.goal_id").
		Where("savings_goals.user_id = ?", userID).
		Order("savings_entries.created_at DESC").
		Limit(limit).
		Find(&entryModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing user entries", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	// Fetch the referenced goals with wallets in one pass so each line can
	// render its goal name and wallet without N+1 lookups.
	goalIDs := make([]string, 0, len(entryModels))
	seen := make(map[string]bool, len(entryModels))
	for i := range entryModels {
		if !seen[entryModels[i].GoalID] {
			seen[entryModels[i].GoalID] = true
			goalIDs = append(goalIDs, entryModels[i].GoalID)
		}
	}

	goalsByID := make(map[string]*entity.SavingsGoal, len(goalIDs))
	if len(goalIDs) > 0 {
		var goalModels []model.SavingsGoal
		result = r.db.WithContext(ctx).
			Preload("Wallet").
			Where("id IN ?", goalIDs).
			Find(&goalModels)
		if result.Error != nil {
			r.logger.Error("Database error when loading goals for entries", map[string]any{
				"user_id": userID,
				"error":   result.Error.Error(),
			})
			return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
		}
		for i := range goalModels {
			goalsByID[goalModels[i].ID] = goalModelToEntity(&goalModels[i])
		}
	}

	entries := make([]*entity.SavingsEntry, 0, len(entryModels))
	for i := range entryModels {
		entry := entryModelToEntity(&entryModels[i])
		entry.Goal = goalsByID[entry.SavingsGoalID]
		entries = append(entries, entry)
	}
	return entries, nil
}
