package persistence

import (
	"context"

	"github.com/salapeso/savings-api/internal/domain/entity"
)

// GoalRepository defines persistence operations for savings goals. Every
// read takes the owning userID; a goal that exists but belongs to someone
// else is reported as not found.
type GoalRepository interface {
	// GetForUser retrieves a goal scoped to its owner, with its wallet
	GetForUser(ctx context.Context, goalID, userID string) (*entity.SavingsGoal, error)

	// GetForUpdate retrieves a goal scoped to its owner and locks the row
	// for the remainder of the surrounding transaction
	GetForUpdate(ctx context.Context, goalID, userID string) (*entity.SavingsGoal, error)

	// ListByUser returns the user's goals oldest-first, each with its wallet
	// and up to recentEntries most recent entries (0 skips entry loading)
	ListByUser(ctx context.Context, userID string, recentEntries int) ([]*entity.SavingsGoal, error)

	// Create persists a new goal
	Create(ctx context.Context, goal *entity.SavingsGoal) error

	// Update persists the mutable goal fields
	Update(ctx context.Context, goal *entity.SavingsGoal) error

	// Delete removes a goal and cascades to its entries
	Delete(ctx context.Context, goalID string) error
}
