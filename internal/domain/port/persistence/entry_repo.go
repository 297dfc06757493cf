package persistence

import (
	"context"

	"github.com/salapeso/savings-api/internal/domain/entity"
)

// EntryRepository defines persistence operations for ledger entries.
// Entries are append-only: there is deliberately no update method.
type EntryRepository interface {
	// Create appends a ledger line
	Create(ctx context.Context, entry *entity.SavingsEntry) error

	// ListByGoal returns a goal's entries newest-first
	ListByGoal(ctx context.Context, goalID string) ([]*entity.SavingsEntry, error)

	// ListByUser returns entries across all the user's goals newest-first,
	// capped at limit, each carrying its goal and the goal's wallet
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.SavingsEntry, error)
}
