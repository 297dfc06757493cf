package savings

import (
	"context"

	"github.com/salapeso/savings-api/internal/domain/entity"
	errs "github.com/salapeso/savings-api/internal/domain/error"
)

// How many entries ride along with each goal in the dashboard listing
const recentEntriesPerGoal = 5

// DefaultTransactionLimit bounds the cross-goal transaction feed
const DefaultTransactionLimit = 20

// ListWallets returns the active wallet catalog, ordered by slug
func (s *Service) ListWallets(ctx context.Context) ([]*entity.Wallet, error) {
	return s.wallets.ListActive(ctx)
}

// ListGoals returns the user's goals oldest-first, each with its wallet and
// the most recent entries. New goals appear at the end of the dashboard.
func (s *Service) ListGoals(ctx context.Context, userID string) ([]*entity.SavingsGoal, error) {
	if userID == "" {
		return nil, errs.ErrValidation
	}
	return s.goals.ListByUser(ctx, userID, recentEntriesPerGoal)
}

// GetGoal returns one goal with its complete entry history, newest-first
func (s *Service) GetGoal(ctx context.Context, userID, goalID string) (*entity.SavingsGoal, error) {
	if userID == "" || goalID == "" {
		return nil, errs.ErrValidation
	}

	goal, err := s.goals.GetForUser(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.ListByGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	goal.Entries = entries

	return goal, nil
}

// ListTransactions returns the user's most recent entries across all goals
func (s *Service) ListTransactions(ctx context.Context, userID string, limit int) ([]*entity.SavingsEntry, error) {
	if userID == "" {
		return nil, errs.ErrValidation
	}
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	return s.entries.ListByUser(ctx, userID, limit)
}

// Summary aggregates the user's goals for the dashboard header
func (s *Service) Summary(ctx context.Context, userID string) (*entity.SavingsSummary, error) {
	if userID == "" {
		return nil, errs.ErrValidation
	}

	goals, err := s.goals.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	return entity.SummarizeGoals(goals), nil
}
