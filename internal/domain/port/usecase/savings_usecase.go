package usecase

import (
	"context"

	"github.com/salapeso/savings-api/internal/domain/entity"
)

// CreateGoalInput carries the fields for creating a savings goal.
// Amounts are in cents; a nil TargetAmount means no target.
type CreateGoalInput struct {
	UserID        string
	WalletID      string
	Name          string
	TargetAmount  *int64
	InitialAmount int64
}

// EditGoalInput carries a partial goal update. Nil pointers mean "leave
// unchanged"; a TargetAmount of 0 clears the target; a CurrentAmount that
// differs from the stored balance produces an adjustment entry.
type EditGoalInput struct {
	UserID        string
	GoalID        string
	Name          *string
	TargetAmount  *int64
	CurrentAmount *int64
}

// SavingsUseCase defines the ledger and goal operations exposed over HTTP.
// Every operation is scoped to the calling user; goals belonging to someone
// else behave exactly like goals that do not exist.
type SavingsUseCase interface {
	// ListWallets returns the active wallet catalog (public)
	ListWallets(ctx context.Context) ([]*entity.Wallet, error)

	// ListGoals returns the user's goals oldest-first with recent entries
	ListGoals(ctx context.Context, userID string) ([]*entity.SavingsGoal, error)

	// GetGoal returns one goal with its full entry history
	GetGoal(ctx context.Context, userID, goalID string) (*entity.SavingsGoal, error)

	// CreateGoal creates a goal, synthesizing an initial-balance entry when
	// the starting amount is positive
	CreateGoal(ctx context.Context, input CreateGoalInput) (*entity.SavingsGoal, error)

	// EditGoal applies a partial update, recording a balance adjustment
	// entry when the balance is overwritten
	EditGoal(ctx context.Context, input EditGoalInput) (*entity.SavingsGoal, error)

	// DeleteGoal removes a goal and all of its entries
	DeleteGoal(ctx context.Context, userID, goalID string) error

	// AddEntry appends a signed ledger line and moves the goal balance
	AddEntry(ctx context.Context, userID, goalID string, amount int64, note string) (*entity.SavingsEntry, error)

	// ListTransactions returns recent entries across all the user's goals
	ListTransactions(ctx context.Context, userID string, limit int) ([]*entity.SavingsEntry, error)

	// Summary aggregates the user's goals for the dashboard
	Summary(ctx context.Context, userID string) (*entity.SavingsSummary, error)
}
