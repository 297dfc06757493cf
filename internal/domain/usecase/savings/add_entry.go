package savings

import (
	"context"
	"errors"

	"github.com/salapeso/savings-api/internal/domain/entity"
	errs "github.com/salapeso/savings-api/internal/domain/error"
)

// AddEntry appends a signed ledger line to a goal and moves its balance.
// The goal row is locked for the duration of the transaction, so two
// concurrent entries against the same goal serialize instead of racing the
// read-modify-write. Withdrawals have no floor: the balance may go negative.
func (s *Service) AddEntry(ctx context.Context, userID, goalID string, amount int64, note string) (*entity.SavingsEntry, error) {
	if userID == "" || goalID == "" {
		return nil, errs.ErrValidation
	}
	if amount == 0 {
		return nil, errs.ErrInvalidAmount
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.uow.Rollback(txCtx) }()

	goals := s.uow.Goals(txCtx)

	goal, err := goals.GetForUpdate(txCtx, goalID, userID)
	if err != nil {
		if errors.Is(err, errs.ErrGoalNotFound) {
			s.logger.Warn("Entry against missing or foreign goal", map[string]any{
				"goal_id": goalID,
				"user_id": userID,
			})
		}
		return nil, err
	}

	entry, err := entity.NewSavingsEntry(s.random.NewID(), goal.ID, amount, note, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.uow.Entries(txCtx).Create(txCtx, entry); err != nil {
		s.logger.Error("Failed to append entry", map[string]any{
			"goal_id": goalID,
			"error":   err.Error(),
		})
		return nil, err
	}

	goal.ApplyEntry(amount, s.timeProvider)

	if err := goals.Update(txCtx, goal); err != nil {
		s.logger.Error("Failed to update goal balance", map[string]any{
			"goal_id": goalID,
			"error":   err.Error(),
		})
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Entry recorded", map[string]any{
		"goal_id":     goalID,
		"user_id":     userID,
		"amount":      entity.FormatCents(amount),
		"new_balance": entity.FormatCents(goal.CurrentAmount),
		"completed":   goal.IsCompleted,
	})

	return entry, nil
}
