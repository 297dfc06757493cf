package savings

import (
	"context"

	"github.com/salapeso/savings-api/internal/domain/entity"
	errs "github.com/salapeso/savings-api/internal/domain/error"
	"github.com/salapeso/savings-api/internal/domain/port/usecase"
)

// EditGoal applies a partial update to a goal. Name and target are plain
// overwrites. A supplied balance that differs from the stored one is written
// together with a synthetic "Balance adjustment" entry of the difference, so
// the entry history still sums to the stored balance. Prior entries are
// never touched.
func (s *Service) EditGoal(ctx context.Context, input usecase.EditGoalInput) (*entity.SavingsGoal, error) {
	if input.UserID == "" || input.GoalID == "" {
		return nil, errs.ErrValidation
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.uow.Rollback(txCtx) }()

	goals := s.uow.Goals(txCtx)

	goal, err := goals.GetForUpdate(txCtx, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		goal.Rename(*input.Name, s.timeProvider)
	}
	if input.TargetAmount != nil {
		goal.SetTarget(input.TargetAmount, s.timeProvider)
	}

	var difference int64
	if input.CurrentAmount != nil {
		difference = goal.AdjustBalance(*input.CurrentAmount, s.timeProvider)
	}

	if err := goals.Update(txCtx, goal); err != nil {
		s.logger.Error("Failed to update goal", map[string]any{
			"goal_id": input.GoalID,
			"error":   err.Error(),
		})
		return nil, err
	}

	if difference != 0 {
		adjustment, err := entity.NewSavingsEntry(
			s.random.NewID(),
			goal.ID,
			difference,
			entity.NoteBalanceAdjustment,
			s.timeProvider,
		)
		if err != nil {
			return nil, err
		}
		if err := s.uow.Entries(txCtx).Create(txCtx, adjustment); err != nil {
			s.logger.Error("Failed to record adjustment entry", map[string]any{
				"goal_id": goal.ID,
				"error":   err.Error(),
			})
			return nil, err
		}
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	// The response carries the goal's wallet just like creation and reads do
	wallet, err := s.wallets.GetByID(ctx, goal.WalletID)
	if err != nil {
		s.logger.Warn("Could not load wallet for updated goal", map[string]any{
			"goal_id":   goal.ID,
			"wallet_id": goal.WalletID,
			"error":     err.Error(),
		})
	} else {
		goal.Wallet = wallet
	}

	fields := map[string]any{
		"goal_id":   goal.ID,
		"user_id":   input.UserID,
		"completed": goal.IsCompleted,
	}
	if difference != 0 {
		fields["adjustment"] = entity.FormatCents(difference)
	}
	s.logger.Info("Goal updated", fields)

	return goal, nil
}
