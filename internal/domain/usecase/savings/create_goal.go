package savings

import (
	"context"
	"errors"

	"github.com/salapeso/savings-api/internal/domain/entity"
	errs "github.com/salapeso/savings-api/internal/domain/error"
	"github.com/salapeso/savings-api/internal/domain/port/usecase"
)

// CreateGoal creates a savings goal. When the goal starts with a positive
// balance, one "Initial balance" entry is written in the same transaction so
// the ledger sum matches the stored balance from the first moment.
func (s *Service) CreateGoal(ctx context.Context, input usecase.CreateGoalInput) (*entity.SavingsGoal, error) {
	if input.UserID == "" || input.WalletID == "" {
		return nil, errs.ErrValidation
	}

	wallet, err := s.wallets.GetByID(ctx, input.WalletID)
	if err != nil {
		if errors.Is(err, errs.ErrWalletNotFound) {
			s.logger.Warn("Goal references unknown wallet", map[string]any{
				"user_id":   input.UserID,
				"wallet_id": input.WalletID,
			})
		}
		return nil, err
	}

	target := input.TargetAmount
	if target != nil && *target == 0 {
		target = nil
	}

	goal, err := entity.NewSavingsGoal(
		s.random.NewID(),
		input.UserID,
		input.WalletID,
		input.Name,
		target,
		input.InitialAmount,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.uow.Rollback(txCtx) }()

	if err := s.uow.Goals(txCtx).Create(txCtx, goal); err != nil {
		s.logger.Error("Failed to create goal", map[string]any{
			"user_id": input.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	if input.InitialAmount > 0 {
		initial, err := entity.NewSavingsEntry(
			s.random.NewID(),
			goal.ID,
			input.InitialAmount,
			entity.NoteInitialBalance,
			s.timeProvider,
		)
		if err != nil {
			return nil, err
		}
		if err := s.uow.Entries(txCtx).Create(txCtx, initial); err != nil {
			s.logger.Error("Failed to record initial balance entry", map[string]any{
				"goal_id": goal.ID,
				"error":   err.Error(),
			})
			return nil, err
		}
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	goal.Wallet = wallet
	s.logger.Info("Goal created", map[string]any{
		"goal_id":        goal.ID,
		"user_id":        input.UserID,
		"wallet":         wallet.Slug,
		"initial_amount": entity.FormatCents(input.InitialAmount),
	})

	return goal, nil
}
