package savings

import (
	"context"

	errs "github.com/salapeso/savings-api/internal/domain/error"
)

// DeleteGoal removes a goal and all of its entries. Not reversible.
func (s *Service) DeleteGoal(ctx context.Context, userID, goalID string) error {
	if userID == "" || goalID == "" {
		return errs.ErrValidation
	}

	// Ownership check first; the delete itself is keyed by ID only
	if _, err := s.goals.GetForUser(ctx, goalID, userID); err != nil {
		return err
	}

	if err := s.goals.Delete(ctx, goalID); err != nil {
		s.logger.Error("Failed to delete goal", map[string]any{
			"goal_id": goalID,
			"error":   err.Error(),
		})
		return err
	}

	s.logger.Info("Goal deleted", map[string]any{
		"goal_id": goalID,
		"user_id": userID,
	})
	return nil
}
