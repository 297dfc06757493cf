package support

import (
	"context"

	errs "github.com/salapeso/savings-api/internal/domain/error"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
	"github.com/salapeso/savings-api/internal/domain/port/persistence"
	"github.com/salapeso/savings-api/internal/domain/port/usecase"
)

// Service implements the support-heart counter: one toggleable heart per user
type Service struct {
	hearts persistence.SupportRepository
	random coreport.RandomSource
	logger coreport.Logger
}

// NewService creates the support use case
func NewService(hearts persistence.SupportRepository, random coreport.RandomSource, logger coreport.Logger) usecase.SupportUseCase {
	return &Service{hearts: hearts, random: random, logger: logger}
}

// Status returns the heart count, plus the caller's own state when known
func (s *Service) Status(ctx context.Context, userID string) (*usecase.SupportStatus, error) {
	count, err := s.hearts.Count(ctx)
	if err != nil {
		return nil, err
	}

	status := &usecase.SupportStatus{Count: count}
	if userID != "" {
		hearted, err := s.hearts.HasHearted(ctx, userID)
		if err != nil {
			return nil, err
		}
		status.HasHearted = hearted
	}
	return status, nil
}

// Toggle flips the user's heart and returns the new status
func (s *Service) Toggle(ctx context.Context, userID string) (*usecase.SupportStatus, error) {
	if userID == "" {
		return nil, errs.ErrTokenInvalid
	}

	hearted, err := s.hearts.HasHearted(ctx, userID)
	if err != nil {
		return nil, err
	}

	if hearted {
		err = s.hearts.Remove(ctx, userID)
	} else {
		err = s.hearts.Add(ctx, s.random.NewID(), userID)
	}
	if err != nil {
		return nil, err
	}

	count, err := s.hearts.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.SupportStatus{Count: count, HasHearted: !hearted}, nil
}
