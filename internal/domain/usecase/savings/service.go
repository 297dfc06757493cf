package savings

import (
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
	"github.com/salapeso/savings-api/internal/domain/port/persistence"
	"github.com/salapeso/savings-api/internal/domain/port/usecase"
)

// Service implements the savings/ledger business logic. Balance-moving
// operations run inside a unit of work so the entry insert and the goal
// balance update land atomically; a crash can never leave the stored
// balance out of step with the entry sum.
type Service struct {
	uow          persistence.UnitOfWork
	goals        persistence.GoalRepository
	entries      persistence.EntryRepository
	wallets      persistence.WalletRepository
	random       coreport.RandomSource
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the savings use case
func NewService(
	uow persistence.UnitOfWork,
	goals persistence.GoalRepository,
	entries persistence.EntryRepository,
	wallets persistence.WalletRepository,
	random coreport.RandomSource,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.SavingsUseCase {
	return &Service{
		uow:          uow,
		goals:        goals,
		entries:      entries,
		wallets:      wallets,
		random:       random,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
