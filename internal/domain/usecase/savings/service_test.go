package savings

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/salapeso/savings-api/internal/domain/entity"
	errs "github.com/salapeso/savings-api/internal/domain/error"
	"github.com/salapeso/savings-api/internal/domain/port/usecase"
	coremocks "github.com/salapeso/savings-api/mocks/port/core"
	persistencemocks "github.com/salapeso/savings-api/mocks/port/persistence"
)

// fixedTime keeps timestamps deterministic across all savings tests
var fixedTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(s string) *string {
	return &s
}

func relaxedLogger() *coremocks.MockLogger {
	logger := new(coremocks.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func fixedTimeProvider() *coremocks.MockTimeProvider {
	tp := new(coremocks.MockTimeProvider)
	tp.On("Now").Return(fixedTime)
	return tp
}

// sequencedRandom returns id-1, id-2, ... so created records are addressable
func sequencedRandom() *coremocks.MockRandomSource {
	random := new(coremocks.MockRandomSource)
	n := 0
	random.On("NewID").Return(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}).Maybe()
	return random
}

// transactionalUow wires a MockUnitOfWork so Begin hands back the same
// context and the transactional repositories are the given mocks
func transactionalUow(goals *persistencemocks.MockGoalRepository, entries *persistencemocks.MockEntryRepository) *persistencemocks.MockUnitOfWork {
	uow := new(persistencemocks.MockUnitOfWork)
	uow.On("Begin", mock.Anything).Return(context.Background(), nil).Maybe()
	uow.On("Commit", mock.Anything).Return(nil).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	uow.On("Goals", mock.Anything).Return(goals).Maybe()
	uow.On("Entries", mock.Anything).Return(entries).Maybe()
	return uow
}

func TestService_CreateGoal(t *testing.T) {
	wallet := &entity.Wallet{ID: "wallet-1", Slug: "gcash", Type: entity.WalletTypeEWallet, IsActive: true}

	t.Run("creates goal with synthesized initial entry", func(t *testing.T) {
		goals := new(persistencemocks.MockGoalRepository)
		entries := new(persistencemocks.MockEntryRepository)
		wallets := new(persistencemocks.MockWalletRepository)
		uow := transactionalUow(goals, entries)

		wallets.On("GetByID", mock.Anything, "wallet-1").Return(wallet, nil)

		var createdGoal *entity.SavingsGoal
		goals.On("Create", mock.Anything, mock.AnythingOfType("*entity.SavingsGoal")).
			Run(func(args mock.Arguments) {
				createdGoal = args.Get(1).(*entity.SavingsGoal)
			}).Return(nil)

		var createdEntry *entity.SavingsEntry
		entries.On("Create", mock.Anything, mock.AnythingOfType("*entity.SavingsEntry")).
			Run(func(args mock.Arguments) {
				createdEntry = args.Get(1).(*entity.SavingsEntry)
			}).Return(nil)

		svc := NewService(uow, goals, entries, wallets, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		goal, err := svc.CreateGoal(context.Background(), usecase.CreateGoalInput{
			UserID:        "user-1",
			WalletID:      "wallet-1",
			Name:          "Emergency Fund",
			TargetAmount:  int64Ptr(100000),
			InitialAmount: 50000,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(50000), goal.CurrentAmount)
		assert.Equal(t, wallet, goal.Wallet)
		assert.NotNil(t, createdGoal)
		assert.NotNil(t, createdEntry)
		assert.Equal(t, createdGoal.ID, createdEntry.SavingsGoalID)
		assert.Equal(t, int64(50000), createdEntry.Amount)
		assert.Equal(t, entity.NoteInitialBalance, createdEntry.Note)
		uow.AssertCalled(t, "Commit", mock.Anything)
	})

	t.Run("no initial entry when starting from zero", func(t *testing.T) {
		goals := new(persistencemocks.MockGoalRepository)
		entries := new(persistencemocks.MockEntryRepository)
		wallets := new(persistencemocks.MockWalletRepository)
		uow := transactionalUow(goals, entries)

		wallets.On("GetByID", mock.Anything, "wallet-1").Return(wallet, nil)
		goals.On("Create", mock.Anything, mock.Anything).Return(nil)

		svc := NewService(uow, goals, entries, wallets, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		goal, err := svc.CreateGoal(context.Background(), usecase.CreateGoalInput{
			UserID:   "user-1",
			WalletID: "wallet-1",
			Name:     "Fresh Start",
		})

		assert.NoError(t, err)
		assert.Zero(t, goal.CurrentAmount)
		entries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("zero target is stored as no target", func(t *testing.T) {
		goals := new(persistencemocks.MockGoalRepository)
		entries := new(persistencemocks.MockEntryRepository)
		wallets := new(persistencemocks.MockWalletRepository)
		uow := transactionalUow(goals, entries)

		wallets.On("GetByID", mock.Anything, "wallet-1").Return(wallet, nil)
		goals.On("Create", mock.Anything, mock.Anything).Return(nil)

		svc := NewService(uow, goals, entries, wallets, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		goal, err := svc.CreateGoal(context.Background(), usecase.CreateGoalInput{
			UserID:       "user-1",
			WalletID:     "wallet-1",
			TargetAmount: int64Ptr(0),
		})

		assert.NoError(t, err)
		assert.Nil(t, goal.TargetAmount)
	})

	t.Run("unknown wallet aborts before any write", func(t *testing.T) {
		goals := new(persistencemocks.MockGoalRepository)
		entries := new(persistencemocks.MockEntryRepository)
		wallets := new(persistencemocks.MockWalletRepository)
		uow := new(persistencemocks.MockUnitOfWork)

		wallets.On("GetByID", mock.Anything, "missing").Return(nil, errs.ErrWalletNotFound)

		svc := NewService(uow, goals, entries, wallets, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		_, err := svc.CreateGoal(context.Background(), usecase.CreateGoalInput{
			UserID:   "user-1",
			WalletID: "missing",
		})

		assert.ErrorIs(t, err, errs.ErrWalletNotFound)
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("rejects missing user or wallet id", func(t *testing.T) {
		svc := NewService(nil, nil, nil, nil, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		_, err := svc.CreateGoal(context.Background(), usecase.CreateGoalInput{WalletID: "wallet-1"})
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = svc.CreateGoal(context.Background(), usecase.CreateGoalInput{UserID: "user-1"})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestService_AddEntry(t *testing.T) {
	newGoal := func() *entity.SavingsGoal {
		return &entity.SavingsGoal{
			ID:            "goal-1",
			UserID:        "user-1",
			WalletID:      "wallet-1",
			Name:          "Trip",
			CurrentAmount: 50000,
		}
	}

	t.Run("withdrawal moves balance inside one transaction", func(t *testing.T) {
		goals := new(persistencemocks.MockGoalRepository)
		entries := new(persistencemocks.MockEntryRepository)
		uow := transactionalUow(goals, entries)

		goal := newGoal()
		goals.On("GetForUpdate", mock.Anything, "goal-1", "user-1").Return(goal, nil)
		goals.On("Update", mock.Anything, goal).Return(nil)

		var createdEntry *entity.SavingsEntry
		entries.On("Create", mock.Anything, mock.AnythingOfType("*entity.SavingsEntry")).
			Run(func(args mock.Arguments) {
				createdEntry = args.Get(1).(*entity.SavingsEntry)
			}).Return(nil)

		svc := NewService(uow, goals, entries, nil, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		entry, err := svc.AddEntry(context.Background(), "user-1", "goal-1", -20000, "groceries")

		assert.NoError(t, err)
		assert.Equal(t, int64(-20000), entry.Amount)
		assert.Equal(t, "groceries", entry.Note)
		assert.Equal(t, int64(30000), goal.CurrentAmount)
		assert.Equal(t, createdEntry, entry)
		uow.AssertCalled(t, "Commit", mock.Anything)
	})

	t.Run("deposit can complete the goal", func(t *testing.T) {
		goals := new(persistencemocks.MockGoalRepository)
		entries := new(persistencemocks.MockEntryRepository)
		uow := transactionalUow(goals, entries)

		goal := newGoal()
		goal.TargetAmount = int64Ptr(60000)
		goals.On("GetForUpdate", mock.Anything, "goal-1", "user-1").Return(goal, nil)
		goals.On("Update", mock.Anything, goal).Return(nil)
		entries.On("Create", mock.Anything, mock.Anything).Return(nil)

		svc := NewService(uow, goals, entries, nil, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		_, err := svc.AddEntry(context.Background(), "user-1", "goal-1", 10000, "")

		assert.NoError(t, err)
		assert.True(t, goal.IsCompleted)
	})

	t.Run("balance may go negative", func(t *testing.T) {
		goals := new(persistencemocks.MockGoalRepository)
		entries := new(persistencemocks.MockEntryRepository)
		uow := transactionalUow(goals, entries)

		goal := newGoal()
		goals.On("GetForUpdate", mock.Anything, "goal-1", "user-1").Return(goal, nil)
		goals.On("Update", mock.Anything, goal).Return(nil)
		entries.On("Create", mock.Anything, mock.Anything).Return(nil)

		svc := NewService(uow, goals, entries, nil, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		_, err := svc.AddEntry(context.Background(), "user-1", "goal-1", -80000, "")

		assert.NoError(t, err)
		assert.Equal(t, int64(-30000), goal.CurrentAmount)
	})

	t.Run("zero amount is rejected before the transaction", func(t *testing.T) {
		uow := new(persistencemocks.MockUnitOfWork)
		svc := NewService(uow, nil, nil, nil, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		_, err := svc.AddEntry(context.Background(), "user-1", "goal-1", 0, "")

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("foreign goal reads as not found and rolls back", func(t *testing.T) {
		goals := new(persistencemocks.MockGoalRepository)
		entries := new(persistencemocks.MockEntryRepository)
		uow := transactionalUow(goals, entries)

		goals.On("GetForUpdate", mock.Anything, "goal-1", "intruder").Return(nil, errs.ErrGoalNotFound)

		svc := NewService(uow, goals, entries, nil, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		_, err := svc.AddEntry(context.Background(), "intruder", "goal-1", 100, "")

		assert.ErrorIs(t, err, errs.ErrGoalNotFound)
		entries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		uow.AssertCalled(t, "Rollback", mock.Anything)
	})
}

func TestService_EditGoal(t *testing.T) {
	wallet := &entity.Wallet{ID: "wallet-1", Slug: "bpi", Type: entity.WalletTypeBank, IsActive: true}

	t.Run("balance overwrite records an adjustment entry", func(t *testing.T) {
		goals := new(persistencemocks.MockGoalRepository)
		entries := new(persistencemocks.MockEntryRepository)
		wallets := new(persistencemocks.MockWalletRepository)
		uow := transactionalUow(goals, entries)

		goal := &entity.SavingsGoal{ID: "goal-1", UserID: "user-1", WalletID: "wallet-1", Name: "Trip", CurrentAmount: 30000}
		goals.On("GetForUpdate", mock.Anything, "goal-1", "user-1").Return(goal, nil)
		goals.On("Update", mock.Anything, goal).Return(nil)
		wallets.On("GetByID", mock.Anything, "wallet-1").Return(wallet, nil)

		var adjustment *entity.SavingsEntry
		entries.On("Create", mock.Anything, mock.AnythingOfType("*entity.SavingsEntry")).
			Run(func(args mock.Arguments) {
				adjustment = args.Get(1).(*entity.SavingsEntry)
			}).Return(nil)

		svc := NewService(uow, goals, entries, wallets, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		updated, err := svc.EditGoal(context.Background(), usecase.EditGoalInput{
			UserID:        "user-1",
			GoalID:        "goal-1",
			CurrentAmount: int64Ptr(100000),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(100000), updated.CurrentAmount)
		assert.Same(t, wallet, updated.Wallet)
		assert.NotNil(t, adjustment)
		assert.Equal(t, int64(70000), adjustment.Amount)
		assert.Equal(t, entity.NoteBalanceAdjustment, adjustment.Note)
	})

	t.Run("name and target edits write no entry", func(t *testing.T) {
		goals := new(persistencemocks.MockGoalRepository)
		entries := new(persistencemocks.MockEntryRepository)
		wallets := new(persistencemocks.MockWalletRepository)
		uow := transactionalUow(goals, entries)

		goal := &entity.SavingsGoal{ID: "goal-1", UserID: "user-1", WalletID: "wallet-1", Name: "Trip", CurrentAmount: 30000}
		goals.On("GetForUpdate", mock.Anything, "goal-1", "user-1").Return(goal, nil)
		goals.On("Update", mock.Anything, goal).Return(nil)
		wallets.On("GetByID", mock.Anything, "wallet-1").Return(wallet, nil)

		svc := NewService(uow, goals, entries, wallets, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		updated, err := svc.EditGoal(context.Background(), usecase.EditGoalInput{
			UserID:       "user-1",
			GoalID:       "goal-1",
			Name:         strPtr("Japan Trip"),
			TargetAmount: int64Ptr(200000),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Japan Trip", updated.Name)
		assert.Equal(t, int64(200000), *updated.TargetAmount)
		entries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unchanged balance writes no entry", func(t *testing.T) {
		goals := new(persistencemocks.MockGoalRepository)
		entries := new(persistencemocks.MockEntryRepository)
		wallets := new(persistencemocks.MockWalletRepository)
		uow := transactionalUow(goals, entries)

		goal := &entity.SavingsGoal{ID: "goal-1", UserID: "user-1", WalletID: "wallet-1", Name: "Trip", CurrentAmount: 30000}
		goals.On("GetForUpdate", mock.Anything, "goal-1", "user-1").Return(goal, nil)
		goals.On("Update", mock.Anything, goal).Return(nil)
		wallets.On("GetByID", mock.Anything, "wallet-1").Return(wallet, nil)

		svc := NewService(uow, goals, entries, wallets, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		_, err := svc.EditGoal(context.Background(), usecase.EditGoalInput{
			UserID:        "user-1",
			GoalID:        "goal-1",
			CurrentAmount: int64Ptr(30000),
		})

		assert.NoError(t, err)
		entries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_DeleteGoal(t *testing.T) {
	t.Run("deletes after ownership check", func(t *testing.T) {
		goals := new(persistencemocks.MockGoalRepository)

		goal := &entity.SavingsGoal{ID: "goal-1", UserID: "user-1"}
		goals.On("GetForUser", mock.Anything, "goal-1", "user-1").Return(goal, nil)
		goals.On("Delete", mock.Anything, "goal-1").Return(nil)

		svc := NewService(nil, goals, nil, nil, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		assert.NoError(t, svc.DeleteGoal(context.Background(), "user-1", "goal-1"))
		goals.AssertExpectations(t)
	})

	t.Run("foreign goal is never deleted", func(t *testing.T) {
		goals := new(persistencemocks.MockGoalRepository)
		goals.On("GetForUser", mock.Anything, "goal-1", "intruder").Return(nil, errs.ErrGoalNotFound)

		svc := NewService(nil, goals, nil, nil, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		err := svc.DeleteGoal(context.Background(), "intruder", "goal-1")

		assert.ErrorIs(t, err, errs.ErrGoalNotFound)
		goals.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestService_Queries(t *testing.T) {
	t.Run("GetGoal attaches the full entry history", func(t *testing.T) {
		goals := new(persistencemocks.MockGoalRepository)
		entries := new(persistencemocks.MockEntryRepository)

		goal := &entity.SavingsGoal{ID: "goal-1", UserID: "user-1"}
		history := []*entity.SavingsEntry{
			{ID: "e2", SavingsGoalID: "goal-1", Amount: -20000},
			{ID: "e1", SavingsGoalID: "goal-1", Amount: 50000},
		}
		goals.On("GetForUser", mock.Anything, "goal-1", "user-1").Return(goal, nil)
		entries.On("ListByGoal", mock.Anything, "goal-1").Return(history, nil)

		svc := NewService(nil, goals, entries, nil, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		got, err := svc.GetGoal(context.Background(), "user-1", "goal-1")

		assert.NoError(t, err)
		assert.Equal(t, history, got.Entries)
	})

	t.Run("ListTransactions falls back to the default limit", func(t *testing.T) {
		entries := new(persistencemocks.MockEntryRepository)
		entries.On("ListByUser", mock.Anything, "user-1", DefaultTransactionLimit).Return([]*entity.SavingsEntry{}, nil)

		svc := NewService(nil, nil, entries, nil, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		_, err := svc.ListTransactions(context.Background(), "user-1", 0)

		assert.NoError(t, err)
		entries.AssertExpectations(t)
	})

	t.Run("Summary aggregates over all goals", func(t *testing.T) {
		goals := new(persistencemocks.MockGoalRepository)
		goals.On("ListByUser", mock.Anything, "user-1", 0).Return([]*entity.SavingsGoal{
			{CurrentAmount: 50000, TargetAmount: int64Ptr(50000), IsCompleted: true},
			{CurrentAmount: 10000},
		}, nil)

		svc := NewService(nil, goals, nil, nil, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		summary, err := svc.Summary(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(60000), summary.TotalSaved)
		assert.Equal(t, int64(50000), summary.TotalTarget)
		assert.Equal(t, 1, summary.CompletedGoals)
		assert.Equal(t, 1, summary.ActiveGoals)
	})

	t.Run("empty user id fails validation", func(t *testing.T) {
		svc := NewService(nil, nil, nil, nil, sequencedRandom(), fixedTimeProvider(), relaxedLogger())

		_, err := svc.ListGoals(context.Background(), "")
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = svc.Summary(context.Background(), "")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

// TestGoalLedgerLifecycle walks a goal through create, withdraw and balance
// edit, checking that the entry history always sums to the stored balance.
func TestGoalLedgerLifecycle(t *testing.T) {
	goals := new(persistencemocks.MockGoalRepository)
	entries := new(persistencemocks.MockEntryRepository)
	wallets := new(persistencemocks.MockWalletRepository)
	uow := transactionalUow(goals, entries)

	wallet := &entity.Wallet{ID: "wallet-1", Slug: "bpi", Type: entity.WalletTypeBank, IsActive: true}
	wallets.On("GetByID", mock.Anything, "wallet-1").Return(wallet, nil)

	var goal *entity.SavingsGoal
	var ledger []*entity.SavingsEntry

	goals.On("Create", mock.Anything, mock.AnythingOfType("*entity.SavingsGoal")).
		Run(func(args mock.Arguments) {
			goal = args.Get(1).(*entity.SavingsGoal)
		}).Return(nil)
	goals.On("GetForUpdate", mock.Anything, mock.Anything, "user-1").Return(func(ctx context.Context, goalID, userID string) *entity.SavingsGoal {
		return goal
	}, nil)
	goals.On("Update", mock.Anything, mock.Anything).Return(nil)
	entries.On("Create", mock.Anything, mock.AnythingOfType("*entity.SavingsEntry")).
		Run(func(args mock.Arguments) {
			ledger = append(ledger, args.Get(1).(*entity.SavingsEntry))
		}).Return(nil)

	svc := NewService(uow, goals, entries, wallets, sequencedRandom(), fixedTimeProvider(), relaxedLogger())
	ctx := context.Background()

	// Create with an initial balance of 500.00
	created, err := svc.CreateGoal(ctx, usecase.CreateGoalInput{
		UserID:        "user-1",
		WalletID:      "wallet-1",
		Name:          "Laptop",
		InitialAmount: 50000,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(50000), created.CurrentAmount)

	// Withdraw 200.00
	_, err = svc.AddEntry(ctx, "user-1", goal.ID, -20000, "repair bill")
	assert.NoError(t, err)
	assert.Equal(t, int64(30000), goal.CurrentAmount)

	// Edit the balance straight to 1000.00
	_, err = svc.EditGoal(ctx, usecase.EditGoalInput{
		UserID:        "user-1",
		GoalID:        goal.ID,
		CurrentAmount: int64Ptr(100000),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(100000), goal.CurrentAmount)

	// Three ledger lines: initial, withdrawal, +700.00 adjustment
	assert.Len(t, ledger, 3)
	assert.Equal(t, int64(70000), ledger[2].Amount)
	assert.Equal(t, entity.NoteBalanceAdjustment, ledger[2].Note)
	assert.Equal(t, goal.CurrentAmount, entity.SumEntries(ledger), "ledger must reconcile with the stored balance")
}
