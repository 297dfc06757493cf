package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/salapeso/savings-api/internal/domain/error"
	coremocks "github.com/salapeso/savings-api/mocks/port/core"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func fixedClock(at time.Time) *coremocks.MockTimeProvider {
	tp := new(coremocks.MockTimeProvider)
	tp.On("Now").Return(at)
	return tp
}

func TestNewSavingsGoal(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := fixedClock(fixedTime)

	t.Run("creates goal with initial balance", func(t *testing.T) {
		goal, err := NewSavingsGoal("goal-1", "user-1", "wallet-1", "Emergency Fund", int64Ptr(100000), 50000, tp)

		assert.NoError(t, err)
		assert.Equal(t, "Emergency Fund", goal.Name)
		assert.Equal(t, int64(50000), goal.CurrentAmount)
		assert.False(t, goal.IsCompleted)
		assert.Equal(t, fixedTime, goal.CreatedAt)
		assert.Equal(t, fixedTime, goal.UpdatedAt)
	})

	t.Run("defaults empty name", func(t *testing.T) {
		goal, err := NewSavingsGoal("goal-1", "user-1", "wallet-1", "", nil, 0, tp)

		assert.NoError(t, err)
		assert.Equal(t, DefaultGoalName, goal.Name)
	})

	t.Run("completed from the start when balance meets target", func(t *testing.T) {
		goal, err := NewSavingsGoal("goal-1", "user-1", "wallet-1", "Done", int64Ptr(10000), 10000, tp)

		assert.NoError(t, err)
		assert.True(t, goal.IsCompleted)
	})

	t.Run("no target means never completed", func(t *testing.T) {
		goal, err := NewSavingsGoal("goal-1", "user-1", "wallet-1", "Open", nil, 999999, tp)

		assert.NoError(t, err)
		assert.False(t, goal.IsCompleted)
	})

	t.Run("rejects missing owner or wallet", func(t *testing.T) {
		_, err := NewSavingsGoal("goal-1", "", "wallet-1", "x", nil, 0, tp)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = NewSavingsGoal("goal-1", "user-1", "", "x", nil, 0, tp)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestSavingsGoal_ApplyEntry(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := fixedClock(fixedTime)

	t.Run("deposit moves balance and completes goal", func(t *testing.T) {
		goal, _ := NewSavingsGoal("goal-1", "user-1", "wallet-1", "Trip", int64Ptr(50000), 40000, tp)

		goal.ApplyEntry(10000, tp)

		assert.Equal(t, int64(50000), goal.CurrentAmount)
		assert.True(t, goal.IsCompleted)
	})

	t.Run("withdrawal may push balance negative", func(t *testing.T) {
		goal, _ := NewSavingsGoal("goal-1", "user-1", "wallet-1", "Trip", nil, 10000, tp)

		goal.ApplyEntry(-15000, tp)

		assert.Equal(t, int64(-5000), goal.CurrentAmount)
	})

	t.Run("withdrawal below target un-completes goal", func(t *testing.T) {
		goal, _ := NewSavingsGoal("goal-1", "user-1", "wallet-1", "Trip", int64Ptr(10000), 10000, tp)
		assert.True(t, goal.IsCompleted)

		goal.ApplyEntry(-1, tp)

		assert.False(t, goal.IsCompleted)
	})
}

func TestSavingsGoal_SetTarget(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := fixedClock(fixedTime)

	t.Run("lowering target can complete goal", func(t *testing.T) {
		goal, _ := NewSavingsGoal("goal-1", "user-1", "wallet-1", "Trip", int64Ptr(100000), 60000, tp)

		goal.SetTarget(int64Ptr(50000), tp)

		assert.True(t, goal.IsCompleted)
	})

	t.Run("zero clears the target", func(t *testing.T) {
		goal, _ := NewSavingsGoal("goal-1", "user-1", "wallet-1", "Trip", int64Ptr(100000), 60000, tp)

		goal.SetTarget(int64Ptr(0), tp)

		assert.Nil(t, goal.TargetAmount)
		assert.False(t, goal.IsCompleted)
	})

	t.Run("nil clears the target", func(t *testing.T) {
		goal, _ := NewSavingsGoal("goal-1", "user-1", "wallet-1", "Trip", int64Ptr(100000), 100000, tp)
		assert.True(t, goal.IsCompleted)

		goal.SetTarget(nil, tp)

		assert.Nil(t, goal.TargetAmount)
		assert.False(t, goal.IsCompleted)
	})
}

func TestSavingsGoal_AdjustBalance(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := fixedClock(fixedTime)

	t.Run("returns the signed difference", func(t *testing.T) {
		goal, _ := NewSavingsGoal("goal-1", "user-1", "wallet-1", "Trip", nil, 30000, tp)

		diff := goal.AdjustBalance(100000, tp)

		assert.Equal(t, int64(70000), diff)
		assert.Equal(t, int64(100000), goal.CurrentAmount)
	})

	t.Run("downward adjustment yields negative difference", func(t *testing.T) {
		goal, _ := NewSavingsGoal("goal-1", "user-1", "wallet-1", "Trip", nil, 30000, tp)

		diff := goal.AdjustBalance(10000, tp)

		assert.Equal(t, int64(-20000), diff)
	})

	t.Run("same balance yields zero difference", func(t *testing.T) {
		goal, _ := NewSavingsGoal("goal-1", "user-1", "wallet-1", "Trip", nil, 30000, tp)

		diff := goal.AdjustBalance(30000, tp)

		assert.Zero(t, diff)
	})
}

func TestSavingsGoal_Remaining(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := fixedClock(fixedTime)

	goal, _ := NewSavingsGoal("goal-1", "user-1", "wallet-1", "Trip", int64Ptr(100000), 30000, tp)
	assert.Equal(t, int64(70000), goal.Remaining())

	goal.ApplyEntry(80000, tp)
	assert.Zero(t, goal.Remaining(), "overshooting the target leaves nothing remaining")

	open, _ := NewSavingsGoal("goal-2", "user-1", "wallet-1", "Open", nil, 30000, tp)
	assert.Zero(t, open.Remaining())
}

func TestSummarizeGoals(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := fixedClock(fixedTime)

	done, _ := NewSavingsGoal("g1", "u", "w", "Done", int64Ptr(10000), 10000, tp)
	active, _ := NewSavingsGoal("g2", "u", "w", "Active", int64Ptr(50000), 20000, tp)
	open, _ := NewSavingsGoal("g3", "u", "w", "Open", nil, 5000, tp)

	summary := SummarizeGoals([]*SavingsGoal{done, active, open})

	assert.Equal(t, int64(35000), summary.TotalSaved)
	assert.Equal(t, int64(60000), summary.TotalTarget)
	assert.Equal(t, 1, summary.CompletedGoals)
	assert.Equal(t, 2, summary.ActiveGoals)
	assert.Equal(t, 3, summary.GoalsCount)

	empty := SummarizeGoals(nil)
	assert.Zero(t, empty.TotalSaved)
	assert.Zero(t, empty.GoalsCount)
}
