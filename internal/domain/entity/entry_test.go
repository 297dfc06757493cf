package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/salapeso/savings-api/internal/domain/error"
)

func TestNewSavingsEntry(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := fixedClock(fixedTime)

	t.Run("creates signed entries", func(t *testing.T) {
		deposit, err := NewSavingsEntry("e1", "goal-1", 10000, "payday", tp)
		assert.NoError(t, err)
		assert.True(t, deposit.IsDeposit())
		assert.Equal(t, fixedTime, deposit.CreatedAt)

		withdrawal, err := NewSavingsEntry("e2", "goal-1", -5000, "", tp)
		assert.NoError(t, err)
		assert.False(t, withdrawal.IsDeposit())
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := NewSavingsEntry("e1", "goal-1", 0, "", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("rejects missing goal", func(t *testing.T) {
		_, err := NewSavingsEntry("e1", "", 100, "", tp)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestSavingsEntry_IsSynthetic(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := fixedClock(fixedTime)

	initial, _ := NewSavingsEntry("e1", "g", 100, NoteInitialBalance, tp)
	adjustment, _ := NewSavingsEntry("e2", "g", -100, NoteBalanceAdjustment, tp)
	manual, _ := NewSavingsEntry("e3", "g", 100, "coffee money", tp)

	assert.True(t, initial.IsSynthetic())
	assert.True(t, adjustment.IsSynthetic())
	assert.False(t, manual.IsSynthetic())
}

func TestSumEntries(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := fixedClock(fixedTime)

	e1, _ := NewSavingsEntry("e1", "g", 50000, NoteInitialBalance, tp)
	e2, _ := NewSavingsEntry("e2", "g", -20000, "", tp)
	e3, _ := NewSavingsEntry("e3", "g", 70000, NoteBalanceAdjustment, tp)

	assert.Equal(t, int64(100000), SumEntries([]*SavingsEntry{e1, e2, e3}))
	assert.Zero(t, SumEntries(nil))
}
