package entity

import (
	"time"

	errs "github.com/salapeso/savings-api/internal/domain/error"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
)

// Notes attached to entries the system synthesizes itself
const (
	NoteInitialBalance    = "Initial balance"
	NoteBalanceAdjustment = "Balance adjustment"
)

// SavingsEntry is one immutable ledger line against a goal. Positive amounts
// are deposits, negative amounts are withdrawals. Entries are append-only:
// corrections are expressed as new adjustment entries, never as edits.
type SavingsEntry struct {
	ID            string
	SavingsGoalID string
	Amount        int64 // signed cents
	Note          string
	CreatedAt     time.Time

	// Populated by the transactions query so each line can show its goal
	Goal *SavingsGoal
}

// NewSavingsEntry creates a ledger line. A zero amount is rejected; it would
// record nothing and only pollute history.
func NewSavingsEntry(id, goalID string, amount int64, note string, timeProvider coreport.TimeProvider) (*SavingsEntry, error) {
	if goalID == "" {
		return nil, errs.ErrValidation
	}
	if amount == 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &SavingsEntry{
		ID:            id,
		SavingsGoalID: goalID,
		Amount:        amount,
		Note:          note,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// IsDeposit reports whether this line increased the balance
func (e *SavingsEntry) IsDeposit() bool {
	return e.Amount > 0
}

// IsSynthetic reports whether the system created this entry to reconcile a
// direct balance write
func (e *SavingsEntry) IsSynthetic() bool {
	return e.Note == NoteInitialBalance || e.Note == NoteBalanceAdjustment
}

// SumEntries totals the signed amounts of a goal's ledger lines. For a
// consistent goal this equals the stored balance.
func SumEntries(entries []*SavingsEntry) int64 {
	var sum int64
	for _, e := range entries {
		sum += e.Amount
	}
	return sum
}
