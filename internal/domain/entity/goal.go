package entity

import (
	"time"

	errs "github.com/salapeso/savings-api/internal/domain/error"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
)

// DefaultGoalName is used when a goal is created without a name
const DefaultGoalName = "Savings"

// SavingsGoal is a named savings target tied to one wallet and owned by
// exactly one user. CurrentAmount is the running balance in cents and must
// always reconcile against the sum of the goal's entries; IsCompleted is
// derived from the target and persisted alongside.
type SavingsGoal struct {
	ID            string
	UserID        string
	WalletID      string
	Name          string
	TargetAmount  *int64 // cents; nil means no target set
	CurrentAmount int64  // cents; may go negative, withdrawals have no floor
	IsCompleted   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Populated by queries, not stored on the goal row
	Wallet  *Wallet
	Entries []*SavingsEntry
}

// NewSavingsGoal creates a goal with the given starting balance.
// The caller is responsible for synthesizing the matching initial entry
// when initialAmount is positive, so the ledger sum holds from creation.
func NewSavingsGoal(id, userID, walletID, name string, targetAmount *int64, initialAmount int64, timeProvider coreport.TimeProvider) (*SavingsGoal, error) {
	if userID == "" || walletID == "" {
		return nil, errs.ErrValidation
	}
	if name == "" {
		name = DefaultGoalName
	}

	now := timeProvider.Now()
	g := &SavingsGoal{
		ID:            id,
		UserID:        userID,
		WalletID:      walletID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: initialAmount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	g.recomputeCompleted()
	return g, nil
}

// ApplyEntry adds a signed entry amount to the balance and refreshes the
// completion flag. Negative balances are allowed by design.
func (g *SavingsGoal) ApplyEntry(amount int64, timeProvider coreport.TimeProvider) {
	g.CurrentAmount += amount
	g.recomputeCompleted()
	g.UpdatedAt = timeProvider.Now()
}

// Rename overwrites the display name
func (g *SavingsGoal) Rename(name string, timeProvider coreport.TimeProvider) {
	if name == "" {
		return
	}
	g.Name = name
	g.UpdatedAt = timeProvider.Now()
}

// SetTarget replaces the target amount. A nil or zero target clears it.
func (g *SavingsGoal) SetTarget(target *int64, timeProvider coreport.TimeProvider) {
	if target != nil && *target == 0 {
		target = nil
	}
	g.TargetAmount = target
	g.recomputeCompleted()
	g.UpdatedAt = timeProvider.Now()
}

// AdjustBalance overwrites the balance and returns the signed difference the
// caller must record as an adjustment entry. A balance edit never rewrites
// history; the difference keeps the entry sum reconcilable.
func (g *SavingsGoal) AdjustBalance(newAmount int64, timeProvider coreport.TimeProvider) (difference int64) {
	difference = newAmount - g.CurrentAmount
	g.CurrentAmount = newAmount
	g.recomputeCompleted()
	g.UpdatedAt = timeProvider.Now()
	return difference
}

// Remaining returns how many cents are left to the target, or 0 without one
func (g *SavingsGoal) Remaining() int64 {
	if g.TargetAmount == nil {
		return 0
	}
	remaining := *g.TargetAmount - g.CurrentAmount
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (g *SavingsGoal) recomputeCompleted() {
	g.IsCompleted = g.TargetAmount != nil && g.CurrentAmount >= *g.TargetAmount
}

// SavingsSummary aggregates a user's goals for the dashboard header
type SavingsSummary struct {
	TotalSaved     int64 // cents
	TotalTarget    int64 // cents
	ActiveGoals    int
	CompletedGoals int
	GoalsCount     int
}

// SummarizeGoals computes the dashboard summary over a user's goals
func SummarizeGoals(goals []*SavingsGoal) *SavingsSummary {
	s := &SavingsSummary{GoalsCount: len(goals)}
	for _, g := range goals {
		s.TotalSaved += g.CurrentAmount
		if g.TargetAmount != nil {
			s.TotalTarget += *g.TargetAmount
		}
		if g.IsCompleted {
			s.CompletedGoals++
		} else {
			s.ActiveGoals++
		}
	}
	return s
}
