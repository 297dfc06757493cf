package dto

import (
	"time"

	"github.com/salapeso/savings-api/internal/domain/entity"
)

// CreateGoalRequest represents the API request for creating a savings goal.
// Amounts travel as decimal numbers and are converted to cents internally.
type CreateGoalRequest struct {
	WalletID      string   `json:"walletId" binding:"required"`
	Name          string   `json:"name"`
	TargetAmount  *float64 `json:"targetAmount"`
	InitialAmount *float64 `json:"initialAmount"`
}

// EditGoalRequest represents a partial goal update. Absent fields are left
// unchanged; a targetAmount of 0 clears the target; a currentAmount that
// differs from the stored balance produces an adjustment entry.
type EditGoalRequest struct {
	Name          *string  `json:"name"`
	TargetAmount  *float64 `json:"targetAmount"`
	CurrentAmount *float64 `json:"currentAmount"`
}

// AddEntryRequest represents the API request for a ledger entry. Amount is
// signed: positive deposits, negative withdrawals.
type AddEntryRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Note   string  `json:"note"`
}

// WalletResponse represents the API shape of a wallet catalog entry
type WalletResponse struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Logo string `json:"logo"`
	Type string `json:"type"`
}

// EntryResponse represents the API shape of a ledger entry
type EntryResponse struct {
	ID        string        `json:"id"`
	GoalID    string        `json:"savingsGoalId"`
	Amount    float64       `json:"amount"`
	Note      string        `json:"note,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	Goal      *GoalResponse `json:"goal,omitempty"`
}

// GoalResponse represents the API shape of a savings goal
type GoalResponse struct {
	ID            string          `json:"id"`
	WalletID      string          `json:"walletId"`
	Name          string          `json:"name"`
	TargetAmount  *float64        `json:"targetAmount"`
	CurrentAmount float64         `json:"currentAmount"`
	IsCompleted   bool            `json:"isCompleted"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Wallet        *WalletResponse `json:"wallet,omitempty"`
	Entries       []EntryResponse `json:"entries,omitempty"`
}

// SummaryResponse represents the dashboard aggregate
type SummaryResponse struct {
	TotalSaved     float64 `json:"totalSaved"`
	TotalTarget    float64 `json:"totalTarget"`
	ActiveGoals    int     `json:"activeGoals"`
	CompletedGoals int     `json:"completedGoals"`
	GoalsCount     int     `json:"goalsCount"`
}

// ToWalletResponse maps a wallet entity to its API shape
func ToWalletResponse(wallet *entity.Wallet) WalletResponse {
	return WalletResponse{
		ID:   wallet.ID,
		Slug: wallet.Slug,
		Logo: wallet.Logo,
		Type: string(wallet.Type),
	}
}

// ToWalletResponses maps a wallet slice
func ToWalletResponses(wallets []*entity.Wallet) []WalletResponse {
	out := make([]WalletResponse, 0, len(wallets))
	for _, w := range wallets {
		out = append(out, ToWalletResponse(w))
	}
	return out
}

// ToEntryResponse maps a ledger entry to its API shape
func ToEntryResponse(entry *entity.SavingsEntry) EntryResponse {
	resp := EntryResponse{
		ID:        entry.ID,
		GoalID:    entry.SavingsGoalID,
		Amount:    entity.DecimalFromCents(entry.Amount),
		Note:      entry.Note,
		CreatedAt: entry.CreatedAt,
	}
	if entry.Goal != nil {
		goal := ToGoalResponse(entry.Goal)
		resp.Goal = &goal
	}
	return resp
}

// ToEntryResponses maps an entry slice
func ToEntryResponses(entries []*entity.SavingsEntry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToEntryResponse(e))
	}
	return out
}

// ToGoalResponse maps a goal entity to its API shape
func ToGoalResponse(goal *entity.SavingsGoal) GoalResponse {
	resp := GoalResponse{
		ID:            goal.ID,
		WalletID:      goal.WalletID,
		Name:          goal.Name,
		CurrentAmount: entity.DecimalFromCents(goal.CurrentAmount),
		IsCompleted:   goal.IsCompleted,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
	if goal.TargetAmount != nil {
		target := entity.DecimalFromCents(*goal.TargetAmount)
		resp.TargetAmount = &target
	}
	if goal.Wallet != nil {
		wallet := ToWalletResponse(goal.Wallet)
		resp.Wallet = &wallet
	}
	if len(goal.Entries) > 0 {
		resp.Entries = ToEntryResponses(goal.Entries)
	}
	return resp
}

// ToGoalResponses maps a goal slice
func ToGoalResponses(goals []*entity.SavingsGoal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, ToGoalResponse(g))
	}
	return out
}

// ToSummaryResponse maps the dashboard aggregate to its API shape
func ToSummaryResponse(summary *entity.SavingsSummary) SummaryResponse {
	return SummaryResponse{
		TotalSaved:     entity.DecimalFromCents(summary.TotalSaved),
		TotalTarget:    entity.DecimalFromCents(summary.TotalTarget),
		ActiveGoals:    summary.ActiveGoals,
		CompletedGoals: summary.CompletedGoals,
		GoalsCount:     summary.GoalsCount,
	}
}
