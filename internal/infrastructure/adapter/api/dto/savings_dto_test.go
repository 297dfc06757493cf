package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salapeso/savings-api/internal/domain/entity"
)

func TestToGoalResponse(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	target := int64(100000)

	goal := &entity.SavingsGoal{
		ID:            "goal-1",
		UserID:        "user-1",
		WalletID:      "wallet-1",
		Name:          "Emergency Fund",
		TargetAmount:  &target,
		CurrentAmount: 52550,
		IsCompleted:   false,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
		Wallet:        &entity.Wallet{ID: "wallet-1", Slug: "gcash", Logo: "/wallets/gcash.png", Type: entity.WalletTypeEWallet},
		Entries: []*entity.SavingsEntry{
			{ID: "e1", SavingsGoalID: "goal-1", Amount: 52550, Note: entity.NoteInitialBalance, CreatedAt: createdAt},
		},
	}

	resp := ToGoalResponse(goal)

	assert.Equal(t, "goal-1", resp.ID)
	assert.Equal(t, 525.50, resp.CurrentAmount)
	assert.Equal(t, 1000.0, *resp.TargetAmount)
	assert.Equal(t, "gcash", resp.Wallet.Slug)
	assert.Equal(t, "EWALLET", resp.Wallet.Type)
	assert.Len(t, resp.Entries, 1)
	assert.Equal(t, 525.50, resp.Entries[0].Amount)
}

func TestToGoalResponse_NoTarget(t *testing.T) {
	goal := &entity.SavingsGoal{ID: "goal-1", CurrentAmount: 100}

	resp := ToGoalResponse(goal)

	assert.Nil(t, resp.TargetAmount)
	assert.Nil(t, resp.Wallet)
	assert.Empty(t, resp.Entries)
}

func TestToEntryResponse(t *testing.T) {
	entry := &entity.SavingsEntry{
		ID:            "e1",
		SavingsGoalID: "goal-1",
		Amount:        -20000,
		Note:          "groceries",
	}

	resp := ToEntryResponse(entry)

	assert.Equal(t, "goal-1", resp.GoalID)
	assert.Equal(t, -200.0, resp.Amount)
	assert.Nil(t, resp.Goal)
}

func TestToEntryResponse_WithGoal(t *testing.T) {
	entry := &entity.SavingsEntry{
		ID:            "e1",
		SavingsGoalID: "goal-1",
		Amount:        5000,
		Goal:          &entity.SavingsGoal{ID: "goal-1", Name: "Trip", CurrentAmount: 5000},
	}

	resp := ToEntryResponse(entry)

	assert.NotNil(t, resp.Goal)
	assert.Equal(t, "Trip", resp.Goal.Name)
}

func TestToSummaryResponse(t *testing.T) {
	resp := ToSummaryResponse(&entity.SavingsSummary{
		TotalSaved:     62550,
		TotalTarget:    100000,
		ActiveGoals:    2,
		CompletedGoals: 1,
		GoalsCount:     3,
	})

	assert.Equal(t, 625.50, resp.TotalSaved)
	assert.Equal(t, 1000.0, resp.TotalTarget)
	assert.Equal(t, 3, resp.GoalsCount)
}

func TestToWalletResponses_PreservesOrder(t *testing.T) {
	wallets := []*entity.Wallet{
		{ID: "w1", Slug: "bdo", Type: entity.WalletTypeBank},
		{ID: "w2", Slug: "gcash", Type: entity.WalletTypeEWallet},
	}

	out := ToWalletResponses(wallets)

	assert.Len(t, out, 2)
	assert.Equal(t, "bdo", out[0].Slug)
	assert.Equal(t, "gcash", out[1].Slug)
}
