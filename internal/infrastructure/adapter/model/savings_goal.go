package model

import (
	"time"
)

// SavingsGoal represents the database model for savings goals
type SavingsGoal struct {
	ID            string    `gorm:"primaryKey;size:36"`
	UserID        string    `gorm:"not null;index;size:36"`
	WalletID      string    `gorm:"not null;size:64"`
	Name          string    `gorm:"not null;size:255"`
	TargetAmount  *int64    // in cents, nil when the goal has no target
	CurrentAmount int64     `gorm:"not null;default:0"` // in cents
	IsCompleted   bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`

	// Define relationships
	User    User           `gorm:"foreignKey:UserID;references:ID"`
	Wallet  Wallet         `gorm:"foreignKey:WalletID;references:ID"`
	Entries []SavingsEntry `gorm:"foreignKey:GoalID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for SavingsGoal
func (SavingsGoal) TableName() string {
	return "savings_goals"
}
