package model

import (
	"time"
)

// SavingsEntry represents the database model for ledger entries
type SavingsEntry struct {
	ID        string    `gorm:"primaryKey;size:36"`
	GoalID    string    `gorm:"not null;index;size:36"`
	Amount    int64     `gorm:"not null"` // signed cents, negative for withdrawals
	Note      string    `gorm:"size:512"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for SavingsEntry
func (SavingsEntry) TableName() string {
	return "savings_entries"
}
