package model

import (
	"time"
)

// Wallet represents the database model for the wallet catalog
type Wallet struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Slug      string    `gorm:"uniqueIndex;not null;size:64"`
	Logo      string    `gorm:"size:255"`
	Type      string    `gorm:"not null;size:50"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}
