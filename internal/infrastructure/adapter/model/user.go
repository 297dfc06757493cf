package model

import (
	"time"
)

// User represents the database model for accounts
type User struct {
	ID                string    `gorm:"primaryKey;size:36"`
	Email             string    `gorm:"uniqueIndex;not null;size:255"`
	Name              string    `gorm:"not null;size:255"`
	PasswordHash      string    `gorm:"size:255"`
	Image             string    `gorm:"size:512"`
	Provider          string    `gorm:"not null;size:50"`
	ProviderAccountID string    `gorm:"size:255"`
	EmailVerified     bool      `gorm:"not null;default:false"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
