package model

import (
	"time"
)

// SupportHeart represents the database model for support hearts
type SupportHeart struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"uniqueIndex;not null;size:36"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for SupportHeart
func (SupportHeart) TableName() string {
	return "support_hearts"
}
