package model

import (
	"time"
)

// EmailVerificationToken represents the database model for verification tokens
type EmailVerificationToken struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Email     string    `gorm:"not null;index;size:255"`
	Token     string    `gorm:"uniqueIndex;not null;size:128"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for EmailVerificationToken
func (EmailVerificationToken) TableName() string {
	return "email_verification_tokens"
}

// PasswordResetToken represents the database model for reset tokens
type PasswordResetToken struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Email     string    `gorm:"not null;index;size:255"`
	Token     string    `gorm:"uniqueIndex;not null;size:128"`
	Code      string    `gorm:"not null;size:12"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for PasswordResetToken
func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}
