package entity

import (
	"strings"
	"time"

	errs "github.com/salapeso/savings-api/internal/domain/error"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
)

// AuthProvider discriminates how an account authenticates
type AuthProvider string

// Auth providers
const (
	ProviderCredentials AuthProvider = "credentials"
	ProviderGoogle      AuthProvider = "google"
)

// User represents an account. PasswordHash is empty for accounts that only
// ever signed in through Google; such accounts cannot use the password flows.
type User struct {
	ID                string
	Email             string
	PasswordHash      string
	Name              string
	Image             string
	Provider          AuthProvider
	ProviderAccountID string
	EmailVerified     bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewCredentialsUser creates an unverified password-based account
func NewCredentialsUser(id, email, passwordHash, name string, timeProvider coreport.TimeProvider) (*User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, errs.ErrValidation
	}
	if passwordHash == "" {
		return nil, errs.ErrValidation
	}

	now := timeProvider.Now()
	return &User{
		ID:            id,
		Email:         email,
		PasswordHash:  passwordHash,
		Name:          name,
		Provider:      ProviderCredentials,
		EmailVerified: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// NewGoogleUser creates an externally-authenticated account. Email is
// considered verified because Google already verified it.
func NewGoogleUser(id, email, name, image, accountID string, timeProvider coreport.TimeProvider) (*User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, errs.ErrValidation
	}

	now := timeProvider.Now()
	return &User{
		ID:                id,
		Email:             email,
		Name:              name,
		Image:             image,
		Provider:          ProviderGoogle,
		ProviderAccountID: accountID,
		EmailVerified:     true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// HasPassword reports whether password-based flows apply to this account
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// MarkVerified transitions the account to verified. The transition is one-way.
func (u *User) MarkVerified(timeProvider coreport.TimeProvider) {
	u.EmailVerified = true
	u.UpdatedAt = timeProvider.Now()
}

// SetPasswordHash stores a new password hash
func (u *User) SetPasswordHash(hash string, timeProvider coreport.TimeProvider) {
	u.PasswordHash = hash
	u.UpdatedAt = timeProvider.Now()
}

// SyncGoogleProfile backfills profile fields from Google without overwriting
// anything the user already has
func (u *User) SyncGoogleProfile(name, image, accountID string, timeProvider coreport.TimeProvider) {
	if u.Name == "" {
		u.Name = name
	}
	if u.Image == "" {
		u.Image = image
	}
	if u.Provider == "" {
		u.Provider = ProviderGoogle
	}
	if u.ProviderAccountID == "" {
		u.ProviderAccountID = accountID
	}
	u.UpdatedAt = timeProvider.Now()
}

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
