package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/salapeso/savings-api/internal/domain/error"
)

func TestNewCredentialsUser(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := fixedClock(fixedTime)

	t.Run("creates unverified account with normalized email", func(t *testing.T) {
		user, err := NewCredentialsUser("u1", "  Juan@Example.COM ", "hash", "Juan", tp)

		assert.NoError(t, err)
		assert.Equal(t, "juan@example.com", user.Email)
		assert.Equal(t, ProviderCredentials, user.Provider)
		assert.False(t, user.EmailVerified)
		assert.True(t, user.HasPassword())
	})

	t.Run("rejects missing email or hash", func(t *testing.T) {
		_, err := NewCredentialsUser("u1", "", "hash", "Juan", tp)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = NewCredentialsUser("u1", "juan@example.com", "", "Juan", tp)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestNewGoogleUser(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := fixedClock(fixedTime)

	user, err := NewGoogleUser("u1", "Maria@Example.com", "Maria", "pic.png", "google-123", tp)

	assert.NoError(t, err)
	assert.Equal(t, "maria@example.com", user.Email)
	assert.Equal(t, ProviderGoogle, user.Provider)
	assert.Equal(t, "google-123", user.ProviderAccountID)
	assert.True(t, user.EmailVerified, "Google accounts arrive verified")
	assert.False(t, user.HasPassword())
}

func TestUser_MarkVerified(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := fixedClock(fixedTime)

	user, _ := NewCredentialsUser("u1", "juan@example.com", "hash", "Juan", tp)
	user.MarkVerified(tp)

	assert.True(t, user.EmailVerified)
}

func TestUser_SyncGoogleProfile(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := fixedClock(fixedTime)

	t.Run("backfills empty fields only", func(t *testing.T) {
		user, _ := NewCredentialsUser("u1", "juan@example.com", "hash", "Juan", tp)

		user.SyncGoogleProfile("Google Juan", "pic.png", "google-123", tp)

		assert.Equal(t, "Juan", user.Name, "existing name is kept")
		assert.Equal(t, "pic.png", user.Image)
		assert.Equal(t, "google-123", user.ProviderAccountID)
		assert.Equal(t, ProviderCredentials, user.Provider, "existing provider is kept")
	})

	t.Run("fills everything on a bare account", func(t *testing.T) {
		user := &User{ID: "u1", Email: "juan@example.com"}

		user.SyncGoogleProfile("Juan", "pic.png", "google-123", tp)

		assert.Equal(t, "Juan", user.Name)
		assert.Equal(t, ProviderGoogle, user.Provider)
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "juan@example.com", NormalizeEmail("  JUAN@Example.Com  "))
	assert.Equal(t, "", NormalizeEmail("   "))
}
