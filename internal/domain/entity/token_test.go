package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/salapeso/savings-api/internal/domain/error"
)

func TestEmailVerificationToken(t *testing.T) {
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid within TTL", func(t *testing.T) {
		tp := fixedClock(issuedAt)
		token, err := NewEmailVerificationToken("t1", "Juan@Example.com", "abc123", 24*time.Hour, tp)

		assert.NoError(t, err)
		assert.Equal(t, "juan@example.com", token.Email)
		assert.Equal(t, issuedAt.Add(24*time.Hour), token.ExpiresAt)
		assert.NoError(t, token.Validate(tp))
	})

	t.Run("expired after TTL", func(t *testing.T) {
		token, err := NewEmailVerificationToken("t1", "juan@example.com", "abc123", 24*time.Hour, fixedClock(issuedAt))
		assert.NoError(t, err)

		later := fixedClock(issuedAt.Add(24*time.Hour + time.Second))
		assert.ErrorIs(t, token.Validate(later), errs.ErrTokenExpired)
	})

	t.Run("used token is rejected before expiry check", func(t *testing.T) {
		tp := fixedClock(issuedAt)
		token, _ := NewEmailVerificationToken("t1", "juan@example.com", "abc123", 24*time.Hour, tp)
		token.Used = true

		assert.ErrorIs(t, token.Validate(tp), errs.ErrTokenUsed)
	})

	t.Run("rejects blank fields", func(t *testing.T) {
		tp := fixedClock(issuedAt)
		_, err := NewEmailVerificationToken("t1", "", "abc123", time.Hour, tp)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = NewEmailVerificationToken("t1", "juan@example.com", "", time.Hour, tp)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestPasswordResetToken(t *testing.T) {
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("code must match", func(t *testing.T) {
		tp := fixedClock(issuedAt)
		token, err := NewPasswordResetToken("t1", "juan@example.com", "tok", "123456", 15*time.Minute, tp)

		assert.NoError(t, err)
		assert.NoError(t, token.ValidateCode("123456", tp))
		assert.ErrorIs(t, token.ValidateCode("654321", tp), errs.ErrResetCodeInvalid)
	})

	t.Run("expires after TTL", func(t *testing.T) {
		token, _ := NewPasswordResetToken("t1", "juan@example.com", "tok", "123456", 15*time.Minute, fixedClock(issuedAt))

		later := fixedClock(issuedAt.Add(16 * time.Minute))
		assert.ErrorIs(t, token.ValidateCode("123456", later), errs.ErrResetCodeInvalid)
	})

	t.Run("single use", func(t *testing.T) {
		tp := fixedClock(issuedAt)
		token, _ := NewPasswordResetToken("t1", "juan@example.com", "tok", "123456", 15*time.Minute, tp)

		token.MarkUsed()

		assert.ErrorIs(t, token.ValidateCode("123456", tp), errs.ErrResetCodeInvalid)
	})

	t.Run("rotate replaces code and extends expiry", func(t *testing.T) {
		token, _ := NewPasswordResetToken("t1", "juan@example.com", "tok", "123456", 15*time.Minute, fixedClock(issuedAt))

		later := fixedClock(issuedAt.Add(10 * time.Minute))
		token.Rotate("999999", 15*time.Minute, later)

		assert.Equal(t, "tok", token.Token, "token value stays stable across rotation")
		assert.ErrorIs(t, token.ValidateCode("123456", later), errs.ErrResetCodeInvalid)
		assert.NoError(t, token.ValidateCode("999999", later))
		assert.Equal(t, issuedAt.Add(25*time.Minute), token.ExpiresAt)
	})
}
