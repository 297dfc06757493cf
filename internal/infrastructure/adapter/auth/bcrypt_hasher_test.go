package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	// MinCost keeps the test fast; production uses the configured cost
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret-password", hash)

	assert.True(t, hasher.Compare("secret-password", hash))
	assert.False(t, hasher.Compare("wrong-password", hash))
	assert.False(t, hasher.Compare("secret-password", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_UniqueSalts(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	second, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_CostClamping(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default
	hasher := NewBcryptHasher(-1)
	hash, err := hasher.Hash("secret-password")

	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
