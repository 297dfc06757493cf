package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements core.PasswordHasher with bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost. A cost outside
// bcrypt's valid range falls back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash produces a storable hash of the plaintext password
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether the plaintext matches the stored hash
func (h *BcryptHasher) Compare(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
