package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// RandomSource implements core.RandomSource backed by crypto/rand
type RandomSource struct{}

// NewRandomSource creates a new RandomSource
func NewRandomSource() *RandomSource {
	return &RandomSource{}
}

// NewID returns a unique identifier for a new record
func (s *RandomSource) NewID() string {
	return uuid.NewString()
}

// NewToken returns a 48-character URL-safe single-use token value
func (s *RandomSource) NewToken() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process has no usable entropy
		panic("random source unavailable: " + err.Error())
	}
	return hex.EncodeToString(buf)
}

// NewResetCode returns a 6-digit numeric code suitable for typing back
func (s *RandomSource) NewResetCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		panic("random source unavailable: " + err.Error())
	}
	return fmt.Sprintf("%06d", n.Int64())
}
