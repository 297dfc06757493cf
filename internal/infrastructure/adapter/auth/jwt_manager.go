package auth

import (
	"errors"
	"time"

	errs "github.com/salapeso/savings-api/internal/domain/error"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long a session token stays valid
const DefaultSessionTTL = 7 * 24 * time.Hour

// sessionClaims carries the registered claims plus the user identity
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// JWTManager implements core.SessionTokens with HS256 signed tokens
type JWTManager struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTManager creates a new JWTManager. A zero ttl falls back to the default.
func NewJWTManager(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) *JWTManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &JWTManager{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Issue signs a token for the given user
func (m *JWTManager) Issue(userID, email string) (string, error) {
	now := m.timeProvider.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
		Email:  email,
	})

	return token.SignedString(m.secret)
}

// Parse validates a token and returns its claims
func (m *JWTManager) Parse(tokenString string) (*coreport.SessionClaims, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.ErrTokenExpired
		}
		return nil, errs.ErrTokenInvalid
	}

	if !token.Valid || claims.UserID == "" {
		return nil, errs.ErrTokenInvalid
	}

	return &coreport.SessionClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
	}, nil
}
