package core

// PasswordHasher abstracts password hashing so the domain never sees bcrypt
type PasswordHasher interface {
	// Hash produces a storable hash of the plaintext password
	Hash(password string) (string, error)
	// Compare reports whether the plaintext matches the stored hash
	Compare(password, hash string) bool
}

// SessionClaims is the payload carried by a session token
type SessionClaims struct {
	UserID string
	Email  string
}

// SessionTokens issues and validates signed session tokens. Tokens expire
// after a fixed horizon; there is no revocation list.
type SessionTokens interface {
	// Issue signs a token for the given user
	Issue(userID, email string) (string, error)
	// Parse validates a token and returns its claims
	Parse(token string) (*SessionClaims, error)
}

// RandomSource produces the random values the auth flows need
type RandomSource interface {
	// NewID returns a unique identifier for a new record
	NewID() string
	// NewToken returns a URL-safe single-use token value
	NewToken() string
	// NewResetCode returns a short numeric code suitable for typing back
	NewResetCode() string
}
