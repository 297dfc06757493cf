package usecase

import (
	"context"

	"github.com/salapeso/savings-api/internal/domain/entity"
)

// SignupInput carries the fields for creating a credentials account
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// SignupResult reports a successful signup. No session token is issued:
// the account must verify its email first.
type SignupResult struct {
	Email                string
	RequiresVerification bool
}

// AuthResult is a successful login: the user plus a signed session token
type AuthResult struct {
	User  *entity.User
	Token string
}

// AuthUseCase defines the account and token lifecycle operations
type AuthUseCase interface {
	// Signup creates an unverified account and emails a verification link
	Signup(ctx context.Context, input SignupInput) (*SignupResult, error)

	// Login checks credentials and issues a session token. The password is
	// verified before the email-verification gate so a guessing attacker
	// learns nothing about verification status.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// GoogleSignIn resolves a Google credential, creating or syncing the
	// account, and issues a session token
	GoogleSignIn(ctx context.Context, credential string) (*AuthResult, error)

	// VerifyEmail consumes a verification token, flipping the account to
	// verified. The transition is one-way.
	VerifyEmail(ctx context.Context, token string) error

	// ResendVerification reissues the verification token. Unknown emails
	// get a silent success so the endpoint cannot enumerate accounts.
	ResendVerification(ctx context.Context, email string) error

	// Me returns the authenticated user's profile
	Me(ctx context.Context, userID string) (*entity.User, error)

	// ForgotPassword starts a reset: issues a token+code pair and emails the
	// code. Always returns a token; for unknown or passwordless accounts it
	// is a decoy, so the response shape never reveals account existence.
	ForgotPassword(ctx context.Context, email string) (token string, err error)

	// ResendResetCode rotates the code on an existing reset token
	ResendResetCode(ctx context.Context, token string) error

	// VerifyResetCode checks a token+code pair without consuming it
	VerifyResetCode(ctx context.Context, token, code string) error

	// ResetPassword consumes a valid token+code pair and stores the new
	// password hash. All reset tokens for the email are purged afterwards.
	ResetPassword(ctx context.Context, token, code, newPassword string) error

	// ChangePassword verifies the current password and stores a new hash
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
