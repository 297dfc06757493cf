package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation         = 4001
	CodeInvalidAmount      = 4002
	CodeDuplicateEmail     = 4003
	CodeInvalidCredentials = 4010
	CodeTokenInvalid       = 4011
	CodeEmailNotVerified   = 4030
	CodeGoalNotFound       = 4040
	CodeUserNotFound       = 4041
	CodeWalletNotFound     = 4042
	CodeResetCodeInvalid   = 4050
	CodePasswordlessUser   = 4051

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrValidation is returned when a request body fails validation
	ErrValidation = errors.New("invalid request")

	// ErrInvalidAmount is returned when a monetary amount cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAmountOverflow is returned when an amount is too large to represent in cents
	ErrAmountOverflow = errors.New("amount is too large")

	// ErrDuplicateEmail is returned when signing up with an email that is taken
	ErrDuplicateEmail = errors.New("user already exists")

	// ErrInvalidCredentials is returned for an unknown email or a wrong password.
	// The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailNotVerified is returned on login when the password is correct
	// but the account has not completed email verification
	ErrEmailNotVerified = errors.New("email not verified")

	// ErrTokenInvalid is returned for a missing, malformed or unknown token
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired is returned when a token exists but is past its expiry
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenUsed is returned when a single-use token is presented twice
	ErrTokenUsed = errors.New("token has already been used")

	// ErrResetCodeInvalid is returned when a reset token+code pair does not
	// match an unused, unexpired reset token
	ErrResetCodeInvalid = errors.New("invalid or expired code")

	// ErrPasswordlessAccount is returned when a password operation is attempted
	// on an account that authenticates externally and has no password hash
	ErrPasswordlessAccount = errors.New("account has no password")

	// ErrGoalNotFound is returned when a goal does not exist or does not belong
	// to the caller. Ownership failures are reported identically to avoid
	// leaking the existence of other users' goals.
	ErrGoalNotFound = errors.New("savings goal not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrWalletNotFound is returned when the referenced wallet doesn't exist
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrEntryNotFound is returned when the requested entry doesn't exist
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when the database is unreachable
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrEmailDelivery is returned when an outbound email could not be sent
	ErrEmailDelivery = errors.New("failed to send email")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrAmountOverflow):
		return CodeInvalidAmount
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrTokenExpired), errors.Is(err, ErrTokenUsed):
		return CodeTokenInvalid
	case errors.Is(err, ErrEmailNotVerified):
		return CodeEmailNotVerified
	case errors.Is(err, ErrGoalNotFound):
		return CodeGoalNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrWalletNotFound):
		return CodeWalletNotFound
	case errors.Is(err, ErrResetCodeInvalid):
		return CodeResetCodeInvalid
	case errors.Is(err, ErrPasswordlessAccount):
		return CodePasswordlessUser
	default:
		return CodeInternalServer
	}
}

// GoalError carries context about a failed goal operation
type GoalError struct {
	GoalID string
	UserID string
	Op     string
	Err    error
}

// Error implements the error interface for GoalError
func (e *GoalError) Error() string {
	return fmt.Sprintf("goal operation %q failed for goal %s (user %s): %v",
		e.Op, e.GoalID, e.UserID, e.Err)
}

// Unwrap returns the underlying error
func (e *GoalError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *GoalError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "goal_error",
		"goal_id":    e.GoalID,
		"user_id":    e.UserID,
		"op":         e.Op,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewGoalError creates a detailed goal operation error
func NewGoalError(goalID, userID, op string, err error) error {
	return &GoalError{GoalID: goalID, UserID: userID, Op: op, Err: err}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrGoalNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrWalletNotFound) ||
		errors.Is(err, ErrEntryNotFound)
}

// IsAuthError checks if the error should surface as a 401
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrTokenInvalid)
}

// IsTokenError checks if the error concerns a one-time token's lifecycle
func IsTokenError(err error) bool {
	return errors.Is(err, ErrTokenInvalid) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenUsed)
}
