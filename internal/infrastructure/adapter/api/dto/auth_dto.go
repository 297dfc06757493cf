package dto

import (
	"github.com/salapeso/savings-api/internal/domain/entity"
)

// SignupRequest represents the API request for creating an account.
// The name is optional; accounts without one fall back to a default.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// LoginRequest represents the API request for a credentials login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleSignInRequest carries a Google access credential
type GoogleSignInRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// ResendVerificationRequest asks for a fresh verification email
type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPasswordRequest starts a password reset
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResendResetCodeRequest rotates the code on an existing reset token
type ResendResetCodeRequest struct {
	Token string `json:"token" binding:"required"`
}

// VerifyResetCodeRequest checks a token+code pair
type VerifyResetCodeRequest struct {
	Token string `json:"token" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// ResetPasswordRequest consumes a token+code pair and sets a new password
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ChangePasswordRequest replaces the password of a logged-in account
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// UserResponse represents the API shape of an account
type UserResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Image         string `json:"image,omitempty"`
	Provider      string `json:"provider"`
	EmailVerified bool   `json:"emailVerified"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// SignupResponse reports a successful signup
type SignupResponse struct {
	Email                string `json:"email"`
	RequiresVerification bool   `json:"requiresVerification"`
}

// UnverifiedLoginResponse is the 403 login body. The flag routes the
// client into the verification flow instead of the generic error path.
type UnverifiedLoginResponse struct {
	Success              bool   `json:"success"`
	Error                string `json:"error"`
	Code                 int    `json:"code"`
	RequiresVerification bool   `json:"requiresVerification"`
	Email                string `json:"email"`
}

// ForgotPasswordResponse carries the reset token the client holds through
// the code-entry flow
type ForgotPasswordResponse struct {
	Token string `json:"token"`
}

// ToUserResponse maps a user entity to its API shape
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Image:         user.Image,
		Provider:      string(user.Provider),
		EmailVerified: user.EmailVerified,
	}
}
