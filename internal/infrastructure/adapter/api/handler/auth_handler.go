package handler

import (
	"errors"
	"net/http"

	"github.com/salapeso/savings-api/internal/domain/entity"
	domainerr "github.com/salapeso/savings-api/internal/domain/error"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
	usecaseport "github.com/salapeso/savings-api/internal/domain/port/usecase"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/api/dto"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles account and token lifecycle HTTP requests
type AuthHandler struct {
	authService usecaseport.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService usecaseport.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), usecaseport.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.SignupResponse{
		Email:                result.Email,
		RequiresVerification: result.RequiresVerification,
	}))
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domainerr.ErrEmailNotVerified) {
			c.JSON(http.StatusForbidden, dto.UnverifiedLoginResponse{
				Success:              false,
				Error:                err.Error(),
				Code:                 domainerr.ErrorCode(err),
				RequiresVerification: true,
				Email:                entity.NormalizeEmail(req.Email),
			})
			return
		}
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.AuthResponse{
		User:  dto.ToUserResponse(result.User),
		Token: result.Token,
	}))
}

// GoogleSignIn handles POST /auth/google
func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	var req dto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.authService.GoogleSignIn(c.Request.Context(), req.Credential)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.AuthResponse{
		User:  dto.ToUserResponse(result.User),
		Token: result.Token,
	}))
}

// VerifyEmail handles GET /auth/verify-email?token=
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		respondBadRequest(c, "Missing required query parameter: token")
		return
	}

	if err := h.authService.VerifyEmail(c.Request.Context(), token); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Email verified"))
}

// ResendVerification handles POST /auth/resend-verification
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req dto.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	if err := h.authService.ResendVerification(c.Request.Context(), req.Email); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Verification email sent"))
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(user)))
}

// ForgotPassword handles POST /auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	token, err := h.authService.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ForgotPasswordResponse{Token: token}))
}

// ResendResetCode handles POST /auth/resend-reset-code
func (h *AuthHandler) ResendResetCode(c *gin.Context) {
	var req dto.ResendResetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	if err := h.authService.ResendResetCode(c.Request.Context(), req.Token); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Reset code sent"))
}

// VerifyResetCode handles POST /auth/verify-reset-code
func (h *AuthHandler) VerifyResetCode(c *gin.Context) {
	var req dto.VerifyResetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	if err := h.authService.VerifyResetCode(c.Request.Context(), req.Token, req.Code); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Code verified"))
}

// ResetPassword handles POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.Code, req.NewPassword); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Password reset"))
}

// ChangePassword handles POST /auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), middleware.UserID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Password changed"))
}
