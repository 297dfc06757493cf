package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/salapeso/savings-api/internal/domain/error"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// httpStatus maps a domain error to its HTTP status code
func httpStatus(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrEmailNotVerified):
		return http.StatusForbidden
	case domainerr.IsTokenError(err),
		errors.Is(err, domainerr.ErrResetCodeInvalid),
		errors.Is(err, domainerr.ErrValidation),
		errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrAmountOverflow),
		errors.Is(err, domainerr.ErrDuplicateEmail),
		errors.Is(err, domainerr.ErrPasswordlessAccount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a domain error in the response envelope. Internal
// errors are logged and masked; client errors pass their message through.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := httpStatus(err)

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
		c.JSON(status, dto.Fail(domainerr.ErrorCode(err), "Internal server error"))
		return
	}

	c.JSON(status, dto.Fail(domainerr.ErrorCode(err), err.Error()))
}

// respondBadRequest writes a request-parsing failure
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.Fail(domainerr.CodeValidation, message))
}
