package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/salapeso/savings-api/internal/domain/error"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware
const (
	ContextUserID = "userID"
	ContextEmail  = "userEmail"
)

// Auth requires a valid bearer session token and stores the caller's
// identity on the request context
func Auth(tokens coreport.SessionTokens, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, tokens)
		if !ok {
			logger.Debug("Rejected unauthenticated request", map[string]any{
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(
				domainerr.ErrorCode(domainerr.ErrTokenInvalid), "Unauthorized"))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// OptionalAuth resolves the caller's identity when a valid token is present
// but lets anonymous requests through
func OptionalAuth(tokens coreport.SessionTokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c, tokens); ok {
			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextEmail, claims.Email)
		}
		c.Next()
	}
}

// UserID returns the authenticated user's ID, empty when anonymous
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func parseBearer(c *gin.Context, tokens coreport.SessionTokens) (*coreport.SessionClaims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, false
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, false
	}

	claims, err := tokens.Parse(token)
	if err != nil {
		return nil, false
	}
	return claims, true
}
