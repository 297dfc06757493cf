package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domainerr "github.com/salapeso/savings-api/internal/domain/error"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
	mockcore "github.com/salapeso/savings-api/mocks/port/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func relaxedLogger(t *testing.T) *mockcore.MockLogger {
	logger := mockcore.NewMockLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func authRouter(tokens *mockcore.MockSessionTokens, logger *mockcore.MockLogger) *gin.Engine {
	router := gin.New()
	router.GET("/protected", Auth(tokens, logger), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": UserID(c), "email": c.GetString(ContextEmail)})
	})
	router.GET("/open", OptionalAuth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": UserID(c)})
	})
	return router
}

func TestAuth(t *testing.T) {
	t.Run("valid bearer token sets identity on the context", func(t *testing.T) {
		tokens := mockcore.NewMockSessionTokens(t)
		tokens.On("Parse", "good-token").
			Return(&coreport.SessionClaims{UserID: "user-1", Email: "juan@example.com"}, nil)

		router := authRouter(tokens, relaxedLogger(t))
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer good-token")

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"userID":"user-1"`)
		assert.Contains(t, recorder.Body.String(), `"email":"juan@example.com"`)
	})

	t.Run("missing header is rejected with the error envelope", func(t *testing.T) {
		tokens := mockcore.NewMockSessionTokens(t)

		router := authRouter(tokens, relaxedLogger(t))
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/protected", nil)

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"success":false`)
		assert.Contains(t, recorder.Body.String(), `"code":4011`)
		tokens.AssertNotCalled(t, "Parse", mock.Anything)
	})

	t.Run("header without bearer prefix is rejected", func(t *testing.T) {
		tokens := mockcore.NewMockSessionTokens(t)

		router := authRouter(tokens, relaxedLogger(t))
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		tokens.AssertNotCalled(t, "Parse", mock.Anything)
	})

	t.Run("unparseable token is rejected", func(t *testing.T) {
		tokens := mockcore.NewMockSessionTokens(t)
		tokens.On("Parse", "bad-token").Return(nil, domainerr.ErrTokenInvalid)

		router := authRouter(tokens, relaxedLogger(t))
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer bad-token")

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"code":4011`)
	})
}

func TestOptionalAuth(t *testing.T) {
	t.Run("anonymous request passes through without identity", func(t *testing.T) {
		tokens := mockcore.NewMockSessionTokens(t)

		router := authRouter(tokens, relaxedLogger(t))
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/open", nil)

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"userID":""`)
	})

	t.Run("invalid token is treated as anonymous", func(t *testing.T) {
		tokens := mockcore.NewMockSessionTokens(t)
		tokens.On("Parse", "stale").Return(nil, errors.New("expired"))

		router := authRouter(tokens, relaxedLogger(t))
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/open", nil)
		request.Header.Set("Authorization", "Bearer stale")

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"userID":""`)
	})

	t.Run("valid token resolves the caller", func(t *testing.T) {
		tokens := mockcore.NewMockSessionTokens(t)
		tokens.On("Parse", "good").
			Return(&coreport.SessionClaims{UserID: "user-7", Email: "m@example.com"}, nil)

		router := authRouter(tokens, relaxedLogger(t))
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/open", nil)
		request.Header.Set("Authorization", "Bearer good")

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"userID":"user-7"`)
	})
}
