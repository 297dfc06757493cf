package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/salapeso/savings-api/internal/domain/entity"
	domainerr "github.com/salapeso/savings-api/internal/domain/error"
	usecaseport "github.com/salapeso/savings-api/internal/domain/port/usecase"
	mockcore "github.com/salapeso/savings-api/mocks/port/core"
	usecasemocks "github.com/salapeso/savings-api/mocks/port/usecase"
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

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("name is optional", func(t *testing.T) {
		authService := usecasemocks.NewMockAuthUseCase(t)
		var input usecaseport.SignupInput
		authService.On("Signup", mock.Anything, mock.AnythingOfType("usecase.SignupInput")).
			Run(func(args mock.Arguments) {
				input = args.Get(1).(usecaseport.SignupInput)
			}).
			Return(&usecaseport.SignupResult{Email: "juan@example.com", RequiresVerification: true}, nil)

		router := gin.New()
		router.POST("/auth/signup", NewAuthHandler(authService, relaxedLogger(t)).Signup)

		recorder := postJSON(router, "/auth/signup",
			`{"email":"juan@example.com","password":"secret123"}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, "", input.Name)
		assert.Contains(t, recorder.Body.String(), `"requiresVerification":true`)
	})

	t.Run("missing email is still rejected", func(t *testing.T) {
		authService := usecasemocks.NewMockAuthUseCase(t)

		router := gin.New()
		router.POST("/auth/signup", NewAuthHandler(authService, relaxedLogger(t)).Signup)

		recorder := postJSON(router, "/auth/signup", `{"password":"secret123"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		authService.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("successful login returns the user and a token", func(t *testing.T) {
		authService := usecasemocks.NewMockAuthUseCase(t)
		user := &entity.User{ID: "user-1", Email: "juan@example.com", Name: "Juan", Provider: entity.ProviderCredentials, EmailVerified: true}
		authService.On("Login", mock.Anything, "juan@example.com", "secret123").
			Return(&usecaseport.AuthResult{User: user, Token: "signed-jwt"}, nil)

		router := gin.New()
		router.POST("/auth/login", NewAuthHandler(authService, relaxedLogger(t)).Login)

		recorder := postJSON(router, "/auth/login",
			`{"email":"juan@example.com","password":"secret123"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"token":"signed-jwt"`)
	})

	t.Run("unverified account gets the verification flag", func(t *testing.T) {
		authService := usecasemocks.NewMockAuthUseCase(t)
		authService.On("Login", mock.Anything, "Juan@Example.com", "secret123").
			Return(nil, domainerr.ErrEmailNotVerified)

		router := gin.New()
		router.POST("/auth/login", NewAuthHandler(authService, relaxedLogger(t)).Login)

		recorder := postJSON(router, "/auth/login",
			`{"email":"Juan@Example.com","password":"secret123"}`)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		body := recorder.Body.String()
		assert.Contains(t, body, `"success":false`)
		assert.Contains(t, body, `"requiresVerification":true`)
		assert.Contains(t, body, `"email":"juan@example.com"`)
		assert.Contains(t, body, `"code":4030`)
	})

	t.Run("wrong password stays a plain 401", func(t *testing.T) {
		authService := usecasemocks.NewMockAuthUseCase(t)
		authService.On("Login", mock.Anything, "juan@example.com", "wrong").
			Return(nil, domainerr.ErrInvalidCredentials)

		router := gin.New()
		router.POST("/auth/login", NewAuthHandler(authService, relaxedLogger(t)).Login)

		recorder := postJSON(router, "/auth/login",
			`{"email":"juan@example.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "requiresVerification")
	})
}
