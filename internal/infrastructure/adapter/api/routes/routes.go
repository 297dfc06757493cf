package routes

import (
	"net/http"

	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/api/handler"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	savingsHandler *handler.SavingsHandler,
	supportHandler *handler.SupportHandler,
	tokens coreport.SessionTokens,
	logger coreport.Logger,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.Auth(tokens, logger)

	// Auth routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/google", authHandler.GoogleSignIn)
		authRoutes.GET("/verify-email", authHandler.VerifyEmail)
		authRoutes.POST("/resend-verification", authHandler.ResendVerification)
		authRoutes.GET("/me", requireAuth, authHandler.Me)
		authRoutes.POST("/forgot-password", authHandler.ForgotPassword)
		authRoutes.POST("/resend-reset-code", authHandler.ResendResetCode)
		authRoutes.POST("/verify-reset-code", authHandler.VerifyResetCode)
		authRoutes.POST("/reset-password", authHandler.ResetPassword)
		authRoutes.POST("/change-password", requireAuth, authHandler.ChangePassword)
	}

	// Savings routes; the wallet catalog is public, everything else is scoped
	// to the authenticated user
	savingsRoutes := router.Group("/savings")
	{
		savingsRoutes.GET("/wallets", savingsHandler.ListWallets)
		savingsRoutes.GET("/goals", requireAuth, savingsHandler.ListGoals)
		savingsRoutes.POST("/goals", requireAuth, savingsHandler.CreateGoal)
		savingsRoutes.GET("/goals/:goalId", requireAuth, savingsHandler.GetGoal)
		savingsRoutes.PATCH("/goals/:goalId", requireAuth, savingsHandler.EditGoal)
		savingsRoutes.DELETE("/goals/:goalId", requireAuth, savingsHandler.DeleteGoal)
		savingsRoutes.POST("/goals/:goalId/entries", requireAuth, savingsHandler.AddEntry)
		savingsRoutes.GET("/transactions", requireAuth, savingsHandler.ListTransactions)
		savingsRoutes.GET("/summary", requireAuth, savingsHandler.Summary)
	}

	// Support routes; status works anonymously, toggling needs an account
	supportRoutes := router.Group("/support")
	{
		supportRoutes.GET("", middleware.OptionalAuth(tokens), supportHandler.Status)
		supportRoutes.POST("", requireAuth, supportHandler.Toggle)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
