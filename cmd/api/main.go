package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	authUseCase "github.com/salapeso/savings-api/internal/domain/usecase/auth"
	savingsUseCase "github.com/salapeso/savings-api/internal/domain/usecase/savings"
	supportUseCase "github.com/salapeso/savings-api/internal/domain/usecase/support"

	"github.com/salapeso/savings-api/internal/domain/port/core"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/api/handler"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/api/routes"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/auth"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/database"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/database/migration"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/email"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/google"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/logger"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/repository"
	timeProvider "github.com/salapeso/savings-api/internal/infrastructure/adapter/time"
	"github.com/salapeso/savings-api/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == "production", cfg.Logger.Level)
	defer appLogger.Flush()

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay / time.Second),
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	walletRepo := repository.NewWalletRepository(dbManager.DB(), appLogger)
	goalRepo := repository.NewGoalRepository(dbManager.DB(), appLogger)
	entryRepo := repository.NewEntryRepository(dbManager.DB(), appLogger)
	verifTokenRepo := repository.NewVerificationTokenRepository(dbManager.DB(), appLogger)
	resetTokenRepo := repository.NewResetTokenRepository(dbManager.DB(), appLogger)
	supportRepo := repository.NewSupportRepository(dbManager.DB(), tp, appLogger)

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Core adapters
	random := auth.NewRandomSource()
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	sessions := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, tp)
	googleVerifier := google.NewVerifier(appLogger)

	emailConfig := email.Config{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUsername,
		Password: cfg.Email.SMTPPassword,
		From:     cfg.Email.From,
	}
	var emailSender core.EmailSender
	if emailConfig.Configured() {
		emailSender = email.NewSMTPSender(emailConfig, appLogger)
	} else {
		appLogger.Warn("SMTP not configured, email delivery disabled", nil)
		emailSender = email.NewNoopSender(appLogger)
	}

	// Seed the wallet catalog
	if err := migration.SeedWallets(context.Background(), walletRepo, random, tp, appLogger); err != nil {
		appLogger.Error("Failed to seed wallet catalog", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize use cases
	savingsService := savingsUseCase.NewService(uow, goalRepo, entryRepo, walletRepo, random, tp, appLogger)
	authService := authUseCase.NewService(
		userRepo,
		verifTokenRepo,
		resetTokenRepo,
		uow,
		hasher,
		sessions,
		googleVerifier,
		emailSender,
		random,
		tp,
		appLogger,
		authUseCase.Options{
			AppURL:          cfg.Email.AppURL,
			VerificationTTL: cfg.Auth.VerificationTTL,
			ResetTTL:        cfg.Auth.ResetTTL,
		},
	)
	supportService := supportUseCase.NewService(supportRepo, random, appLogger)

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	savingsHandler := handler.NewSavingsHandler(savingsService, appLogger)
	supportHandler := handler.NewSupportHandler(supportService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, authHandler, savingsHandler, supportHandler, sessions, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or SP_DB_HOST environment variable)")
	}

	if cfg.Database.Port == 0 {
		missingConfigs = append(missingConfigs, "database.port (or SP_DB_PORT environment variable)")
	}

	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or SP_DB_USERNAME environment variable)")
	}

	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or SP_DB_NAME environment variable)")
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Session tokens are useless without a signing secret
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or SP_JWT_SECRET environment variable)")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		if strings.ToLower(cfg.Database.SSLMode) != "require" &&
			strings.ToLower(cfg.Database.SSLMode) != "verify-ca" &&
			strings.ToLower(cfg.Database.SSLMode) != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
