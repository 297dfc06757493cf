package database

import (
	"context"
	"fmt"
	"strings"

	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
	"github.com/salapeso/savings-api/internal/domain/port/persistence"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) persistence.UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction", nil)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Store transaction in context
	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error

	// A rollback after commit is a no-op, not a failure. Use cases defer
	// Rollback unconditionally so this path is hit on every success.
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// Goals returns a goal repository bound to the current transaction
func (u *UnitOfWork) Goals(ctx context.Context) persistence.GoalRepository {
	return repository.NewGoalRepository(u.getDbFromContext(ctx), u.logger)
}

// Entries returns an entry repository bound to the current transaction
func (u *UnitOfWork) Entries(ctx context.Context) persistence.EntryRepository {
	return repository.NewEntryRepository(u.getDbFromContext(ctx), u.logger)
}

// Users returns a user repository bound to the current transaction
func (u *UnitOfWork) Users(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.logger)
}

// ResetTokens returns a reset-token repository bound to the current transaction
func (u *UnitOfWork) ResetTokens(ctx context.Context) persistence.ResetTokenRepository {
	return repository.NewResetTokenRepository(u.getDbFromContext(ctx), u.logger)
}

// VerificationTokens returns a verification-token repository bound to the current transaction
func (u *UnitOfWork) VerificationTokens(ctx context.Context) persistence.VerificationTokenRepository {
	return repository.NewVerificationTokenRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
