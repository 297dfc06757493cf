package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/salapeso/savings-api/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeUser represents the user entity
	EntityTypeUser EntityType = "user"
	// EntityTypeGoal represents the savings goal entity
	EntityTypeGoal EntityType = "goal"
	// EntityTypeEntry represents the ledger entry entity
	EntityTypeEntry EntityType = "entry"
	// EntityTypeWallet represents the wallet entity
	EntityTypeWallet EntityType = "wallet"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Duplicate key errors
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		if strings.Contains(errMsg, "email") {
			return domainErr.ErrDuplicateEmail
		}
		return domainErr.ErrValidation

	// Constraint violations
	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint"):
		return domainErr.ErrValidation

	// Connection issues
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return domainErr.ErrDatabaseConnection

	// Timeout errors
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return domainErr.ErrInternalServer
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeUser:
			return domainErr.ErrUserNotFound
		case EntityTypeGoal:
			return domainErr.ErrGoalNotFound
		case EntityTypeEntry:
			return domainErr.ErrEntryNotFound
		case EntityTypeWallet:
			return domainErr.ErrWalletNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}
