package persistence

import (
	"context"

	"github.com/salapeso/savings-api/internal/domain/entity"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByEmail retrieves a user by normalized email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user
	Create(ctx context.Context, user *entity.User) error

	// Update persists changes to an existing user
	Update(ctx context.Context, user *entity.User) error
}
