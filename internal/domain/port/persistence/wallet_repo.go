package persistence

import (
	"context"

	"github.com/salapeso/savings-api/internal/domain/entity"
)

// WalletRepository defines read access to the shared wallet catalog.
// The catalog is seeded by migration; Upsert exists only for seeding.
type WalletRepository interface {
	// ListActive returns active wallets ordered by slug
	ListActive(ctx context.Context) ([]*entity.Wallet, error)

	// GetByID retrieves one wallet definition
	GetByID(ctx context.Context, id string) (*entity.Wallet, error)

	// Upsert creates or refreshes a catalog entry, keyed by slug
	Upsert(ctx context.Context, wallet *entity.Wallet) error
}
