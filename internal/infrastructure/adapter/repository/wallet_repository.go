package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/salapeso/savings-api/internal/domain/entity"
	errs "github.com/salapeso/savings-api/internal/domain/error"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
	"github.com/salapeso/savings-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WalletRepository implements persistence.WalletRepository using GORM
type WalletRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{db: db, logger: logger}
}

func walletModelToEntity(m *model.Wallet) *entity.Wallet {
	return &entity.Wallet{
		ID:        m.ID,
		Slug:      m.Slug,
		Logo:      m.Logo,
		Type:      entity.WalletType(m.Type),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

// ListActive returns active wallets ordered by slug
func (r *WalletRepository) ListActive(ctx context.Context) ([]*entity.Wallet, error) {
	var walletModels []model.Wallet
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("slug ASC").
		Find(&walletModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing wallets", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	wallets := make([]*entity.Wallet, 0, len(walletModels))
	for i := range walletModels {
		wallets = append(wallets, walletModelToEntity(&walletModels[i]))
	}
	return wallets, nil
}

// GetByID retrieves one wallet definition
func (r *WalletRepository) GetByID(ctx context.Context, id string) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).First(&walletModel, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrWalletNotFound
		}
		r.logger.Error("Database error when getting wallet", map[string]any{
			"wallet_id": id,
			"error":     result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return walletModelToEntity(&walletModel), nil
}

// Upsert creates or refreshes a catalog entry, keyed by slug
func (r *WalletRepository) Upsert(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.Wallet{
		ID:        wallet.ID,
		Slug:      wallet.Slug,
		Logo:      wallet.Logo,
		Type:      string(wallet.Type),
		IsActive:  wallet.IsActive,
		CreatedAt: wallet.CreatedAt,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"logo", "type", "is_active"}),
	}).Create(&walletModel)
	if result.Error != nil {
		r.logger.Error("Database error when upserting wallet", map[string]any{
			"slug":  wallet.Slug,
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}
