package migration

import (
	"context"

	"github.com/salapeso/savings-api/internal/domain/entity"
	coreport "github.com/salapeso/savings-api/internal/domain/port/core"
	"github.com/salapeso/savings-api/internal/domain/port/persistence"
)

type walletSeed struct {
	slug string
	logo string
	typ  entity.WalletType
}

// Wallet catalog shipped with the application. Slugs are stable
// identifiers the frontend maps to display names and assets.
var defaultWallets = []walletSeed{
	// E-Wallets
	{slug: "gcash", logo: "/wallets/gcash.png", typ: entity.WalletTypeEWallet},
	{slug: "maya", logo: "/wallets/maya.png", typ: entity.WalletTypeEWallet},
	{slug: "grabpay", logo: "/wallets/grabpay.png", typ: entity.WalletTypeEWallet},
	{slug: "shopeepay", logo: "/wallets/shopeepay.png", typ: entity.WalletTypeEWallet},
	{slug: "coins", logo: "/wallets/coins.png", typ: entity.WalletTypeEWallet},
	{slug: "paypal", logo: "/wallets/paypal.png", typ: entity.WalletTypeEWallet},

	// Banks
	{slug: "bpi", logo: "/wallets/bpi.png", typ: entity.WalletTypeBank},
	{slug: "bdo", logo: "/wallets/bdo.png", typ: entity.WalletTypeBank},
	{slug: "metrobank", logo: "/wallets/metrobank.png", typ: entity.WalletTypeBank},
	{slug: "landbank", logo: "/wallets/landbank.png", typ: entity.WalletTypeBank},
	{slug: "unionbank", logo: "/wallets/unionbank.png", typ: entity.WalletTypeBank},
	{slug: "chinabank", logo: "/wallets/chinabank.png", typ: entity.WalletTypeBank},
	{slug: "pnb", logo: "/wallets/pnb.png", typ: entity.WalletTypeBank},
	{slug: "securitybank", logo: "/wallets/securitybank.png", typ: entity.WalletTypeBank},
	{slug: "rcbc", logo: "/wallets/rcbc.png", typ: entity.WalletTypeBank},
	{slug: "eastwest", logo: "/wallets/eastwest.png", typ: entity.WalletTypeBank},
	{slug: "cimb", logo: "/wallets/cimb.png", typ: entity.WalletTypeBank},
	{slug: "ing", logo: "/wallets/ing.png", typ: entity.WalletTypeBank},
	{slug: "gotyme", logo: "/wallets/gotyme.png", typ: entity.WalletTypeBank},
	{slug: "tonik", logo: "/wallets/tonik.png", typ: entity.WalletTypeBank},
	{slug: "seabank", logo: "/wallets/seabank.png", typ: entity.WalletTypeBank},
	{slug: "maya-bank", logo: "/wallets/maya-bank.png", typ: entity.WalletTypeBank},

	// Cash
	{slug: "cash", logo: "/wallets/cash.png", typ: entity.WalletTypeCash},
	{slug: "piggy-bank", logo: "/wallets/piggy-bank.png", typ: entity.WalletTypeCash},

	// Other
	{slug: "other", logo: "/wallets/other.png", typ: entity.WalletTypeOther},
}

// SeedWallets upserts the wallet catalog. Existing rows keep their ID and
// creation time; logo and type are refreshed so catalog updates ship with
// deployments.
func SeedWallets(
	ctx context.Context,
	wallets persistence.WalletRepository,
	random coreport.RandomSource,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) error {
	logger.Info("Seeding wallet catalog", map[string]any{
		"wallets": len(defaultWallets),
	})

	for _, seed := range defaultWallets {
		wallet := &entity.Wallet{
			ID:        random.NewID(),
			Slug:      seed.slug,
			Logo:      seed.logo,
			Type:      seed.typ,
			IsActive:  true,
			CreatedAt: timeProvider.Now(),
		}
		if err := wallets.Upsert(ctx, wallet); err != nil {
			logger.Error("Failed to seed wallet", map[string]any{
				"slug":  seed.slug,
				"error": err.Error(),
			})
			return err
		}
	}

	logger.Info("Wallet catalog seeded", nil)
	return nil
}
