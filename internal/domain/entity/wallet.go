package entity

import "time"

// WalletType categorizes a wallet catalog entry
type WalletType string

// Wallet types
const (
	WalletTypeEWallet WalletType = "EWALLET"
	WalletTypeBank    WalletType = "BANK"
	WalletTypeCash    WalletType = "CASH"
	WalletTypeOther   WalletType = "OTHER"
)

// Wallet is shared reference data identifying a bank, e-wallet or cash
// bucket. Wallets hold no balance themselves; goals reference them. The
// catalog is seeded once and never owned by any user.
type Wallet struct {
	ID        string
	Slug      string
	Logo      string
	Type      WalletType
	IsActive  bool
	CreatedAt time.Time
}
