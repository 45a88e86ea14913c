package usecase

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateWalletInput carries the fields of a wallet creation request
type CreateWalletInput struct {
	UserID   uint64
	CryptoID uint64
	Balance  decimal.Decimal
}

// WalletUseCase defines operations on crypto wallets
type WalletUseCase interface {
	ListWallets(ctx context.Context) ([]*entity.Wallet, error)
	GetWallet(ctx context.Context, walletID uint64) (*entity.Wallet, error)

	// CreateWallet returns ErrUserNotFound or ErrCryptocurrencyNotFound for dangling references
	CreateWallet(ctx context.Context, input CreateWalletInput) (*entity.Wallet, error)

	// GetWalletTransactions lists transactions of the wallet's asset that involve its owner
	GetWalletTransactions(ctx context.Context, walletID uint64) ([]*entity.Transaction, error)
}
