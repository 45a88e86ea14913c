package persistence

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
)

// WalletRepository defines the methods to interact with crypto wallets
type WalletRepository interface {
	// List returns every wallet with user and crypto refs, largest balance first
	List(ctx context.Context) ([]*entity.Wallet, error)

	// ListByUser returns the wallets of a user with crypto refs, largest balance first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Wallet, error)

	// GetByID retrieves a wallet with its refs
	//
	// Possible errors:
	// - ErrWalletNotFound: If no wallet has the given ID
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Wallet, error)

	// GetByUserAndCrypto retrieves the wallet of a user for one cryptocurrency
	//
	// Possible errors:
	// - ErrWalletNotFound: If the user holds no wallet for the cryptocurrency
	// - ErrDatabaseConnection: If database connection fails
	GetByUserAndCrypto(ctx context.Context, userID, cryptoID uint64) (*entity.Wallet, error)

	// Create inserts a new wallet
	//
	// Possible errors:
	// - ErrDuplicateWallet: If the (user, crypto) pair already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, wallet *entity.Wallet) error

	// TopHolders returns wallets of a cryptocurrency with user refs, largest balance first
	TopHolders(ctx context.Context, cryptoID uint64, limit int) ([]*entity.Wallet, error)

	// HolderStats counts holders and sums supply for a cryptocurrency
	HolderStats(ctx context.Context, cryptoID uint64) (entity.HolderStats, error)

	// CountByUser returns the number of wallets a user holds
	CountByUser(ctx context.Context, userID uint64) (int64, error)
}
