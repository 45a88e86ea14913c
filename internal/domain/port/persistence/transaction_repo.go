package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
)

// TransactionRepository defines the methods to interact with transaction records.
// Transactions are append-only; there is no update method.
type TransactionRepository interface {
	// List returns transactions matching the filter with both user refs and the crypto ref,
	// newest first. A UserID filter matches the sender or the receiver.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	// GetByID retrieves a transaction with its refs
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction has the given ID
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// Create inserts a new transaction record
	Create(ctx context.Context, tx *entity.Transaction) error

	// VolumeStats aggregates amounts of a cryptocurrency created at or after since
	VolumeStats(ctx context.Context, cryptoID uint64, since time.Time) (entity.VolumeStats, error)

	// CountByCrypto returns the number of transactions for a cryptocurrency
	CountByCrypto(ctx context.Context, cryptoID uint64) (int64, error)

	// CountByUser returns the number of transactions a user sent or received
	CountByUser(ctx context.Context, userID uint64) (int64, error)

	// ListForWallet returns transactions of a cryptocurrency where the user is sender or receiver
	ListForWallet(ctx context.Context, userID, cryptoID uint64) ([]*entity.Transaction, error)
}
