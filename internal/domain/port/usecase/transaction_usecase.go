package usecase

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateTransactionInput carries the fields of a transaction recording request
type CreateTransactionInput struct {
	FromUserID uint64
	ToUserID   uint64
	CryptoID   uint64
	Amount     decimal.Decimal
	TxType     string
}

// VolumeReport is the trailing volume of one cryptocurrency
type VolumeReport struct {
	Crypto entity.CryptoRef
	Stats  entity.VolumeStats
}

// TransactionUseCase defines operations on transaction records
type TransactionUseCase interface {
	// ListTransactions returns transactions matching the filter; a zero limit means the default
	ListTransactions(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	// GetTransaction returns one transaction with refs priced at read time
	GetTransaction(ctx context.Context, txID uint64) (*entity.Transaction, error)

	// CreateTransaction records a transaction after checking every reference exists
	CreateTransaction(ctx context.Context, input CreateTransactionInput) (*entity.Transaction, error)

	// RecentActivity returns the latest transactions
	RecentActivity(ctx context.Context, limit int) ([]*entity.Transaction, error)

	// VolumeStats aggregates the trailing window of days for a cryptocurrency
	VolumeStats(ctx context.Context, cryptoID uint64, days int) (*VolumeReport, error)
}
