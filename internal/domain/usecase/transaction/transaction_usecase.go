package transaction

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
)

// TransactionUseCase records transactions and aggregates their volume.
// Recording a transaction never moves wallet balances.
type TransactionUseCase struct {
	txRepo       persistence.TransactionRepository
	userRepo     persistence.UserRepository
	cryptoRepo   persistence.CryptocurrencyRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTransactionUseCase creates a new transaction use case instance
func NewTransactionUseCase(
	txRepo persistence.TransactionRepository,
	userRepo persistence.UserRepository,
	cryptoRepo persistence.CryptocurrencyRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.TransactionUseCase {
	return &TransactionUseCase{
		txRepo:       txRepo,
		userRepo:     userRepo,
		cryptoRepo:   cryptoRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListTransactions returns transactions matching the filter, newest first
func (u *TransactionUseCase) ListTransactions(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	if filter.Limit <= 0 {
		filter.Limit = entity.DefaultTransactionLimit
	}
	return u.txRepo.List(ctx, filter)
}

// GetTransaction returns a transaction; its crypto ref carries the current price
func (u *TransactionUseCase) GetTransaction(ctx context.Context, txID uint64) (*entity.Transaction, error) {
	return u.txRepo.GetByID(ctx, txID)
}

// RecentActivity returns the latest transactions across all users
func (u *TransactionUseCase) RecentActivity(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	if limit <= 0 {
		limit = entity.DefaultRecentLimit
	}
	return u.txRepo.List(ctx, entity.TransactionFilter{Limit: limit})
}
