package persistence

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
)

// FiatBalanceRepository defines the methods to interact with fiat balances
type FiatBalanceRepository interface {
	List(ctx context.Context) ([]*entity.FiatBalance, error)
	ListByUser(ctx context.Context, userID uint64) ([]*entity.FiatBalance, error)

	// GetByID returns ErrFiatBalanceNotFound for an unknown ID
	GetByID(ctx context.Context, id uint64) (*entity.FiatBalance, error)

	// GetByUserAndCurrency returns ErrFiatBalanceNotFound when the user has no row for the currency
	GetByUserAndCurrency(ctx context.Context, userID uint64, currency entity.FiatCurrency) (*entity.FiatBalance, error)

	// Create returns ErrDuplicateFiatBalance when the (user, currency) pair exists
	Create(ctx context.Context, balance *entity.FiatBalance) error

	TotalByCurrency(ctx context.Context, currency entity.FiatCurrency) (entity.CurrencyTotal, error)
	CountByUser(ctx context.Context, userID uint64) (int64, error)
}
