package usecase

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateFiatBalanceInput carries the fields of a fiat balance creation request
type CreateFiatBalanceInput struct {
	UserID   uint64
	Currency string
	Amount   decimal.Decimal
}

// FiatConversion is a balance expressed in another currency
type FiatConversion struct {
	Balance   *entity.FiatBalance
	Target    entity.FiatCurrency
	Rate      decimal.Decimal
	Converted decimal.Decimal
}

// FiatBalanceUseCase defines operations on fiat balances
type FiatBalanceUseCase interface {
	ListFiatBalances(ctx context.Context) ([]*entity.FiatBalance, error)
	CreateFiatBalance(ctx context.Context, input CreateFiatBalanceInput) (*entity.FiatBalance, error)
	TotalByCurrency(ctx context.Context, currency string) (*entity.CurrencyTotal, error)
	ConvertBalance(ctx context.Context, balanceID uint64, target string, rate decimal.Decimal) (*FiatConversion, error)
}
