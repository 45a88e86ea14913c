package fiat

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// FiatBalanceUseCase implements fiat balance operations
type FiatBalanceUseCase struct {
	fiatRepo     persistence.FiatBalanceRepository
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewFiatBalanceUseCase creates a new fiat balance use case instance
func NewFiatBalanceUseCase(
	fiatRepo persistence.FiatBalanceRepository,
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.FiatBalanceUseCase {
	return &FiatBalanceUseCase{
		fiatRepo:     fiatRepo,
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListFiatBalances returns every balance, largest amount first
func (u *FiatBalanceUseCase) ListFiatBalances(ctx context.Context) ([]*entity.FiatBalance, error) {
	return u.fiatRepo.List(ctx)
}

// CreateFiatBalance opens a balance in a supported currency for an existing user
func (u *FiatBalanceUseCase) CreateFiatBalance(ctx context.Context, input usecase.CreateFiatBalanceInput) (*entity.FiatBalance, error) {
	balance, err := entity.NewFiatBalance(input.UserID, input.Currency, input.Amount, u.timeProvider)
	if err != nil {
		return nil, err
	}

	exists, err := u.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrUserNotFound
	}

	if err := u.fiatRepo.Create(ctx, balance); err != nil {
		u.logger.Error("Failed to create fiat balance", map[string]any{
			"userId":   input.UserID,
			"currency": input.Currency,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Fiat balance created", map[string]any{
		"balanceId": balance.ID,
		"userId":    balance.UserID,
		"currency":  string(balance.Currency),
		"amount":    balance.Amount.StringFixed(entity.FiatDecimalPlaces),
	})
	return balance, nil
}

// TotalByCurrency sums all balances held in a currency
func (u *FiatBalanceUseCase) TotalByCurrency(ctx context.Context, currency string) (*entity.CurrencyTotal, error) {
	c, err := entity.ParseFiatCurrency(currency)
	if err != nil {
		return nil, err
	}

	total, err := u.fiatRepo.TotalByCurrency(ctx, c)
	if err != nil {
		return nil, err
	}
	total.Currency = c
	return &total, nil
}

// ConvertBalance expresses a balance in the target currency at the given rate
func (u *FiatBalanceUseCase) ConvertBalance(ctx context.Context, balanceID uint64, target string, rate decimal.Decimal) (*usecase.FiatConversion, error) {
	to, err := entity.ParseFiatCurrency(target)
	if err != nil {
		return nil, err
	}
	if !rate.IsPositive() {
		return nil, &errs.ValidationError{Field: "rate", Reason: "must be greater than zero", Err: errs.ErrInvalidAmount}
	}

	balance, err := u.fiatRepo.GetByID(ctx, balanceID)
	if err != nil {
		return nil, err
	}

	return &usecase.FiatConversion{
		Balance:   balance,
		Target:    to,
		Rate:      rate,
		Converted: balance.ConvertTo(to, rate),
	}, nil
}
