package order

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
)

// OrderUseCase implements order placement, status updates and market depth
type OrderUseCase struct {
	orderRepo    persistence.OrderRepository
	userRepo     persistence.UserRepository
	cryptoRepo   persistence.CryptocurrencyRepository
	walletRepo   persistence.WalletRepository
	fiatRepo     persistence.FiatBalanceRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewOrderUseCase creates a new order use case instance
func NewOrderUseCase(
	orderRepo persistence.OrderRepository,
	userRepo persistence.UserRepository,
	cryptoRepo persistence.CryptocurrencyRepository,
	walletRepo persistence.WalletRepository,
	fiatRepo persistence.FiatBalanceRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.OrderUseCase {
	return &OrderUseCase{
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		cryptoRepo:   cryptoRepo,
		walletRepo:   walletRepo,
		fiatRepo:     fiatRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListOrders returns orders matching the filter, newest first
func (u *OrderUseCase) ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	return u.orderRepo.List(ctx, filter)
}

// GetOrder returns an order and whether it could execute against current balances
func (u *OrderUseCase) GetOrder(ctx context.Context, orderID uint64) (*usecase.OrderView, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	canExecute, err := u.CanExecute(ctx, order)
	if err != nil {
		return nil, err
	}

	return &usecase.OrderView{Order: order, CanExecute: canExecute}, nil
}
