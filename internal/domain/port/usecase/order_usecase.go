package usecase

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateOrderInput carries the fields of an order placement request
type CreateOrderInput struct {
	UserID   uint64
	CryptoID uint64
	Type     string
	Amount   decimal.Decimal
	Price    decimal.Decimal
}

// OrderView is an order together with its executability at read time
type OrderView struct {
	Order      *entity.Order
	CanExecute bool
}

// StatusChange reports the outcome of a status update
type StatusChange struct {
	OrderID   uint64
	OldStatus entity.OrderStatus
	NewStatus entity.OrderStatus
}

// OrderUseCase defines order-related business operations
type OrderUseCase interface {
	// ListOrders returns orders matching the filter, newest first
	ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error)

	// GetOrder returns an order with its can_execute flag
	GetOrder(ctx context.Context, orderID uint64) (*OrderView, error)

	// CreateOrder validates references and stores a PENDING order
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderView, error)

	// UpdateOrderStatus moves an order to a new status; completed and cancelled orders are final
	UpdateOrderStatus(ctx context.Context, orderID uint64, status string) (*StatusChange, error)

	// GetMarketData returns the pending order book for a cryptocurrency
	GetMarketData(ctx context.Context, cryptoID uint64) (*entity.OrderBook, error)
}
