package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// OrderType is the side of an order
type OrderType string

const (
	OrderTypeBuy  OrderType = "BUY"
	OrderTypeSell OrderType = "SELL"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// MarketDepth is the number of orders shown per side of the book
const MarketDepth = 10

// ParseOrderType accepts BUY or SELL
func ParseOrderType(s string) (OrderType, error) {
	switch t := OrderType(strings.TrimSpace(s)); t {
	case OrderTypeBuy, OrderTypeSell:
		return t, nil
	default:
		return "", errs.WrapValidationError("type", errs.ErrInvalidOrderType)
	}
}

// ParseOrderStatus accepts PENDING, COMPLETED or CANCELLED
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(strings.TrimSpace(s)); st {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return st, nil
	default:
		return "", errs.WrapValidationError("status", errs.ErrInvalidOrderStatus)
	}
}

// IsTerminal reports whether no further transition is allowed
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Order is a limit order; it never moves balances
type Order struct {
	ID        uint64
	UserID    uint64
	CryptoID  uint64
	Type      OrderType
	Amount    decimal.Decimal
	Price     decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	User   *UserRef
	Crypto *CryptoRef
}

// OrderFilter narrows order listings; zero values mean "any"
type OrderFilter struct {
	Status   OrderStatus
	Type     OrderType
	UserID   uint64
	CryptoID uint64
	Limit    int
}

// NewOrder validates and builds a pending order
func NewOrder(userID, cryptoID uint64, orderType string, amount, price decimal.Decimal, timeProvider coreport.TimeProvider) (*Order, error) {
	if err := validateID("user_id", userID); err != nil {
		return nil, err
	}
	if err := validateID("crypto_id", cryptoID); err != nil {
		return nil, err
	}
	t, err := ParseOrderType(orderType)
	if err != nil {
		return nil, err
	}
	if err := ValidateMinimum("amount", amount, MinCryptoAmount, CryptoDecimalPlaces); err != nil {
		return nil, err
	}
	if err := ValidateMinimum("price", price, MinCryptoAmount, CryptoDecimalPlaces); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Order{
		UserID:    userID,
		CryptoID:  cryptoID,
		Type:      t,
		Amount:    amount,
		Price:     price,
		Status:    OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// TotalValue is amount times price
func (o *Order) TotalValue() decimal.Decimal {
	return o.Amount.Mul(o.Price)
}

// TransitionTo moves the order to a new status and returns the previous one.
// Completed and cancelled orders are final.
func (o *Order) TransitionTo(status OrderStatus, timeProvider coreport.TimeProvider) (OrderStatus, error) {
	old := o.Status
	if old.IsTerminal() && status != old {
		return old, errs.NewStatusTransitionError(o.ID, string(old), string(status))
	}
	o.Status = status
	o.UpdatedAt = timeProvider.Now()
	return old, nil
}

// TotalOrderValue sums TotalValue over orders
func TotalOrderValue(orders []*Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalValue())
	}
	return total
}

// OrderBook is the pending depth for one cryptocurrency
type OrderBook struct {
	Crypto     CryptoRef
	BuyOrders  []*Order // price descending
	SellOrders []*Order // price ascending
}

// Spread is the lowest ask minus the highest bid, zero when either side is empty
func (b OrderBook) Spread() decimal.Decimal {
	if len(b.BuyOrders) == 0 || len(b.SellOrders) == 0 {
		return decimal.Zero
	}
	return b.SellOrders[0].Price.Sub(b.BuyOrders[0].Price)
}
