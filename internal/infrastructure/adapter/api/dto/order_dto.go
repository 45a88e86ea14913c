package dto

import (
	"time"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest represents the API request for placing an order
type CreateOrderRequest struct {
	UserID   uint64           `json:"user_id" binding:"required"`
	CryptoID uint64           `json:"crypto_id" binding:"required"`
	Type     string           `json:"type" binding:"required"`
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
	Price    *decimal.Decimal `json:"price" binding:"required"`
}

// UpdateOrderStatusRequest represents the API request for changing an order's status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderResponse represents an order with its embedded references
type OrderResponse struct {
	OrderID    uint64             `json:"order_id"`
	UserID     uint64             `json:"user_id"`
	CryptoID   uint64             `json:"crypto_id"`
	Type       string             `json:"type"`
	Amount     float64            `json:"amount"`
	Price      float64            `json:"price"`
	Status     string             `json:"status"`
	TotalValue float64            `json:"total_value"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	User       *UserRefResponse   `json:"user,omitempty"`
	Crypto     *CryptoRefResponse `json:"cryptocurrency,omitempty"`
}

// OrderDetailResponse is an order with its executability at read time
type OrderDetailResponse struct {
	OrderResponse
	CanExecute bool `json:"can_execute"`
}

// StatusChangeResponse reports an order status update
type StatusChangeResponse struct {
	OrderID   uint64 `json:"order_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// MarketDataResponse is the pending order book of one cryptocurrency
type MarketDataResponse struct {
	Success    bool              `json:"success"`
	CryptoID   uint64            `json:"crypto_id"`
	Crypto     CryptoRefResponse `json:"cryptocurrency"`
	MarketData OrderBookResponse `json:"market_data"`
}

// OrderBookResponse holds both sides of the book and their spread
type OrderBookResponse struct {
	BuyOrders  []OrderResponse `json:"buy_orders"`
	SellOrders []OrderResponse `json:"sell_orders"`
	Spread     float64         `json:"spread"`
}

// NewOrderResponse maps an order entity
func NewOrderResponse(o *entity.Order) OrderResponse {
	return OrderResponse{
		OrderID:    o.ID,
		UserID:     o.UserID,
		CryptoID:   o.CryptoID,
		Type:       string(o.Type),
		Amount:     entity.ToFloat(o.Amount),
		Price:      entity.ToFloat(o.Price),
		Status:     string(o.Status),
		TotalValue: entity.ToFloat(o.TotalValue()),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
		User:       newUserRef(o.User),
		Crypto:     newCryptoRef(o.Crypto),
	}
}

// NewOrderResponses maps a list of orders
func NewOrderResponses(orders []*entity.Order) []OrderResponse {
	return mapSlice(orders, NewOrderResponse)
}

// NewOrderDetailResponse maps an order view
func NewOrderDetailResponse(v *usecase.OrderView) OrderDetailResponse {
	return OrderDetailResponse{
		OrderResponse: NewOrderResponse(v.Order),
		CanExecute:    v.CanExecute,
	}
}

// NewStatusChangeResponse maps a status update outcome
func NewStatusChangeResponse(c *usecase.StatusChange) StatusChangeResponse {
	return StatusChangeResponse{
		OrderID:   c.OrderID,
		OldStatus: string(c.OldStatus),
		NewStatus: string(c.NewStatus),
	}
}

// NewMarketDataResponse maps an order book
func NewMarketDataResponse(book *entity.OrderBook) MarketDataResponse {
	return MarketDataResponse{
		Success:  true,
		CryptoID: book.Crypto.ID,
		Crypto:   NewCryptoRefResponse(book.Crypto),
		MarketData: OrderBookResponse{
			BuyOrders:  NewOrderResponses(book.BuyOrders),
			SellOrders: NewOrderResponses(book.SellOrders),
			Spread:     entity.ToFloat(book.Spread()),
		},
	}
}
