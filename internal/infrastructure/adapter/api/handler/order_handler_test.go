package handler

import (
	"net/http"
	"testing"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/logger"
	ucmocks "github.com/amirhossein-jamali/crypto-exchange/mocks/port/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func btcRef() *entity.CryptoRef {
	return &entity.CryptoRef{ID: 1, Symbol: "BTC", Name: "Bitcoin", Price: decimal.RequireFromString("45000")}
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("created with total value", func(t *testing.T) {
		uc := ucmocks.NewMockOrderUseCase(t)
		h := NewOrderHandler(uc, logger.NewNoopLogger())

		uc.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(in usecase.CreateOrderInput) bool {
			return in.UserID == 1 && in.CryptoID == 1 && in.Type == "BUY" &&
				in.Amount.Equal(decimal.RequireFromString("0.1")) &&
				in.Price.Equal(decimal.RequireFromString("44500"))
		})).Return(&usecase.OrderView{
			Order: &entity.Order{
				ID:       6,
				UserID:   1,
				CryptoID: 1,
				Type:     entity.OrderTypeBuy,
				Amount:   decimal.RequireFromString("0.1"),
				Price:    decimal.RequireFromString("44500"),
				Status:   entity.OrderStatusPending,
				Crypto:   btcRef(),
			},
			CanExecute: true,
		}, nil)

		rec, body := serve(t, http.MethodPost, "/api/orders", h.CreateOrder, "/api/orders",
			`{"user_id":1,"crypto_id":1,"type":"BUY","amount":0.1,"price":44500}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		data := body["data"].(map[string]any)
		assert.Equal(t, float64(4450), data["total_value"])
		assert.Equal(t, true, data["can_execute"])
		assert.Equal(t, "PENDING", data["status"])
	})

	t.Run("invalid type", func(t *testing.T) {
		uc := ucmocks.NewMockOrderUseCase(t)
		h := NewOrderHandler(uc, logger.NewNoopLogger())

		uc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			Return(nil, errs.WrapValidationError("type", errs.ErrInvalidOrderType))

		rec, body := serve(t, http.MethodPost, "/api/orders", h.CreateOrder, "/api/orders",
			`{"user_id":999,"crypto_id":1,"type":"HOLD","amount":1,"price":1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, float64(errs.CodeInvalidEnum), body["code"])
	})

	t.Run("missing price", func(t *testing.T) {
		uc := ucmocks.NewMockOrderUseCase(t)
		h := NewOrderHandler(uc, logger.NewNoopLogger())

		rec, _ := serve(t, http.MethodPost, "/api/orders", h.CreateOrder, "/api/orders",
			`{"user_id":1,"crypto_id":1,"type":"BUY","amount":1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := ucmocks.NewMockOrderUseCase(t)
		h := NewOrderHandler(uc, logger.NewNoopLogger())

		uc.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, errs.ErrUserNotFound)

		rec, body := serve(t, http.MethodPost, "/api/orders", h.CreateOrder, "/api/orders",
			`{"user_id":999,"crypto_id":1,"type":"SELL","amount":1,"price":1}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", body["message"])
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	t.Run("filters and total value", func(t *testing.T) {
		uc := ucmocks.NewMockOrderUseCase(t)
		h := NewOrderHandler(uc, logger.NewNoopLogger())

		uc.EXPECT().ListOrders(mock.Anything, entity.OrderFilter{
			Status: entity.OrderStatusPending,
			UserID: 1,
		}).Return([]*entity.Order{
			{ID: 1, UserID: 1, Type: entity.OrderTypeBuy, Amount: decimal.RequireFromString("0.1"), Price: decimal.RequireFromString("44500"), Status: entity.OrderStatusPending},
			{ID: 3, UserID: 1, Type: entity.OrderTypeSell, Amount: decimal.RequireFromString("100"), Price: decimal.RequireFromString("0.66"), Status: entity.OrderStatusPending},
		}, nil)

		rec, body := serve(t, http.MethodGet, "/api/orders", h.ListOrders, "/api/orders?status=PENDING&user_id=1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), body["count"])
		assert.Equal(t, float64(4516), body["total_value"])
		assert.Equal(t, map[string]any{"status": "PENDING", "user_id": float64(1)}, body["filters"])
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := ucmocks.NewMockOrderUseCase(t)
		h := NewOrderHandler(uc, logger.NewNoopLogger())

		rec, _ := serve(t, http.MethodGet, "/api/orders", h.ListOrders, "/api/orders?status=OPEN", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		uc := ucmocks.NewMockOrderUseCase(t)
		h := NewOrderHandler(uc, logger.NewNoopLogger())

		uc.EXPECT().UpdateOrderStatus(mock.Anything, uint64(1), "COMPLETED").Return(&usecase.StatusChange{
			OrderID:   1,
			OldStatus: entity.OrderStatusPending,
			NewStatus: entity.OrderStatusCompleted,
		}, nil)

		rec, body := serve(t, http.MethodPatch, "/api/orders/:id/status", h.UpdateOrderStatus, "/api/orders/1/status",
			map[string]string{"status": "COMPLETED"})

		assert.Equal(t, http.StatusOK, rec.Code)
		data := body["data"].(map[string]any)
		assert.Equal(t, "PENDING", data["old_status"])
		assert.Equal(t, "COMPLETED", data["new_status"])
	})

	t.Run("finalized order", func(t *testing.T) {
		uc := ucmocks.NewMockOrderUseCase(t)
		h := NewOrderHandler(uc, logger.NewNoopLogger())

		uc.EXPECT().UpdateOrderStatus(mock.Anything, uint64(2), "PENDING").
			Return(nil, errs.NewStatusTransitionError(2, "COMPLETED", "PENDING"))

		rec, body := serve(t, http.MethodPatch, "/api/orders/:id/status", h.UpdateOrderStatus, "/api/orders/2/status",
			map[string]string{"status": "PENDING"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, float64(errs.CodeOrderFinalized), body["code"])
	})
}

func TestOrderHandler_GetMarketData(t *testing.T) {
	uc := ucmocks.NewMockOrderUseCase(t)
	h := NewOrderHandler(uc, logger.NewNoopLogger())

	uc.EXPECT().GetMarketData(mock.Anything, uint64(1)).Return(&entity.OrderBook{
		Crypto: *btcRef(),
		BuyOrders: []*entity.Order{
			{ID: 1, Type: entity.OrderTypeBuy, Amount: decimal.RequireFromString("0.1"), Price: decimal.RequireFromString("44500"), Status: entity.OrderStatusPending},
		},
		SellOrders: []*entity.Order{
			{ID: 7, Type: entity.OrderTypeSell, Amount: decimal.RequireFromString("0.2"), Price: decimal.RequireFromString("45100"), Status: entity.OrderStatusPending},
		},
	}, nil)

	rec, body := serve(t, http.MethodGet, "/api/orders/market/:crypto_id", h.GetMarketData, "/api/orders/market/1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["crypto_id"])
	market := body["market_data"].(map[string]any)
	assert.Equal(t, float64(600), market["spread"])
	assert.Len(t, market["buy_orders"], 1)
	assert.Len(t, market["sell_orders"], 1)
}
