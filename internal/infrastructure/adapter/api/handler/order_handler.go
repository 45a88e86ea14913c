package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
	logger       coreport.Logger
}

// NewOrderHandler creates a new order handler instance
func NewOrderHandler(orderUseCase usecase.OrderUseCase, logger coreport.Logger) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		logger:       logger,
	}
}

// ListOrders handles GET /api/orders?status=&type=&user_id=&crypto_id=
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var filter entity.OrderFilter
	filters := map[string]any{}

	if raw := c.Query("status"); raw != "" {
		status, err := entity.ParseOrderStatus(raw)
		if err != nil {
			respondError(c, h.logger, "list orders", err)
			return
		}
		filter.Status = status
		filters["status"] = raw
	}
	if raw := c.Query("type"); raw != "" {
		orderType, err := entity.ParseOrderType(raw)
		if err != nil {
			respondError(c, h.logger, "list orders", err)
			return
		}
		filter.Type = orderType
		filters["type"] = raw
	}

	var ok bool
	if filter.UserID, ok = queryUint(c, "user_id"); !ok {
		return
	}
	if filter.CryptoID, ok = queryUint(c, "crypto_id"); !ok {
		return
	}
	if filter.UserID != 0 {
		filters["user_id"] = filter.UserID
	}
	if filter.CryptoID != 0 {
		filters["crypto_id"] = filter.CryptoID
	}

	orders, err := h.orderUseCase.ListOrders(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, "list orders", err)
		return
	}

	c.JSON(http.StatusOK, dto.FilteredListResponse[dto.OrderResponse]{
		Success:    true,
		Filters:    filters,
		Count:      len(orders),
		TotalValue: entity.ToFloat(entity.TotalOrderValue(orders)),
		Data:       dto.NewOrderResponses(orders),
	})
}

// GetOrder handles GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.orderUseCase.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, h.logger, "get order", err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewOrderDetailResponse(view)))
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	view, err := h.orderUseCase.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		UserID:   req.UserID,
		CryptoID: req.CryptoID,
		Type:     req.Type,
		Amount:   *req.Amount,
		Price:    *req.Price,
	})
	if err != nil {
		respondError(c, h.logger, "create order", err)
		return
	}
	c.JSON(http.StatusCreated, dto.Created("Order created successfully", dto.NewOrderDetailResponse(view)))
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	change, err := h.orderUseCase.UpdateOrderStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		respondError(c, h.logger, "update order status", err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[dto.StatusChangeResponse]{
		Success: true,
		Message: "Order status updated successfully",
		Data:    dto.NewStatusChangeResponse(change),
	})
}

// GetMarketData handles GET /api/orders/market/:crypto_id
func (h *OrderHandler) GetMarketData(c *gin.Context) {
	cryptoID, ok := pathID(c, "crypto_id")
	if !ok {
		return
	}

	book, err := h.orderUseCase.GetMarketData(c.Request.Context(), cryptoID)
	if err != nil {
		respondError(c, h.logger, "get market data", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMarketDataResponse(book))
}
