package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// FiatBalanceHandler handles fiat balance HTTP requests
type FiatBalanceHandler struct {
	fiatUseCase usecase.FiatBalanceUseCase
	logger      coreport.Logger
}

// NewFiatBalanceHandler creates a new fiat balance handler instance
func NewFiatBalanceHandler(fiatUseCase usecase.FiatBalanceUseCase, logger coreport.Logger) *FiatBalanceHandler {
	return &FiatBalanceHandler{
		fiatUseCase: fiatUseCase,
		logger:      logger,
	}
}

// ListFiatBalances handles GET /api/fiat-balances
func (h *FiatBalanceHandler) ListFiatBalances(c *gin.Context) {
	balances, err := h.fiatUseCase.ListFiatBalances(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list fiat balances", err)
		return
	}
	c.JSON(http.StatusOK, dto.List(dto.NewFiatBalanceResponses(balances)))
}

// CreateFiatBalance handles POST /api/fiat-balances
func (h *FiatBalanceHandler) CreateFiatBalance(c *gin.Context) {
	var req dto.CreateFiatBalanceRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	amount := decimal.Zero
	if req.Amount != nil {
		amount = *req.Amount
	}

	balance, err := h.fiatUseCase.CreateFiatBalance(c.Request.Context(), usecase.CreateFiatBalanceInput{
		UserID:   req.UserID,
		Currency: req.Currency,
		Amount:   amount,
	})
	if err != nil {
		respondError(c, h.logger, "create fiat balance", err)
		return
	}
	c.JSON(http.StatusCreated, dto.Created("Fiat balance created successfully", dto.NewFiatBalanceResponse(balance)))
}

// TotalByCurrency handles GET /api/fiat-balances/totals/:currency
func (h *FiatBalanceHandler) TotalByCurrency(c *gin.Context) {
	total, err := h.fiatUseCase.TotalByCurrency(c.Request.Context(), c.Param("currency"))
	if err != nil {
		respondError(c, h.logger, "total by currency", err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewCurrencyTotalResponse(total)))
}

// ConvertBalance handles GET /api/fiat-balances/:id/convert?to=&rate=
func (h *FiatBalanceHandler) ConvertBalance(c *gin.Context) {
	balanceID, ok := pathID(c, "id")
	if !ok {
		return
	}

	rate := decimal.Zero
	if raw := c.Query("rate"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			respondError(c, h.logger, "convert fiat balance", domainerr.WrapValidationError("rate", domainerr.ErrInvalidAmount))
			return
		}
		rate = parsed
	}

	conversion, err := h.fiatUseCase.ConvertBalance(c.Request.Context(), balanceID, c.Query("to"), rate)
	if err != nil {
		respondError(c, h.logger, "convert fiat balance", err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewConversionResponse(conversion)))
}
