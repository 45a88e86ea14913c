package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactionUseCase usecase.TransactionUseCase,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		logger:             logger,
	}
}

// ListTransactions handles GET /api/transactions?tx_type=&crypto_id=&user_id=&limit=
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var filter entity.TransactionFilter
	filters := map[string]any{}

	if raw := c.Query("tx_type"); raw != "" {
		txType, err := entity.ParseTxType(raw)
		if err != nil {
			respondError(c, h.logger, "list transactions", err)
			return
		}
		filter.TxType = txType
		filters["tx_type"] = raw
	}

	var ok bool
	if filter.CryptoID, ok = queryUint(c, "crypto_id"); !ok {
		return
	}
	if filter.UserID, ok = queryUint(c, "user_id"); !ok {
		return
	}
	if filter.Limit, ok = queryInt(c, "limit"); !ok {
		return
	}
	if filter.CryptoID != 0 {
		filters["crypto_id"] = filter.CryptoID
	}
	if filter.UserID != 0 {
		filters["user_id"] = filter.UserID
	}

	txs, err := h.transactionUseCase.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, "list transactions", err)
		return
	}

	c.JSON(http.StatusOK, dto.FilteredListResponse[dto.TransactionResponse]{
		Success:    true,
		Filters:    filters,
		Count:      len(txs),
		TotalValue: entity.ToFloat(entity.TotalTransactionValue(txs)),
		Data:       dto.NewTransactionResponses(txs),
	})
}

// GetTransaction handles GET /api/transactions/:id
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	txID, ok := pathID(c, "id")
	if !ok {
		return
	}

	tx, err := h.transactionUseCase.GetTransaction(c.Request.Context(), txID)
	if err != nil {
		respondError(c, h.logger, "get transaction", err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewTransactionResponse(tx)))
}

// CreateTransaction handles POST /api/transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	tx, err := h.transactionUseCase.CreateTransaction(c.Request.Context(), usecase.CreateTransactionInput{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		CryptoID:   req.CryptoID,
		Amount:     *req.Amount,
		TxType:     req.TxType,
	})
	if err != nil {
		respondError(c, h.logger, "create transaction", err)
		return
	}
	c.JSON(http.StatusCreated, dto.Created("Transaction created successfully", dto.NewTransactionResponse(tx)))
}

// RecentActivity handles GET /api/transactions/recent?limit=
func (h *TransactionHandler) RecentActivity(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	txs, err := h.transactionUseCase.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, "recent activity", err)
		return
	}

	resp := dto.List(dto.NewTransactionResponses(txs))
	resp.Message = "Recent transaction activity"
	c.JSON(http.StatusOK, resp)
}

// VolumeStats handles GET /api/transactions/:id/volume?days=; the id is a cryptocurrency id
func (h *TransactionHandler) VolumeStats(c *gin.Context) {
	cryptoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	days, ok := queryInt(c, "days")
	if !ok {
		return
	}

	report, err := h.transactionUseCase.VolumeStats(c.Request.Context(), cryptoID, days)
	if err != nil {
		respondError(c, h.logger, "volume stats", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewVolumeStatsResponse(report))
}
