package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// WalletHandler handles wallet HTTP requests
type WalletHandler struct {
	walletUseCase usecase.WalletUseCase
	logger        coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(walletUseCase usecase.WalletUseCase, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		walletUseCase: walletUseCase,
		logger:        logger,
	}
}

// ListWallets handles GET /api/wallets
func (h *WalletHandler) ListWallets(c *gin.Context) {
	wallets, err := h.walletUseCase.ListWallets(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list wallets", err)
		return
	}
	c.JSON(http.StatusOK, dto.List(dto.NewWalletResponses(wallets)))
}

// GetWallet handles GET /api/wallets/:id; the response carries the wallet's USD value
func (h *WalletHandler) GetWallet(c *gin.Context) {
	walletID, ok := pathID(c, "id")
	if !ok {
		return
	}

	wallet, err := h.walletUseCase.GetWallet(c.Request.Context(), walletID)
	if err != nil {
		respondError(c, h.logger, "get wallet", err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewWalletDetailResponse(wallet)))
}

// CreateWallet handles POST /api/wallets
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	var req dto.CreateWalletRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	balance := decimal.Zero
	if req.Balance != nil {
		balance = *req.Balance
	}

	wallet, err := h.walletUseCase.CreateWallet(c.Request.Context(), usecase.CreateWalletInput{
		UserID:   req.UserID,
		CryptoID: req.CryptoID,
		Balance:  balance,
	})
	if err != nil {
		respondError(c, h.logger, "create wallet", err)
		return
	}
	c.JSON(http.StatusCreated, dto.Created("Wallet created successfully", dto.NewWalletDetailResponse(wallet)))
}

// GetWalletTransactions handles GET /api/wallets/:id/transactions
func (h *WalletHandler) GetWalletTransactions(c *gin.Context) {
	walletID, ok := pathID(c, "id")
	if !ok {
		return
	}

	txs, err := h.walletUseCase.GetWalletTransactions(c.Request.Context(), walletID)
	if err != nil {
		respondError(c, h.logger, "get wallet transactions", err)
		return
	}
	c.JSON(http.StatusOK, dto.List(dto.NewTransactionResponses(txs)))
}
