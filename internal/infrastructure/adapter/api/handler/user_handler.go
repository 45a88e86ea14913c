package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUseCase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list users", err)
		return
	}
	c.JSON(http.StatusOK, dto.List(dto.NewUserResponses(users)))
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "get user", err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewUserResponse(user)))
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), usecase.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, "create user", err)
		return
	}
	c.JSON(http.StatusCreated, dto.Created("User created successfully", dto.NewUserResponse(user)))
}

// GetUserWallets handles GET /api/users/:id/wallets
func (h *UserHandler) GetUserWallets(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	wallets, err := h.userUseCase.GetUserWallets(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "get user wallets", err)
		return
	}
	c.JSON(http.StatusOK, dto.List(dto.NewWalletResponses(wallets)))
}

// GetUserFiatBalances handles GET /api/users/:id/fiat-balances
func (h *UserHandler) GetUserFiatBalances(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	balances, err := h.userUseCase.GetUserFiatBalances(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "get user fiat balances", err)
		return
	}
	c.JSON(http.StatusOK, dto.List(dto.NewFiatBalanceResponses(balances)))
}

// GetUserOrders handles GET /api/users/:id/orders?status=
func (h *UserHandler) GetUserOrders(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	orders, err := h.userUseCase.GetUserOrders(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		respondError(c, h.logger, "get user orders", err)
		return
	}
	c.JSON(http.StatusOK, dto.List(dto.NewOrderResponses(orders)))
}

// GetUserTransactions handles GET /api/users/:id/transactions?tx_type=&limit=
func (h *UserHandler) GetUserTransactions(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	txs, err := h.userUseCase.GetUserTransactions(c.Request.Context(), userID, c.Query("tx_type"), limit)
	if err != nil {
		respondError(c, h.logger, "get user transactions", err)
		return
	}
	c.JSON(http.StatusOK, dto.List(dto.NewTransactionResponses(txs)))
}

// GetUserSummary handles GET /api/users/:id/summary
func (h *UserHandler) GetUserSummary(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	summary, err := h.userUseCase.GetUserSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "get user summary", err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewUserSummaryResponse(summary)))
}

// GetWalletValue handles GET /api/users/:id/wallet-value
func (h *UserHandler) GetWalletValue(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	portfolio, err := h.userUseCase.GetWalletValue(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "get wallet value", err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewPortfolioResponse(userID, portfolio)))
}

// TopTraders handles GET /api/users/top-traders?limit=
func (h *UserHandler) TopTraders(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	traders, err := h.userUseCase.TopTraders(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, "top traders", err)
		return
	}
	c.JSON(http.StatusOK, dto.List(dto.NewTraderResponses(traders)))
}
