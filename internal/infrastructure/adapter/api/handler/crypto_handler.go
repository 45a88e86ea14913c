package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CryptocurrencyHandler handles cryptocurrency HTTP requests
type CryptocurrencyHandler struct {
	cryptoUseCase usecase.CryptocurrencyUseCase
	logger        coreport.Logger
}

// NewCryptocurrencyHandler creates a new cryptocurrency handler instance
func NewCryptocurrencyHandler(cryptoUseCase usecase.CryptocurrencyUseCase, logger coreport.Logger) *CryptocurrencyHandler {
	return &CryptocurrencyHandler{
		cryptoUseCase: cryptoUseCase,
		logger:        logger,
	}
}

// ListCryptocurrencies handles GET /api/cryptocurrencies
func (h *CryptocurrencyHandler) ListCryptocurrencies(c *gin.Context) {
	cryptos, err := h.cryptoUseCase.ListCryptocurrencies(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list cryptocurrencies", err)
		return
	}
	c.JSON(http.StatusOK, dto.List(dto.NewCryptocurrencyResponses(cryptos)))
}

// GetCryptocurrency handles GET /api/cryptocurrencies/:id
func (h *CryptocurrencyHandler) GetCryptocurrency(c *gin.Context) {
	cryptoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	crypto, err := h.cryptoUseCase.GetCryptocurrency(c.Request.Context(), cryptoID)
	if err != nil {
		respondError(c, h.logger, "get cryptocurrency", err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewCryptocurrencyResponse(crypto)))
}

// GetBySymbol handles GET /api/cryptocurrencies/symbol/:symbol
func (h *CryptocurrencyHandler) GetBySymbol(c *gin.Context) {
	crypto, err := h.cryptoUseCase.GetCryptocurrencyBySymbol(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		respondError(c, h.logger, "get cryptocurrency by symbol", err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewCryptocurrencyResponse(crypto)))
}

// CreateCryptocurrency handles POST /api/cryptocurrencies
func (h *CryptocurrencyHandler) CreateCryptocurrency(c *gin.Context) {
	var req dto.CreateCryptocurrencyRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	crypto, err := h.cryptoUseCase.CreateCryptocurrency(c.Request.Context(), usecase.CreateCryptocurrencyInput{
		Symbol: req.Symbol,
		Name:   req.Name,
		Price:  *req.Price,
	})
	if err != nil {
		respondError(c, h.logger, "create cryptocurrency", err)
		return
	}
	c.JSON(http.StatusCreated, dto.Created("Cryptocurrency created successfully", dto.NewCryptocurrencyResponse(crypto)))
}

// TopByVolume handles GET /api/cryptocurrencies/top-volume?limit=
func (h *CryptocurrencyHandler) TopByVolume(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	volumes, err := h.cryptoUseCase.TopByVolume(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, "top cryptocurrencies by volume", err)
		return
	}
	c.JSON(http.StatusOK, dto.List(dto.NewCryptoVolumeResponses(volumes)))
}

// MarketOverview handles GET /api/cryptocurrencies/:id/market
func (h *CryptocurrencyHandler) MarketOverview(c *gin.Context) {
	cryptoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	overview, err := h.cryptoUseCase.MarketOverview(c.Request.Context(), cryptoID)
	if err != nil {
		respondError(c, h.logger, "market overview", err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewMarketOverviewResponse(overview)))
}

// TopHolders handles GET /api/cryptocurrencies/:id/holders?limit=
func (h *CryptocurrencyHandler) TopHolders(c *gin.Context) {
	cryptoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	wallets, err := h.cryptoUseCase.TopHolders(c.Request.Context(), cryptoID, limit)
	if err != nil {
		respondError(c, h.logger, "top holders", err)
		return
	}
	c.JSON(http.StatusOK, dto.List(dto.NewWalletResponses(wallets)))
}
