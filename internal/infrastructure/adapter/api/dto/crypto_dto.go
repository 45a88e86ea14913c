package dto

import (
	"time"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateCryptocurrencyRequest represents the API request for listing a cryptocurrency
type CreateCryptocurrencyRequest struct {
	Symbol string           `json:"symbol" binding:"required"`
	Name   string           `json:"name" binding:"required"`
	Price  *decimal.Decimal `json:"price" binding:"required"`
}

// CryptocurrencyResponse represents a listed cryptocurrency
type CryptocurrencyResponse struct {
	CryptoID  uint64    `json:"crypto_id"`
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CryptoRefResponse is the cryptocurrency projection embedded in other resources
type CryptoRefResponse struct {
	CryptoID uint64  `json:"crypto_id"`
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}

// CryptoVolumeResponse is one row of the volume ranking
type CryptoVolumeResponse struct {
	CryptoRefResponse
	TotalVolume float64 `json:"total_volume"`
}

// MarketOverviewResponse summarizes holdings and activity for a cryptocurrency
type MarketOverviewResponse struct {
	Crypto             CryptoRefResponse `json:"cryptocurrency"`
	TotalHolders       int64             `json:"total_holders"`
	TotalSupply        float64           `json:"total_supply"`
	AverageHolding     float64           `json:"average_holding"`
	RecentOrders       int64             `json:"recent_orders"`
	RecentTransactions int64             `json:"recent_transactions"`
}

// NewCryptocurrencyResponse maps a cryptocurrency entity
func NewCryptocurrencyResponse(c *entity.Cryptocurrency) CryptocurrencyResponse {
	return CryptocurrencyResponse{
		CryptoID:  c.ID,
		Symbol:    c.Symbol,
		Name:      c.Name,
		Price:     entity.ToFloat(c.Price),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewCryptocurrencyResponses maps a list of cryptocurrencies
func NewCryptocurrencyResponses(cryptos []*entity.Cryptocurrency) []CryptocurrencyResponse {
	return mapSlice(cryptos, NewCryptocurrencyResponse)
}

// NewCryptoRefResponse maps a cryptocurrency projection
func NewCryptoRefResponse(ref entity.CryptoRef) CryptoRefResponse {
	return CryptoRefResponse{
		CryptoID: ref.ID,
		Symbol:   ref.Symbol,
		Name:     ref.Name,
		Price:    entity.ToFloat(ref.Price),
	}
}

func newCryptoRef(ref *entity.CryptoRef) *CryptoRefResponse {
	if ref == nil {
		return nil
	}
	r := NewCryptoRefResponse(*ref)
	return &r
}

// NewCryptoVolumeResponses maps the volume ranking
func NewCryptoVolumeResponses(volumes []entity.CryptoVolume) []CryptoVolumeResponse {
	return mapSlice(volumes, func(v entity.CryptoVolume) CryptoVolumeResponse {
		return CryptoVolumeResponse{
			CryptoRefResponse: NewCryptoRefResponse(v.Crypto),
			TotalVolume:       entity.ToFloat(v.TotalVolume),
		}
	})
}

// NewMarketOverviewResponse maps a market overview
func NewMarketOverviewResponse(o *entity.CryptoMarketOverview) MarketOverviewResponse {
	return MarketOverviewResponse{
		Crypto:             NewCryptoRefResponse(o.Crypto),
		TotalHolders:       o.Holders.TotalHolders,
		TotalSupply:        entity.ToFloat(o.Holders.TotalSupply),
		AverageHolding:     entity.ToFloat(o.Holders.AverageHolding()),
		RecentOrders:       o.RecentOrders,
		RecentTransactions: o.RecentTransactions,
	}
}
