package dto

import (
	"time"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest represents the API request for opening a wallet
type CreateWalletRequest struct {
	UserID   uint64           `json:"user_id" binding:"required"`
	CryptoID uint64           `json:"crypto_id" binding:"required"`
	Balance  *decimal.Decimal `json:"balance"`
}

// WalletResponse represents a wallet with its embedded references
type WalletResponse struct {
	WalletID  uint64             `json:"wallet_id"`
	UserID    uint64             `json:"user_id"`
	CryptoID  uint64             `json:"crypto_id"`
	Balance   float64            `json:"balance"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	User      *UserRefResponse   `json:"user,omitempty"`
	Crypto    *CryptoRefResponse `json:"cryptocurrency,omitempty"`
}

// WalletDetailResponse is a wallet priced at the current spot price
type WalletDetailResponse struct {
	WalletResponse
	ValueUSD float64 `json:"value_usd"`
}

// AssetValueResponse is one priced holding
type AssetValueResponse struct {
	Symbol   string  `json:"symbol"`
	Balance  float64 `json:"balance"`
	Price    float64 `json:"price"`
	ValueUSD float64 `json:"value_usd"`
}

// PortfolioResponse is the USD valuation of a user's wallets
type PortfolioResponse struct {
	UserID        uint64               `json:"user_id"`
	TotalValueUSD float64              `json:"total_value_usd"`
	WalletsCount  int                  `json:"wallets_count"`
	Breakdown     []AssetValueResponse `json:"breakdown"`
}

// NewWalletResponse maps a wallet entity
func NewWalletResponse(w *entity.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:  w.ID,
		UserID:    w.UserID,
		CryptoID:  w.CryptoID,
		Balance:   entity.ToFloat(w.Balance),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
		User:      newUserRef(w.User),
		Crypto:    newCryptoRef(w.Crypto),
	}
}

// NewWalletResponses maps a list of wallets
func NewWalletResponses(wallets []*entity.Wallet) []WalletResponse {
	return mapSlice(wallets, NewWalletResponse)
}

// NewWalletDetailResponse maps a wallet with its USD value
func NewWalletDetailResponse(w *entity.Wallet) WalletDetailResponse {
	return WalletDetailResponse{
		WalletResponse: NewWalletResponse(w),
		ValueUSD:       entity.ToFloat(w.Value().Value),
	}
}

// NewPortfolioResponse maps a portfolio valuation
func NewPortfolioResponse(userID uint64, p *entity.Portfolio) PortfolioResponse {
	return PortfolioResponse{
		UserID:        userID,
		TotalValueUSD: entity.ToFloat(p.TotalValueUSD),
		WalletsCount:  p.WalletsCount,
		Breakdown: mapSlice(p.Breakdown, func(v entity.AssetValue) AssetValueResponse {
			return AssetValueResponse{
				Symbol:   v.Symbol,
				Balance:  entity.ToFloat(v.Quantity),
				Price:    entity.ToFloat(v.Price),
				ValueUSD: entity.ToFloat(v.Value),
			}
		}),
	}
}
