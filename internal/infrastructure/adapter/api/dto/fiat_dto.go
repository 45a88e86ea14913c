package dto

import (
	"time"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// CreateFiatBalanceRequest represents the API request for opening a fiat balance
type CreateFiatBalanceRequest struct {
	UserID   uint64           `json:"user_id" binding:"required"`
	Currency string           `json:"currency" binding:"required"`
	Amount   *decimal.Decimal `json:"amount"`
}

// FiatBalanceResponse represents a fiat balance
type FiatBalanceResponse struct {
	BalanceID uint64           `json:"balance_id"`
	UserID    uint64           `json:"user_id"`
	Currency  string           `json:"currency"`
	Amount    float64          `json:"amount"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	User      *UserRefResponse `json:"user,omitempty"`
}

// CurrencyTotalResponse aggregates balances held in one currency
type CurrencyTotalResponse struct {
	Currency    string  `json:"currency"`
	TotalAmount float64 `json:"total_amount"`
	UserCount   int64   `json:"user_count"`
}

// ConversionResponse is a balance expressed in another currency
type ConversionResponse struct {
	BalanceID       uint64  `json:"balance_id"`
	FromCurrency    string  `json:"from_currency"`
	ToCurrency      string  `json:"to_currency"`
	Amount          float64 `json:"amount"`
	Rate            float64 `json:"rate"`
	ConvertedAmount float64 `json:"converted_amount"`
}

// NewFiatBalanceResponse maps a fiat balance entity
func NewFiatBalanceResponse(f *entity.FiatBalance) FiatBalanceResponse {
	return FiatBalanceResponse{
		BalanceID: f.ID,
		UserID:    f.UserID,
		Currency:  string(f.Currency),
		Amount:    entity.ToFloat(f.Amount),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
		User:      newUserRef(f.User),
	}
}

// NewFiatBalanceResponses maps a list of fiat balances
func NewFiatBalanceResponses(balances []*entity.FiatBalance) []FiatBalanceResponse {
	return mapSlice(balances, NewFiatBalanceResponse)
}

// NewCurrencyTotalResponse maps a currency aggregate
func NewCurrencyTotalResponse(t *entity.CurrencyTotal) CurrencyTotalResponse {
	return CurrencyTotalResponse{
		Currency:    string(t.Currency),
		TotalAmount: entity.ToFloat(t.TotalAmount),
		UserCount:   t.UserCount,
	}
}

// NewConversionResponse maps a conversion result
func NewConversionResponse(c *usecase.FiatConversion) ConversionResponse {
	return ConversionResponse{
		BalanceID:       c.Balance.ID,
		FromCurrency:    string(c.Balance.Currency),
		ToCurrency:      string(c.Target),
		Amount:          entity.ToFloat(c.Balance.Amount),
		Rate:            entity.ToFloat(c.Rate),
		ConvertedAmount: entity.ToFloat(c.Converted),
	}
}
