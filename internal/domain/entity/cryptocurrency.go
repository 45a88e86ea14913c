package entity

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// UnknownSymbol is reported when a valuation cannot find its cryptocurrency
const UnknownSymbol = "Unknown"

// Cryptocurrency is a listed asset with a spot price in USD
type Cryptocurrency struct {
	ID        uint64
	Symbol    string
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CryptoRef is the projection of a cryptocurrency embedded in other entities
type CryptoRef struct {
	ID     uint64
	Symbol string
	Name   string
	Price  decimal.Decimal
}

// CryptoVolume is the sum of all wallet balances for one cryptocurrency
type CryptoVolume struct {
	Crypto      CryptoRef
	TotalVolume decimal.Decimal
}

// HolderStats aggregates wallets of one cryptocurrency
type HolderStats struct {
	TotalHolders int64
	TotalSupply  decimal.Decimal
}

// AverageHolding is supply divided by holders, zero when nobody holds the asset
func (s HolderStats) AverageHolding() decimal.Decimal {
	if s.TotalHolders == 0 {
		return decimal.Zero
	}
	return s.TotalSupply.Div(decimal.NewFromInt(s.TotalHolders))
}

// CryptoMarketOverview summarizes holdings and activity for a cryptocurrency
type CryptoMarketOverview struct {
	Crypto             CryptoRef
	Holders            HolderStats
	RecentOrders       int64
	RecentTransactions int64
}

// NewCryptocurrency validates and builds a listing
func NewCryptocurrency(symbol, name string, price decimal.Decimal, timeProvider coreport.TimeProvider) (*Cryptocurrency, error) {
	symbol = strings.TrimSpace(symbol)
	name = strings.TrimSpace(name)

	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	if n := utf8.RuneCountInString(name); n < 1 || n > 100 {
		return nil, errs.NewValidationError("name", "must be between 1 and 100 characters")
	}
	if err := ValidateNonNegative("price", price, CryptoDecimalPlaces); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Cryptocurrency{
		Symbol:    symbol,
		Name:      name,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateSymbol enforces 2-10 uppercase alphanumerics
func ValidateSymbol(symbol string) error {
	if n := len(symbol); n < 2 || n > 10 {
		return errs.NewValidationError("symbol", "must be between 2 and 10 characters")
	}
	for _, r := range symbol {
		if unicode.IsLower(r) {
			return errs.NewValidationError("symbol", "must be uppercase")
		}
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return errs.NewValidationError("symbol", "must contain only letters and digits")
		}
	}
	return nil
}

// NormalizeSymbol prepares user input for a symbol lookup
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Ref returns the embedded projection of the cryptocurrency
func (c *Cryptocurrency) Ref() CryptoRef {
	return CryptoRef{ID: c.ID, Symbol: c.Symbol, Name: c.Name, Price: c.Price}
}
