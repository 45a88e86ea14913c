package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// FiatCurrency is a supported fiat currency code
type FiatCurrency string

const (
	CurrencyTHB FiatCurrency = "THB"
	CurrencyUSD FiatCurrency = "USD"
)

// ParseFiatCurrency accepts THB or USD
func ParseFiatCurrency(s string) (FiatCurrency, error) {
	switch c := FiatCurrency(strings.TrimSpace(s)); c {
	case CurrencyTHB, CurrencyUSD:
		return c, nil
	default:
		return "", errs.WrapValidationError("currency", errs.ErrInvalidCurrency)
	}
}

// FiatBalance is a user's holding in one fiat currency
type FiatBalance struct {
	ID        uint64
	UserID    uint64
	Currency  FiatCurrency
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time

	User *UserRef
}

// CurrencyTotal aggregates balances for one currency
type CurrencyTotal struct {
	Currency    FiatCurrency
	TotalAmount decimal.Decimal
	UserCount   int64
}

// NewFiatBalance validates and builds a fiat balance
func NewFiatBalance(userID uint64, currency string, amount decimal.Decimal, timeProvider coreport.TimeProvider) (*FiatBalance, error) {
	if err := validateID("user_id", userID); err != nil {
		return nil, err
	}
	c, err := ParseFiatCurrency(currency)
	if err != nil {
		return nil, err
	}
	if err := ValidateNonNegative("amount", amount, FiatDecimalPlaces); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &FiatBalance{
		UserID:    userID,
		Currency:  c,
		Amount:    amount,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ConvertTo applies a caller supplied rate and rounds to fiat precision.
// The rate is ignored when the target is the balance's own currency.
func (f *FiatBalance) ConvertTo(target FiatCurrency, rate decimal.Decimal) decimal.Decimal {
	if target == f.Currency {
		return f.Amount
	}
	return f.Amount.Mul(rate).Round(FiatDecimalPlaces)
}
