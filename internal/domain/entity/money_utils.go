package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Decimal scale of stored columns
const (
	// CryptoDecimalPlaces matches DECIMAL(20,8) columns (prices, balances, amounts)
	CryptoDecimalPlaces int32 = 8
	// FiatDecimalPlaces matches DECIMAL(15,2) columns
	FiatDecimalPlaces int32 = 2
)

// MinCryptoAmount is the smallest order or transaction amount accepted (1 satoshi)
var MinCryptoAmount = decimal.New(1, -CryptoDecimalPlaces)

// ParseAmount parses a decimal string such as "0.25" or "45000"
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}
	return d, nil
}

// validateScale rejects values with more fractional digits than the column can hold
func validateScale(field string, value decimal.Decimal, places int32) error {
	if !value.Equal(value.Truncate(places)) {
		return &errs.ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("must have at most %d decimal places", places),
			Err:    errs.ErrInvalidAmount,
		}
	}
	return nil
}

// ValidateNonNegative checks value >= 0 with the given scale
func ValidateNonNegative(field string, value decimal.Decimal, places int32) error {
	if value.IsNegative() {
		return &errs.ValidationError{Field: field, Reason: "cannot be negative", Err: errs.ErrInvalidAmount}
	}
	return validateScale(field, value, places)
}

// ValidateMinimum checks value >= min with the given scale
func ValidateMinimum(field string, value, min decimal.Decimal, places int32) error {
	if value.LessThan(min) {
		return &errs.ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("must be at least %s", min.String()),
			Err:    errs.ErrInvalidAmount,
		}
	}
	return validateScale(field, value, places)
}

// ToFloat converts a decimal for JSON rendering; precision loss is accepted there
func ToFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// validateID rejects zero identifiers
func validateID(field string, id uint64) error {
	if id == 0 {
		return errs.WrapValidationError(field, errs.ErrInvalidID)
	}
	return nil
}
