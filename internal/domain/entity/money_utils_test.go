package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"0.25", "0.25"},
			{" 45000 ", "45000"},
			{"0.00000001", "0.00000001"},
			{"3200.50", "3200.5"},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				d, err := ParseAmount(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, d.String())
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		for _, input := range []string{"", "   ", "abc", "$10", "1,000"} {
			t.Run(input, func(t *testing.T) {
				_, err := ParseAmount(input)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}
	})
}

func TestAmountValidation(t *testing.T) {
	t.Run("Non negative", func(t *testing.T) {
		assert.NoError(t, ValidateNonNegative("balance", decimal.Zero, CryptoDecimalPlaces))
		assert.NoError(t, ValidateNonNegative("balance", decimal.RequireFromString("0.12345678"), CryptoDecimalPlaces))

		err := ValidateNonNegative("balance", decimal.NewFromInt(-1), CryptoDecimalPlaces)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Scale", func(t *testing.T) {
		err := ValidateNonNegative("amount", decimal.RequireFromString("100.123"), FiatDecimalPlaces)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		err = ValidateNonNegative("amount", decimal.RequireFromString("0.123456789"), CryptoDecimalPlaces)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Minimum", func(t *testing.T) {
		assert.NoError(t, ValidateMinimum("amount", MinCryptoAmount, MinCryptoAmount, CryptoDecimalPlaces))
		assert.Error(t, ValidateMinimum("amount", decimal.Zero, MinCryptoAmount, CryptoDecimalPlaces))
		assert.Error(t, ValidateMinimum("amount", decimal.RequireFromString("0.000000001"), MinCryptoAmount, CryptoDecimalPlaces))
	})

	t.Run("Float rendering", func(t *testing.T) {
		assert.Equal(t, 4450.0, ToFloat(decimal.RequireFromString("4450.00000000")))
	})
}
