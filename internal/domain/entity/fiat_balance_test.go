package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiatBalance(t *testing.T) {
	mockTime, _ := fixedTimeProvider(t)

	t.Run("Valid balance", func(t *testing.T) {
		fb, err := NewFiatBalance(1, "USD", decimal.NewFromInt(10000), mockTime)
		require.NoError(t, err)
		assert.Equal(t, CurrencyUSD, fb.Currency)
		assert.Equal(t, "10000", fb.Amount.String())
	})

	t.Run("Unsupported currency", func(t *testing.T) {
		for _, c := range []string{"EUR", "usd", ""} {
			t.Run(c, func(t *testing.T) {
				fb, err := NewFiatBalance(1, c, decimal.NewFromInt(1), mockTime)
				assert.Nil(t, fb)
				assert.ErrorIs(t, err, errs.ErrInvalidCurrency)
				assert.Equal(t, errs.CodeInvalidEnum, errs.ErrorCode(err))
			})
		}
	})

	t.Run("Amount beyond two decimals", func(t *testing.T) {
		_, err := NewFiatBalance(1, "THB", decimal.RequireFromString("1.005"), mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestFiatBalanceConvertTo(t *testing.T) {
	fb := &FiatBalance{Currency: CurrencyTHB, Amount: decimal.NewFromInt(50000)}
	assert.Equal(t, "1375", fb.ConvertTo(CurrencyUSD, decimal.RequireFromString("0.0275")).String())
	assert.Equal(t, "50000", fb.ConvertTo(CurrencyTHB, decimal.NewFromInt(99)).String())

	fb = &FiatBalance{Currency: CurrencyUSD, Amount: decimal.RequireFromString("10.01")}
	assert.Equal(t, "366.58", fb.ConvertTo(CurrencyTHB, decimal.RequireFromString("36.621")).String())
}
