package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCryptocurrency(t *testing.T) {
	mockTime, fixedTime := fixedTimeProvider(t)

	t.Run("Valid listing", func(t *testing.T) {
		c, err := NewCryptocurrency("BTC", "Bitcoin", decimal.NewFromInt(45000), mockTime)

		require.NoError(t, err)
		assert.Equal(t, "BTC", c.Symbol)
		assert.Equal(t, "Bitcoin", c.Name)
		assert.True(t, c.Price.Equal(decimal.NewFromInt(45000)))
		assert.Equal(t, fixedTime, c.CreatedAt)
	})

	t.Run("Zero price is allowed", func(t *testing.T) {
		_, err := NewCryptocurrency("NEW1", "New Coin", decimal.Zero, mockTime)
		assert.NoError(t, err)
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			description string
			symbol      string
			name        string
			price       decimal.Decimal
			field       string
		}{
			{"lowercase symbol", "btc", "Bitcoin", decimal.NewFromInt(1), "symbol"},
			{"short symbol", "B", "Bitcoin", decimal.NewFromInt(1), "symbol"},
			{"long symbol", "ABCDEFGHIJK", "Bitcoin", decimal.NewFromInt(1), "symbol"},
			{"punctuation", "BT-C", "Bitcoin", decimal.NewFromInt(1), "symbol"},
			{"empty name", "BTC", "", decimal.NewFromInt(1), "name"},
			{"negative price", "BTC", "Bitcoin", decimal.NewFromInt(-1), "price"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				c, err := NewCryptocurrency(tc.symbol, tc.name, tc.price, mockTime)
				assert.Nil(t, c)

				var vErr *errs.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tc.field, vErr.Field)
			})
		}
	})
}

func TestNormalizeSymbol(t *testing.T) {
	assert.Equal(t, "BTC", NormalizeSymbol(" btc "))
	assert.Equal(t, "DOGE", NormalizeSymbol("Doge"))
}

func TestHolderStatsAverageHolding(t *testing.T) {
	stats := HolderStats{TotalHolders: 3, TotalSupply: decimal.RequireFromString("2.5")}
	assert.Equal(t, "0.8333333333333333", stats.AverageHolding().String())

	assert.True(t, HolderStats{}.AverageHolding().IsZero())
}
