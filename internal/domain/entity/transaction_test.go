package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	mockTime, fixedTime := fixedTimeProvider(t)

	t.Run("Transfer", func(t *testing.T) {
		tx, err := NewTransaction(1, 2, 1, decimal.RequireFromString("0.25"), "TRANSFER", mockTime)

		require.NoError(t, err)
		assert.Equal(t, TxTypeTransfer, tx.TxType)
		assert.Equal(t, fixedTime, tx.CreatedAt)
	})

	t.Run("Self transfer is allowed", func(t *testing.T) {
		tx, err := NewTransaction(1, 1, 1, decimal.RequireFromString("0.1"), "DEPOSIT", mockTime)
		require.NoError(t, err)
		assert.Equal(t, TxTypeDeposit, tx.TxType)
	})

	t.Run("Invalid tx type", func(t *testing.T) {
		_, err := NewTransaction(1, 2, 1, decimal.NewFromInt(1), "GIFT", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidTxType)
	})

	t.Run("Missing tx type", func(t *testing.T) {
		for _, txType := range []string{"", "   "} {
			tx, err := NewTransaction(1, 2, 1, decimal.NewFromInt(1), txType, mockTime)
			assert.Nil(t, tx)
			assert.ErrorIs(t, err, errs.ErrInvalidTxType)
			assert.ErrorIs(t, err, errs.ErrValidation)
		}
	})

	t.Run("Invalid references and amount", func(t *testing.T) {
		_, err := NewTransaction(0, 2, 1, decimal.NewFromInt(1), "TRANSFER", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidID)

		_, err = NewTransaction(1, 2, 1, decimal.Zero, "TRANSFER", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestTransactionValue(t *testing.T) {
	eth := &CryptoRef{ID: 2, Symbol: "ETH", Price: decimal.RequireFromString("3200.50")}

	tx := &Transaction{Amount: decimal.RequireFromString("1.5"), Crypto: eth}
	v := tx.Value()
	assert.Equal(t, "ETH", v.Symbol)
	assert.Equal(t, "4800.75", v.Value.String())

	orphan := &Transaction{Amount: decimal.NewFromInt(3)}
	assert.Equal(t, UnknownSymbol, orphan.Value().Symbol)
	assert.True(t, orphan.Value().Value.IsZero())

	assert.Equal(t, "4800.75", TotalTransactionValue([]*Transaction{tx, orphan}).String())
}

func TestVolumeStatsAverage(t *testing.T) {
	stats := VolumeStats{PeriodDays: 30, TotalVolume: decimal.RequireFromString("3.5"), TransactionCount: 2}
	assert.Equal(t, "1.75", stats.AverageAmount().String())

	assert.True(t, VolumeStats{PeriodDays: 7}.AverageAmount().IsZero())
}
