package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/logger"
	ucmocks "github.com/amirhossein-jamali/crypto-exchange/mocks/port/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("created with value", func(t *testing.T) {
		uc := ucmocks.NewMockTransactionUseCase(t)
		h := NewTransactionHandler(uc, logger.NewNoopLogger())

		uc.EXPECT().CreateTransaction(mock.Anything, mock.MatchedBy(func(in usecase.CreateTransactionInput) bool {
			return in.FromUserID == 2 && in.ToUserID == 3 && in.TxType == "TRADE"
		})).Return(&entity.Transaction{
			ID:         6,
			FromUserID: 2,
			ToUserID:   3,
			CryptoID:   2,
			Amount:     decimal.RequireFromString("1.5"),
			TxType:     entity.TxTypeTrade,
			Crypto:     &entity.CryptoRef{ID: 2, Symbol: "ETH", Name: "Ethereum", Price: decimal.RequireFromString("3200.50")},
		}, nil)

		rec, body := serve(t, http.MethodPost, "/api/transactions", h.CreateTransaction, "/api/transactions",
			`{"from_user_id":2,"to_user_id":3,"crypto_id":2,"amount":1.5,"tx_type":"TRADE"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		data := body["data"].(map[string]any)
		assert.Equal(t, 4800.75, data["value_usd"])
		assert.Equal(t, "ETH", data["symbol"])
	})

	t.Run("sender missing", func(t *testing.T) {
		uc := ucmocks.NewMockTransactionUseCase(t)
		h := NewTransactionHandler(uc, logger.NewNoopLogger())

		uc.EXPECT().CreateTransaction(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("from %w", errs.ErrUserNotFound))

		rec, body := serve(t, http.MethodPost, "/api/transactions", h.CreateTransaction, "/api/transactions",
			`{"from_user_id":99,"to_user_id":3,"crypto_id":2,"amount":1,"tx_type":"TRANSFER"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "From user not found", body["message"])
	})

	t.Run("missing tx type", func(t *testing.T) {
		uc := ucmocks.NewMockTransactionUseCase(t)
		h := NewTransactionHandler(uc, logger.NewNoopLogger())

		rec, body := serve(t, http.MethodPost, "/api/transactions", h.CreateTransaction, "/api/transactions",
			`{"from_user_id":1,"to_user_id":2,"crypto_id":1,"amount":1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, float64(errs.CodeValidation), body["code"])
		assert.Contains(t, body["error"], "TxType")
		uc.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	})

	t.Run("bad tx type", func(t *testing.T) {
		uc := ucmocks.NewMockTransactionUseCase(t)
		h := NewTransactionHandler(uc, logger.NewNoopLogger())

		uc.EXPECT().CreateTransaction(mock.Anything, mock.Anything).
			Return(nil, errs.WrapValidationError("tx_type", errs.ErrInvalidTxType))

		rec, _ := serve(t, http.MethodPost, "/api/transactions", h.CreateTransaction, "/api/transactions",
			`{"from_user_id":1,"to_user_id":2,"crypto_id":1,"amount":1,"tx_type":"AIRDROP"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	uc := ucmocks.NewMockTransactionUseCase(t)
	h := NewTransactionHandler(uc, logger.NewNoopLogger())

	uc.EXPECT().ListTransactions(mock.Anything, entity.TransactionFilter{CryptoID: 1, Limit: 0}).Return([]*entity.Transaction{
		{ID: 1, CryptoID: 1, Amount: decimal.RequireFromString("0.25"), TxType: entity.TxTypeTransfer, Crypto: btcRef()},
		{ID: 5, CryptoID: 1, Amount: decimal.RequireFromString("0.1"), TxType: entity.TxTypeDeposit},
	}, nil)

	rec, body := serve(t, http.MethodGet, "/api/transactions", h.ListTransactions, "/api/transactions?crypto_id=1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, float64(11250), body["total_value"])

	data := body["data"].([]any)
	assert.Equal(t, entity.UnknownSymbol, data[1].(map[string]any)["symbol"])
	assert.Equal(t, float64(0), data[1].(map[string]any)["value_usd"])
}

func TestTransactionHandler_VolumeStats(t *testing.T) {
	t.Run("default window", func(t *testing.T) {
		uc := ucmocks.NewMockTransactionUseCase(t)
		h := NewTransactionHandler(uc, logger.NewNoopLogger())

		uc.EXPECT().VolumeStats(mock.Anything, uint64(1), 0).Return(&usecase.VolumeReport{
			Crypto: *btcRef(),
			Stats: entity.VolumeStats{
				PeriodDays:       7,
				TotalVolume:      decimal.RequireFromString("3.5"),
				TransactionCount: 2,
			},
		}, nil)

		rec, body := serve(t, http.MethodGet, "/api/transactions/:id/volume", h.VolumeStats, "/api/transactions/1/volume", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		stats := body["volume_stats"].(map[string]any)
		assert.Equal(t, float64(7), stats["period_days"])
		assert.Equal(t, 3.5, stats["total_volume"])
		assert.Equal(t, float64(2), stats["transaction_count"])
		assert.Equal(t, 1.75, stats["average_amount"])
	})

	t.Run("negative days", func(t *testing.T) {
		uc := ucmocks.NewMockTransactionUseCase(t)
		h := NewTransactionHandler(uc, logger.NewNoopLogger())

		rec, _ := serve(t, http.MethodGet, "/api/transactions/:id/volume", h.VolumeStats, "/api/transactions/1/volume?days=-3", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown crypto", func(t *testing.T) {
		uc := ucmocks.NewMockTransactionUseCase(t)
		h := NewTransactionHandler(uc, logger.NewNoopLogger())

		uc.EXPECT().VolumeStats(mock.Anything, uint64(42), 30).Return(nil, errs.ErrCryptocurrencyNotFound)

		rec, body := serve(t, http.MethodGet, "/api/transactions/:id/volume", h.VolumeStats, "/api/transactions/42/volume?days=30", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Cryptocurrency not found", body["message"])
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(errs.NewValidationError("email", "invalid")))
	assert.Equal(t, http.StatusBadRequest, statusFor(errs.ErrDuplicateWallet))
	assert.Equal(t, http.StatusNotFound, statusFor(fmt.Errorf("to %w", errs.ErrUserNotFound)))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
}
