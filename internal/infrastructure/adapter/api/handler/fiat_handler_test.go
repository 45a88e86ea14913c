package handler

import (
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

func TestFiatBalanceHandler_ConvertBalance(t *testing.T) {
	t.Run("converted", func(t *testing.T) {
		uc := ucmocks.NewMockFiatBalanceUseCase(t)
		h := NewFiatBalanceHandler(uc, logger.NewNoopLogger())

		rate := decimal.RequireFromString("35")
		uc.EXPECT().ConvertBalance(mock.Anything, uint64(1), "THB", mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(rate)
		})).Return(&usecase.FiatConversion{
			Balance: &entity.FiatBalance{
				ID:       1,
				UserID:   1,
				Currency: "USD",
				Amount:   decimal.RequireFromString("10000"),
			},
			Target:    "THB",
			Rate:      rate,
			Converted: decimal.RequireFromString("350000"),
		}, nil)

		rec, body := serve(t, http.MethodGet, "/api/fiat-balances/:id/convert", h.ConvertBalance,
			"/api/fiat-balances/1/convert?to=THB&rate=35", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		data := body["data"].(map[string]any)
		assert.Equal(t, "USD", data["from_currency"])
		assert.Equal(t, "THB", data["to_currency"])
		assert.Equal(t, float64(350000), data["converted_amount"])
	})

	t.Run("malformed rate", func(t *testing.T) {
		uc := ucmocks.NewMockFiatBalanceUseCase(t)
		h := NewFiatBalanceHandler(uc, logger.NewNoopLogger())

		rec, body := serve(t, http.MethodGet, "/api/fiat-balances/:id/convert", h.ConvertBalance,
			"/api/fiat-balances/1/convert?to=THB&rate=abc", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, float64(errs.CodeInvalidAmount), body["code"])
	})

	t.Run("balance missing", func(t *testing.T) {
		uc := ucmocks.NewMockFiatBalanceUseCase(t)
		h := NewFiatBalanceHandler(uc, logger.NewNoopLogger())

		uc.EXPECT().ConvertBalance(mock.Anything, uint64(77), "THB", mock.Anything).Return(nil, errs.ErrFiatBalanceNotFound)

		rec, _ := serve(t, http.MethodGet, "/api/fiat-balances/:id/convert", h.ConvertBalance,
			"/api/fiat-balances/77/convert?to=THB&rate=0.9", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestFiatBalanceHandler_CreateFiatBalance(t *testing.T) {
	uc := ucmocks.NewMockFiatBalanceUseCase(t)
	h := NewFiatBalanceHandler(uc, logger.NewNoopLogger())

	uc.EXPECT().CreateFiatBalance(mock.Anything, mock.Anything).Return(nil, errs.ErrDuplicateFiatBalance)

	rec, body := serve(t, http.MethodPost, "/api/fiat-balances", h.CreateFiatBalance, "/api/fiat-balances",
		`{"user_id":1,"currency":"USD","amount":5}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, float64(errs.CodeDuplicateResource), body["code"])
}
