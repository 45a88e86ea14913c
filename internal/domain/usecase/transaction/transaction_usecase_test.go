package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/crypto-exchange/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/crypto-exchange/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

type txMocks struct {
	txs     *persistencemocks.MockTransactionRepository
	users   *persistencemocks.MockUserRepository
	cryptos *persistencemocks.MockCryptocurrencyRepository
}

func setupTransactionUseCase(t *testing.T) (usecase.TransactionUseCase, *txMocks) {
	m := &txMocks{
		txs:     persistencemocks.NewMockTransactionRepository(t),
		users:   persistencemocks.NewMockUserRepository(t),
		cryptos: persistencemocks.NewMockCryptocurrencyRepository(t),
	}
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedNow).Maybe()
	mockTime.EXPECT().DaysAgo(mock.Anything).RunAndReturn(func(days int) time.Time {
		return fixedNow.Add(-time.Duration(days) * 24 * time.Hour)
	}).Maybe()

	return NewTransactionUseCase(m.txs, m.users, m.cryptos, mockTime, coremocks.NewMockLogger(t).AllowAll()), m
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	jane := &entity.User{ID: 2, Username: "jane_crypto"}
	bob := &entity.User{ID: 3, Username: "bob_investor"}
	eth := &entity.Cryptocurrency{ID: 2, Symbol: "ETH", Name: "Ethereum", Price: decimal.RequireFromString("3200.50")}

	t.Run("Records a trade priced at the current spot", func(t *testing.T) {
		uc, m := setupTransactionUseCase(t)

		m.users.EXPECT().GetByID(mock.Anything, uint64(2)).Return(jane, nil).Once()
		m.users.EXPECT().GetByID(mock.Anything, uint64(3)).Return(bob, nil).Once()
		m.cryptos.EXPECT().GetByID(mock.Anything, uint64(2)).Return(eth, nil).Once()
		m.txs.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.TxType == entity.TxTypeTrade && tx.CreatedAt.Equal(fixedNow)
		})).Return(nil).Once()

		tx, err := uc.CreateTransaction(ctx, usecase.CreateTransactionInput{
			FromUserID: 2, ToUserID: 3, CryptoID: 2, Amount: decimal.RequireFromString("1.5"), TxType: "TRADE",
		})

		require.NoError(t, err)
		assert.Equal(t, "4800.75", tx.Value().Value.String())
		assert.Equal(t, "jane_crypto", tx.FromUser.Username)
		assert.Equal(t, "bob_investor", tx.ToUser.Username)
	})

	t.Run("Missing sender", func(t *testing.T) {
		uc, m := setupTransactionUseCase(t)
		m.users.EXPECT().GetByID(mock.Anything, uint64(10)).Return(nil, errs.ErrUserNotFound).Once()

		_, err := uc.CreateTransaction(ctx, usecase.CreateTransactionInput{
			FromUserID: 10, ToUserID: 3, CryptoID: 2, Amount: decimal.NewFromInt(1), TxType: "TRANSFER",
		})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Equal(t, "from user not found", err.Error())
	})

	t.Run("Missing receiver", func(t *testing.T) {
		uc, m := setupTransactionUseCase(t)
		m.users.EXPECT().GetByID(mock.Anything, uint64(2)).Return(jane, nil).Once()
		m.users.EXPECT().GetByID(mock.Anything, uint64(11)).Return(nil, errs.ErrUserNotFound).Once()

		_, err := uc.CreateTransaction(ctx, usecase.CreateTransactionInput{
			FromUserID: 2, ToUserID: 11, CryptoID: 2, Amount: decimal.NewFromInt(1), TxType: "TRANSFER",
		})

		assert.Equal(t, "to user not found", err.Error())
		assert.True(t, errs.IsNotFoundError(err))
	})

	t.Run("Missing cryptocurrency", func(t *testing.T) {
		uc, m := setupTransactionUseCase(t)
		m.users.EXPECT().GetByID(mock.Anything, uint64(2)).Return(jane, nil).Once()
		m.users.EXPECT().GetByID(mock.Anything, uint64(3)).Return(bob, nil).Once()
		m.cryptos.EXPECT().GetByID(mock.Anything, uint64(9)).Return(nil, errs.ErrCryptocurrencyNotFound).Once()

		_, err := uc.CreateTransaction(ctx, usecase.CreateTransactionInput{
			FromUserID: 2, ToUserID: 3, CryptoID: 9, Amount: decimal.NewFromInt(1), TxType: "TRANSFER",
		})

		assert.ErrorIs(t, err, errs.ErrCryptocurrencyNotFound)
	})

	t.Run("Unknown tx type", func(t *testing.T) {
		uc, _ := setupTransactionUseCase(t)

		_, err := uc.CreateTransaction(ctx, usecase.CreateTransactionInput{
			FromUserID: 2, ToUserID: 3, CryptoID: 2, Amount: decimal.NewFromInt(1), TxType: "AIRDROP",
		})

		assert.ErrorIs(t, err, errs.ErrInvalidTxType)
	})

	t.Run("Missing tx type is rejected before any lookup", func(t *testing.T) {
		uc, m := setupTransactionUseCase(t)

		tx, err := uc.CreateTransaction(ctx, usecase.CreateTransactionInput{
			FromUserID: 2, ToUserID: 3, CryptoID: 2, Amount: decimal.NewFromInt(1),
		})

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrInvalidTxType)
		m.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		m.txs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestVolumeStats(t *testing.T) {
	ctx := context.Background()
	eth := &entity.Cryptocurrency{ID: 2, Symbol: "ETH", Name: "Ethereum"}

	t.Run("Seven day window by default", func(t *testing.T) {
		uc, m := setupTransactionUseCase(t)
		since := fixedNow.Add(-7 * 24 * time.Hour)

		m.cryptos.EXPECT().GetByID(mock.Anything, uint64(2)).Return(eth, nil).Once()
		m.txs.EXPECT().VolumeStats(mock.Anything, uint64(2), since).
			Return(entity.VolumeStats{TotalVolume: decimal.RequireFromString("3.5"), TransactionCount: 2}, nil).Once()

		report, err := uc.VolumeStats(ctx, 2, 0)

		require.NoError(t, err)
		assert.Equal(t, 7, report.Stats.PeriodDays)
		assert.Equal(t, "3.5", report.Stats.TotalVolume.String())
		assert.Equal(t, int64(2), report.Stats.TransactionCount)
		assert.Equal(t, "1.75", report.Stats.AverageAmount().String())
		assert.Equal(t, "ETH", report.Crypto.Symbol)
	})

	t.Run("No transactions in the window", func(t *testing.T) {
		uc, m := setupTransactionUseCase(t)

		m.cryptos.EXPECT().GetByID(mock.Anything, uint64(2)).Return(eth, nil).Once()
		m.txs.EXPECT().VolumeStats(mock.Anything, uint64(2), fixedNow.Add(-24*time.Hour)).
			Return(entity.VolumeStats{TotalVolume: decimal.Zero}, nil).Once()

		report, err := uc.VolumeStats(ctx, 2, 1)

		require.NoError(t, err)
		assert.True(t, report.Stats.AverageAmount().IsZero())
	})

	t.Run("Negative window", func(t *testing.T) {
		uc, _ := setupTransactionUseCase(t)

		_, err := uc.VolumeStats(ctx, 2, -3)

		assert.True(t, errs.IsValidationError(err))
	})
}

func TestListings(t *testing.T) {
	ctx := context.Background()

	t.Run("List applies the default limit", func(t *testing.T) {
		uc, m := setupTransactionUseCase(t)
		m.txs.EXPECT().List(mock.Anything, entity.TransactionFilter{CryptoID: 1, Limit: 50}).Return([]*entity.Transaction{}, nil).Once()

		_, err := uc.ListTransactions(ctx, entity.TransactionFilter{CryptoID: 1})
		require.NoError(t, err)
	})

	t.Run("Recent activity defaults to twenty", func(t *testing.T) {
		uc, m := setupTransactionUseCase(t)
		m.txs.EXPECT().List(mock.Anything, entity.TransactionFilter{Limit: 20}).Return([]*entity.Transaction{}, nil).Once()

		_, err := uc.RecentActivity(ctx, 0)
		require.NoError(t, err)
	})
}
