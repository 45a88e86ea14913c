package crypto

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

type cryptoMocks struct {
	cryptos *persistencemocks.MockCryptocurrencyRepository
	wallets *persistencemocks.MockWalletRepository
	orders  *persistencemocks.MockOrderRepository
	txs     *persistencemocks.MockTransactionRepository
}

func setupCryptoUseCase(t *testing.T) (usecase.CryptocurrencyUseCase, *cryptoMocks) {
	m := &cryptoMocks{
		cryptos: persistencemocks.NewMockCryptocurrencyRepository(t),
		wallets: persistencemocks.NewMockWalletRepository(t),
		orders:  persistencemocks.NewMockOrderRepository(t),
		txs:     persistencemocks.NewMockTransactionRepository(t),
	}
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)).Maybe()

	return NewCryptocurrencyUseCase(m.cryptos, m.wallets, m.orders, m.txs, mockTime,
		coremocks.NewMockLogger(t).AllowAll()), m
}

func TestCreateCryptocurrency(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid listing", func(t *testing.T) {
		uc, m := setupCryptoUseCase(t)
		m.cryptos.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *entity.Cryptocurrency) bool {
			return c.Symbol == "SOL" && c.Price.Equal(decimal.NewFromInt(98))
		})).Return(nil).Once()

		c, err := uc.CreateCryptocurrency(ctx, usecase.CreateCryptocurrencyInput{
			Symbol: "SOL", Name: "Solana", Price: decimal.NewFromInt(98),
		})

		require.NoError(t, err)
		assert.Equal(t, "Solana", c.Name)
	})

	t.Run("Lowercase symbol never reaches the store", func(t *testing.T) {
		uc, _ := setupCryptoUseCase(t)

		_, err := uc.CreateCryptocurrency(ctx, usecase.CreateCryptocurrencyInput{
			Symbol: "sol", Name: "Solana", Price: decimal.NewFromInt(98),
		})

		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Duplicate symbol", func(t *testing.T) {
		uc, m := setupCryptoUseCase(t)
		m.cryptos.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateCryptocurrency).Once()

		_, err := uc.CreateCryptocurrency(ctx, usecase.CreateCryptocurrencyInput{
			Symbol: "BTC", Name: "Bitcoin", Price: decimal.NewFromInt(1),
		})

		assert.ErrorIs(t, err, errs.ErrDuplicateCryptocurrency)
	})
}

func TestGetCryptocurrencyBySymbol(t *testing.T) {
	uc, m := setupCryptoUseCase(t)
	btc := &entity.Cryptocurrency{ID: 1, Symbol: "BTC"}
	m.cryptos.EXPECT().GetBySymbol(mock.Anything, "BTC").Return(btc, nil).Once()

	c, err := uc.GetCryptocurrencyBySymbol(context.Background(), " btc")

	require.NoError(t, err)
	assert.Equal(t, btc, c)
}

func TestMarketOverview(t *testing.T) {
	ctx := context.Background()

	t.Run("Aggregates holders and activity", func(t *testing.T) {
		uc, m := setupCryptoUseCase(t)
		btc := &entity.Cryptocurrency{ID: 1, Symbol: "BTC", Name: "Bitcoin", Price: decimal.NewFromInt(45000)}

		m.cryptos.EXPECT().GetByID(mock.Anything, uint64(1)).Return(btc, nil).Once()
		m.wallets.EXPECT().HolderStats(mock.Anything, uint64(1)).
			Return(entity.HolderStats{TotalHolders: 3, TotalSupply: decimal.RequireFromString("2.5")}, nil).Once()
		m.orders.EXPECT().CountByCrypto(mock.Anything, uint64(1)).Return(int64(1), nil).Once()
		m.txs.EXPECT().CountByCrypto(mock.Anything, uint64(1)).Return(int64(2), nil).Once()

		overview, err := uc.MarketOverview(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "BTC", overview.Crypto.Symbol)
		assert.Equal(t, int64(3), overview.Holders.TotalHolders)
		assert.Equal(t, int64(1), overview.RecentOrders)
		assert.Equal(t, int64(2), overview.RecentTransactions)
	})

	t.Run("Unknown cryptocurrency", func(t *testing.T) {
		uc, m := setupCryptoUseCase(t)
		m.cryptos.EXPECT().GetByID(mock.Anything, uint64(42)).Return(nil, errs.ErrCryptocurrencyNotFound).Once()

		_, err := uc.MarketOverview(ctx, 42)

		assert.ErrorIs(t, err, errs.ErrCryptocurrencyNotFound)
	})
}

func TestRankings(t *testing.T) {
	ctx := context.Background()

	t.Run("Top by volume uses the default limit", func(t *testing.T) {
		uc, m := setupCryptoUseCase(t)
		m.cryptos.EXPECT().TopByVolume(mock.Anything, DefaultTopVolumeLimit).Return([]entity.CryptoVolume{}, nil).Once()

		_, err := uc.TopByVolume(ctx, -1)
		require.NoError(t, err)
	})

	t.Run("Top holders of a listed asset", func(t *testing.T) {
		uc, m := setupCryptoUseCase(t)
		m.cryptos.EXPECT().GetByID(mock.Anything, uint64(3)).Return(&entity.Cryptocurrency{ID: 3}, nil).Once()
		m.wallets.EXPECT().TopHolders(mock.Anything, uint64(3), 5).Return([]*entity.Wallet{{ID: 8}}, nil).Once()

		holders, err := uc.TopHolders(ctx, 3, 5)

		require.NoError(t, err)
		assert.Len(t, holders, 1)
	})
}
