package order

import (
	"context"
	"errors"
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

type orderMocks struct {
	orders  *persistencemocks.MockOrderRepository
	users   *persistencemocks.MockUserRepository
	cryptos *persistencemocks.MockCryptocurrencyRepository
	wallets *persistencemocks.MockWalletRepository
	fiat    *persistencemocks.MockFiatBalanceRepository
}

func setupOrderUseCase(t *testing.T) (*OrderUseCase, *orderMocks) {
	m := &orderMocks{
		orders:  persistencemocks.NewMockOrderRepository(t),
		users:   persistencemocks.NewMockUserRepository(t),
		cryptos: persistencemocks.NewMockCryptocurrencyRepository(t),
		wallets: persistencemocks.NewMockWalletRepository(t),
		fiat:    persistencemocks.NewMockFiatBalanceRepository(t),
	}
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)).Maybe()

	uc := NewOrderUseCase(m.orders, m.users, m.cryptos, m.wallets, m.fiat, mockTime,
		coremocks.NewMockLogger(t).AllowAll())
	return uc.(*OrderUseCase), m
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	john := &entity.User{ID: 1, Username: "john_trader", Email: "john@example.com"}
	btc := &entity.Cryptocurrency{ID: 1, Symbol: "BTC", Name: "Bitcoin", Price: dec("45000")}

	t.Run("Buy within the USD balance is executable", func(t *testing.T) {
		uc, m := setupOrderUseCase(t)

		m.users.EXPECT().GetByID(mock.Anything, uint64(1)).Return(john, nil).Once()
		m.cryptos.EXPECT().GetByID(mock.Anything, uint64(1)).Return(btc, nil).Once()
		m.orders.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).Run(func(_ context.Context, order *entity.Order) {
			order.ID = 6
		}).Return(nil).Once()
		m.users.EXPECT().Exists(mock.Anything, uint64(1)).Return(true, nil).Once()
		m.fiat.EXPECT().GetByUserAndCurrency(mock.Anything, uint64(1), entity.CurrencyUSD).
			Return(&entity.FiatBalance{Currency: entity.CurrencyUSD, Amount: dec("10000")}, nil).Once()

		view, err := uc.CreateOrder(ctx, usecase.CreateOrderInput{
			UserID: 1, CryptoID: 1, Type: "BUY", Amount: dec("0.1"), Price: dec("44500"),
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(6), view.Order.ID)
		assert.Equal(t, entity.OrderStatusPending, view.Order.Status)
		assert.Equal(t, "4450", view.Order.TotalValue().String())
		assert.True(t, view.CanExecute)
		assert.Equal(t, "BTC", view.Order.Crypto.Symbol)
		assert.Equal(t, "john_trader", view.Order.User.Username)
	})

	priceCases := []struct {
		name       string
		price      string
		total      string
		canExecute bool
	}{
		{"Buy at exactly the USD balance is executable", "100000", "10000", true},
		{"Buy above the USD balance is not executable", "100001", "10000.1", false},
	}
	for _, pc := range priceCases {
		t.Run(pc.name, func(t *testing.T) {
			uc, m := setupOrderUseCase(t)

			m.users.EXPECT().GetByID(mock.Anything, uint64(1)).Return(john, nil).Once()
			m.cryptos.EXPECT().GetByID(mock.Anything, uint64(1)).Return(btc, nil).Once()
			m.orders.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
			m.users.EXPECT().Exists(mock.Anything, uint64(1)).Return(true, nil).Once()
			m.fiat.EXPECT().GetByUserAndCurrency(mock.Anything, uint64(1), entity.CurrencyUSD).
				Return(&entity.FiatBalance{Currency: entity.CurrencyUSD, Amount: dec("10000")}, nil).Once()

			view, err := uc.CreateOrder(ctx, usecase.CreateOrderInput{
				UserID: 1, CryptoID: 1, Type: "BUY", Amount: dec("0.1"), Price: dec(pc.price),
			})

			require.NoError(t, err)
			assert.Equal(t, pc.total, view.Order.TotalValue().String())
			assert.Equal(t, pc.canExecute, view.CanExecute)
		})
	}

	t.Run("Invalid type is rejected before any lookup", func(t *testing.T) {
		uc, _ := setupOrderUseCase(t)

		view, err := uc.CreateOrder(ctx, usecase.CreateOrderInput{
			UserID: 1, CryptoID: 1, Type: "HOLD", Amount: dec("1"), Price: dec("1"),
		})

		assert.Nil(t, view)
		assert.ErrorIs(t, err, errs.ErrInvalidOrderType)
	})

	t.Run("Missing user", func(t *testing.T) {
		uc, m := setupOrderUseCase(t)
		m.users.EXPECT().GetByID(mock.Anything, uint64(9)).Return(nil, errs.ErrUserNotFound).Once()

		_, err := uc.CreateOrder(ctx, usecase.CreateOrderInput{
			UserID: 9, CryptoID: 1, Type: "SELL", Amount: dec("1"), Price: dec("1"),
		})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Missing cryptocurrency", func(t *testing.T) {
		uc, m := setupOrderUseCase(t)
		m.users.EXPECT().GetByID(mock.Anything, uint64(1)).Return(john, nil).Once()
		m.cryptos.EXPECT().GetByID(mock.Anything, uint64(50)).Return(nil, errs.ErrCryptocurrencyNotFound).Once()

		_, err := uc.CreateOrder(ctx, usecase.CreateOrderInput{
			UserID: 1, CryptoID: 50, Type: "SELL", Amount: dec("1"), Price: dec("1"),
		})

		assert.ErrorIs(t, err, errs.ErrCryptocurrencyNotFound)
	})
}

func TestCanExecute(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		order    *entity.Order
		setup    func(m *orderMocks)
		expected bool
	}{
		{
			name:  "Buy exactly covered",
			order: &entity.Order{UserID: 1, CryptoID: 1, Type: entity.OrderTypeBuy, Amount: dec("0.2"), Price: dec("50000")},
			setup: func(m *orderMocks) {
				m.fiat.EXPECT().GetByUserAndCurrency(mock.Anything, uint64(1), entity.CurrencyUSD).
					Return(&entity.FiatBalance{Amount: dec("10000")}, nil).Once()
			},
			expected: true,
		},
		{
			name:  "Buy without a USD row",
			order: &entity.Order{UserID: 1, CryptoID: 1, Type: entity.OrderTypeBuy, Amount: dec("1"), Price: dec("1")},
			setup: func(m *orderMocks) {
				m.fiat.EXPECT().GetByUserAndCurrency(mock.Anything, uint64(1), entity.CurrencyUSD).
					Return(nil, errs.ErrFiatBalanceNotFound).Once()
			},
			expected: false,
		},
		{
			name:  "Sell within the wallet balance",
			order: &entity.Order{UserID: 2, CryptoID: 2, Type: entity.OrderTypeSell, Amount: dec("1.0"), Price: dec("3250")},
			setup: func(m *orderMocks) {
				m.wallets.EXPECT().GetByUserAndCrypto(mock.Anything, uint64(2), uint64(2)).
					Return(&entity.Wallet{Balance: dec("1.0")}, nil).Once()
			},
			expected: true,
		},
		{
			name:  "Sell above the wallet balance",
			order: &entity.Order{UserID: 1, CryptoID: 3, Type: entity.OrderTypeSell, Amount: dec("100"), Price: dec("0.66")},
			setup: func(m *orderMocks) {
				m.wallets.EXPECT().GetByUserAndCrypto(mock.Anything, uint64(1), uint64(3)).
					Return(&entity.Wallet{Balance: dec("99.99999999")}, nil).Once()
			},
			expected: false,
		},
		{
			name:  "Sell without a wallet",
			order: &entity.Order{UserID: 1, CryptoID: 4, Type: entity.OrderTypeSell, Amount: dec("1"), Price: dec("1")},
			setup: func(m *orderMocks) {
				m.wallets.EXPECT().GetByUserAndCrypto(mock.Anything, uint64(1), uint64(4)).
					Return(nil, errs.ErrWalletNotFound).Once()
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := setupOrderUseCase(t)
			m.users.EXPECT().Exists(mock.Anything, tc.order.UserID).Return(true, nil).Once()
			tc.setup(m)

			ok, err := uc.CanExecute(ctx, tc.order)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}

	t.Run("Missing user is never executable", func(t *testing.T) {
		uc, m := setupOrderUseCase(t)
		m.users.EXPECT().Exists(mock.Anything, uint64(8)).Return(false, nil).Once()

		ok, err := uc.CanExecute(ctx, &entity.Order{UserID: 8, Type: entity.OrderTypeBuy, Amount: dec("1"), Price: dec("1")})

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Store failures propagate", func(t *testing.T) {
		uc, m := setupOrderUseCase(t)
		m.users.EXPECT().Exists(mock.Anything, uint64(1)).Return(true, nil).Once()
		m.fiat.EXPECT().GetByUserAndCurrency(mock.Anything, uint64(1), entity.CurrencyUSD).
			Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := uc.CanExecute(ctx, &entity.Order{UserID: 1, Type: entity.OrderTypeBuy, Amount: dec("1"), Price: dec("1")})

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending to completed", func(t *testing.T) {
		uc, m := setupOrderUseCase(t)
		m.orders.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(&entity.Order{ID: 1, Status: entity.OrderStatusPending}, nil).Once()
		m.orders.EXPECT().UpdateStatus(mock.Anything, mock.MatchedBy(func(o *entity.Order) bool {
			return o.Status == entity.OrderStatusCompleted
		})).Return(nil).Once()

		change, err := uc.UpdateOrderStatus(ctx, 1, "COMPLETED")

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPending, change.OldStatus)
		assert.Equal(t, entity.OrderStatusCompleted, change.NewStatus)
	})

	t.Run("Same status is a no-op write", func(t *testing.T) {
		uc, m := setupOrderUseCase(t)
		m.orders.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(&entity.Order{ID: 1, Status: entity.OrderStatusPending}, nil).Once()

		change, err := uc.UpdateOrderStatus(ctx, 1, "PENDING")

		require.NoError(t, err)
		assert.Equal(t, change.OldStatus, change.NewStatus)
	})

	t.Run("Cancelled orders are final", func(t *testing.T) {
		uc, m := setupOrderUseCase(t)
		m.orders.EXPECT().GetByID(mock.Anything, uint64(5)).
			Return(&entity.Order{ID: 5, Status: entity.OrderStatusCancelled}, nil).Once()

		_, err := uc.UpdateOrderStatus(ctx, 5, "PENDING")

		assert.ErrorIs(t, err, errs.ErrOrderFinalized)
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Unknown status value", func(t *testing.T) {
		uc, _ := setupOrderUseCase(t)

		_, err := uc.UpdateOrderStatus(ctx, 1, "FILLED")

		assert.ErrorIs(t, err, errs.ErrInvalidOrderStatus)
	})

	t.Run("Unknown order", func(t *testing.T) {
		uc, m := setupOrderUseCase(t)
		m.orders.EXPECT().GetByID(mock.Anything, uint64(404)).Return(nil, errs.ErrOrderNotFound).Once()

		_, err := uc.UpdateOrderStatus(ctx, 404, "CANCELLED")

		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})
}

func TestGetMarketData(t *testing.T) {
	ctx := context.Background()
	btc := &entity.Cryptocurrency{ID: 1, Symbol: "BTC", Name: "Bitcoin", Price: dec("45000")}

	t.Run("Spread between best ask and best bid", func(t *testing.T) {
		uc, m := setupOrderUseCase(t)
		m.cryptos.EXPECT().GetByID(mock.Anything, uint64(1)).Return(btc, nil).Once()
		m.orders.EXPECT().ListBook(mock.Anything, uint64(1), entity.OrderTypeBuy, entity.MarketDepth).
			Return([]*entity.Order{{Price: dec("44500")}, {Price: dec("44000")}}, nil).Once()
		m.orders.EXPECT().ListBook(mock.Anything, uint64(1), entity.OrderTypeSell, entity.MarketDepth).
			Return([]*entity.Order{{Price: dec("45250.5")}}, nil).Once()

		book, err := uc.GetMarketData(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "BTC", book.Crypto.Symbol)
		assert.Equal(t, "750.5", book.Spread().String())
	})

	t.Run("Empty sell side", func(t *testing.T) {
		uc, m := setupOrderUseCase(t)
		m.cryptos.EXPECT().GetByID(mock.Anything, uint64(1)).Return(btc, nil).Once()
		m.orders.EXPECT().ListBook(mock.Anything, uint64(1), entity.OrderTypeBuy, entity.MarketDepth).
			Return([]*entity.Order{{Price: dec("44500")}}, nil).Once()
		m.orders.EXPECT().ListBook(mock.Anything, uint64(1), entity.OrderTypeSell, entity.MarketDepth).
			Return([]*entity.Order{}, nil).Once()

		book, err := uc.GetMarketData(ctx, 1)

		require.NoError(t, err)
		assert.True(t, book.Spread().IsZero())
	})

	t.Run("Empty buy side", func(t *testing.T) {
		uc, m := setupOrderUseCase(t)
		m.cryptos.EXPECT().GetByID(mock.Anything, uint64(1)).Return(btc, nil).Once()
		m.orders.EXPECT().ListBook(mock.Anything, uint64(1), entity.OrderTypeBuy, entity.MarketDepth).
			Return([]*entity.Order{}, nil).Once()
		m.orders.EXPECT().ListBook(mock.Anything, uint64(1), entity.OrderTypeSell, entity.MarketDepth).
			Return([]*entity.Order{{Price: dec("45250.5")}}, nil).Once()

		book, err := uc.GetMarketData(ctx, 1)

		require.NoError(t, err)
		assert.Empty(t, book.BuyOrders)
		assert.Len(t, book.SellOrders, 1)
		assert.True(t, book.Spread().IsZero())
	})

	t.Run("Crossed book has a negative spread", func(t *testing.T) {
		uc, m := setupOrderUseCase(t)
		m.cryptos.EXPECT().GetByID(mock.Anything, uint64(1)).Return(btc, nil).Once()
		m.orders.EXPECT().ListBook(mock.Anything, uint64(1), entity.OrderTypeBuy, entity.MarketDepth).
			Return([]*entity.Order{{Price: dec("45100")}, {Price: dec("44500")}}, nil).Once()
		m.orders.EXPECT().ListBook(mock.Anything, uint64(1), entity.OrderTypeSell, entity.MarketDepth).
			Return([]*entity.Order{{Price: dec("45007.5")}, {Price: dec("45250.5")}}, nil).Once()

		book, err := uc.GetMarketData(ctx, 1)

		require.NoError(t, err)
		assert.True(t, book.Spread().Equal(dec("-92.5")), "spread = %s", book.Spread())
		assert.True(t, book.Spread().IsNegative())
	})

	t.Run("Store failure", func(t *testing.T) {
		uc, m := setupOrderUseCase(t)
		m.cryptos.EXPECT().GetByID(mock.Anything, uint64(1)).Return(btc, nil).Once()
		m.orders.EXPECT().ListBook(mock.Anything, uint64(1), entity.OrderTypeBuy, entity.MarketDepth).
			Return(nil, errors.New("connection reset")).Once()

		_, err := uc.GetMarketData(ctx, 1)

		assert.Error(t, err)
	})
}

func TestGetOrder(t *testing.T) {
	uc, m := setupOrderUseCase(t)
	order := &entity.Order{ID: 2, UserID: 2, CryptoID: 2, Type: entity.OrderTypeSell, Amount: dec("1.0"), Price: dec("3250"), Status: entity.OrderStatusCompleted}

	m.orders.EXPECT().GetByID(mock.Anything, uint64(2)).Return(order, nil).Once()
	m.users.EXPECT().Exists(mock.Anything, uint64(2)).Return(true, nil).Once()
	m.wallets.EXPECT().GetByUserAndCrypto(mock.Anything, uint64(2), uint64(2)).Return(nil, errs.ErrWalletNotFound).Once()

	view, err := uc.GetOrder(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, order, view.Order)
	assert.False(t, view.CanExecute)
}
