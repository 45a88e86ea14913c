package user

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
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userMocks struct {
	users   *persistencemocks.MockUserRepository
	wallets *persistencemocks.MockWalletRepository
	fiat    *persistencemocks.MockFiatBalanceRepository
	orders  *persistencemocks.MockOrderRepository
	txs     *persistencemocks.MockTransactionRepository
	hasher  *coremocks.MockPasswordHasher
	time    *coremocks.MockTimeProvider
}

func setupUserUseCase(t *testing.T) (usecase.UserUseCase, *userMocks) {
	m := &userMocks{
		users:   persistencemocks.NewMockUserRepository(t),
		wallets: persistencemocks.NewMockWalletRepository(t),
		fiat:    persistencemocks.NewMockFiatBalanceRepository(t),
		orders:  persistencemocks.NewMockOrderRepository(t),
		txs:     persistencemocks.NewMockTransactionRepository(t),
		hasher:  coremocks.NewMockPasswordHasher(t),
		time:    coremocks.NewMockTimeProvider(t),
	}
	m.time.EXPECT().Now().Return(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)).Maybe()

	uc := NewUserUseCase(m.users, m.wallets, m.fiat, m.orders, m.txs, m.hasher, m.time,
		coremocks.NewMockLogger(t).AllowAll())
	return uc, m
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful user creation stores only the hash", func(t *testing.T) {
		uc, m := setupUserUseCase(t)
		password := gofakeit.Password(true, true, true, false, false, 12)

		m.hasher.EXPECT().Hash(password).Return("$2a$10$hashed", nil).Once()
		m.users.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "john_trader" && u.PasswordHash == "$2a$10$hashed"
		})).Run(func(_ context.Context, u *entity.User) {
			u.ID = 5
		}).Return(nil).Once()

		user, err := uc.CreateUser(ctx, usecase.CreateUserInput{
			Username: "john_trader",
			Email:    "john@example.com",
			Password: password,
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(5), user.ID)
		assert.NotEqual(t, password, user.PasswordHash)
	})

	t.Run("Missing password", func(t *testing.T) {
		uc, _ := setupUserUseCase(t)

		user, err := uc.CreateUser(ctx, usecase.CreateUserInput{Username: "john_trader", Email: "john@example.com"})

		assert.Nil(t, user)
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Invalid email is rejected before hashing", func(t *testing.T) {
		uc, _ := setupUserUseCase(t)

		_, err := uc.CreateUser(ctx, usecase.CreateUserInput{Username: "john_trader", Email: "nope", Password: "secret"})

		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "email", vErr.Field)
	})

	t.Run("Duplicate username or email", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		m.hasher.EXPECT().Hash("secret").Return("hash", nil).Once()
		m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateUser).Once()

		_, err := uc.CreateUser(ctx, usecase.CreateUserInput{Username: "john_trader", Email: "john@example.com", Password: "secret"})

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
		assert.True(t, errs.IsUniquenessError(err))
	})

	t.Run("Hash failure is an internal error", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		m.hasher.EXPECT().Hash("secret").Return("", errors.New("cost too high")).Once()

		_, err := uc.CreateUser(ctx, usecase.CreateUserInput{Username: "john_trader", Email: "john@example.com", Password: "secret"})

		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestUserSubResources(t *testing.T) {
	ctx := context.Background()

	t.Run("Wallets of a missing user", func(t *testing.T) {
		uc, m := setupUserUseCase(t)
		m.users.EXPECT().Exists(mock.Anything, uint64(99)).Return(false, nil).Once()

		wallets, err := uc.GetUserWallets(ctx, 99)

		assert.Nil(t, wallets)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Fiat balances of an existing user", func(t *testing.T) {
		uc, m := setupUserUseCase(t)
		balances := []*entity.FiatBalance{{ID: 1, UserID: 1, Currency: entity.CurrencyTHB}}

		m.users.EXPECT().Exists(mock.Anything, uint64(1)).Return(true, nil).Once()
		m.fiat.EXPECT().ListByUser(mock.Anything, uint64(1)).Return(balances, nil).Once()

		result, err := uc.GetUserFiatBalances(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, balances, result)
	})

	t.Run("Orders filtered by status", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		m.users.EXPECT().Exists(mock.Anything, uint64(1)).Return(true, nil).Once()
		m.orders.EXPECT().List(mock.Anything, entity.OrderFilter{UserID: 1, Status: entity.OrderStatusPending}).
			Return([]*entity.Order{}, nil).Once()

		orders, err := uc.GetUserOrders(ctx, 1, "PENDING")

		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("Orders with an unknown status", func(t *testing.T) {
		uc, _ := setupUserUseCase(t)

		_, err := uc.GetUserOrders(ctx, 1, "OPEN")

		assert.ErrorIs(t, err, errs.ErrInvalidOrderStatus)
	})

	t.Run("Transactions default to fifty rows", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		m.users.EXPECT().Exists(mock.Anything, uint64(2)).Return(true, nil).Once()
		m.txs.EXPECT().List(mock.Anything, entity.TransactionFilter{UserID: 2, TxType: entity.TxTypeTrade, Limit: 50}).
			Return([]*entity.Transaction{}, nil).Once()

		_, err := uc.GetUserTransactions(ctx, 2, "TRADE", 0)

		require.NoError(t, err)
	})
}

func TestGetWalletValue(t *testing.T) {
	uc, m := setupUserUseCase(t)
	btc := &entity.CryptoRef{ID: 1, Symbol: "BTC", Price: decimal.NewFromInt(45000)}
	xrp := &entity.CryptoRef{ID: 3, Symbol: "XRP", Price: decimal.RequireFromString("0.65")}

	m.users.EXPECT().Exists(mock.Anything, uint64(2)).Return(true, nil).Once()
	m.wallets.EXPECT().ListByUser(mock.Anything, uint64(2)).Return([]*entity.Wallet{
		{ID: 3, UserID: 2, CryptoID: 1, Balance: decimal.RequireFromString("1.25"), Crypto: btc},
		{ID: 4, UserID: 2, CryptoID: 3, Balance: decimal.NewFromInt(150), Crypto: xrp},
	}, nil).Once()

	portfolio, err := uc.GetWalletValue(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 2, portfolio.WalletsCount)
	assert.Equal(t, "56347.5", portfolio.TotalValueUSD.String())
	assert.Equal(t, "97.5", portfolio.Breakdown[1].Value.String())
}

func TestGetUserSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("Collects holdings and recent activity", func(t *testing.T) {
		uc, m := setupUserUseCase(t)
		user := &entity.User{ID: 1, Username: "john_trader", Email: "john@example.com"}

		m.users.EXPECT().GetByID(mock.Anything, uint64(1)).Return(user, nil).Once()
		m.wallets.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.Wallet{{ID: 1}, {ID: 2}}, nil).Once()
		m.fiat.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.FiatBalance{{ID: 1}}, nil).Once()
		m.orders.EXPECT().List(mock.Anything, entity.OrderFilter{UserID: 1, Limit: 5}).Return([]*entity.Order{{ID: 1}}, nil).Once()
		m.txs.EXPECT().List(mock.Anything, entity.TransactionFilter{UserID: 1, Limit: 5}).Return([]*entity.Transaction{{ID: 1}, {ID: 5}}, nil).Once()
		m.orders.EXPECT().CountByUser(mock.Anything, uint64(1)).Return(int64(2), nil).Once()
		m.txs.EXPECT().CountByUser(mock.Anything, uint64(1)).Return(int64(3), nil).Once()

		summary, err := uc.GetUserSummary(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, user, summary.User)
		assert.Len(t, summary.Wallets, 2)
		assert.Len(t, summary.FiatBalances, 1)
		assert.Len(t, summary.RecentTransactions, 2)
		assert.Equal(t, int64(2), summary.TotalOrders)
		assert.Equal(t, int64(3), summary.TotalTransactions)
	})

	t.Run("Missing user", func(t *testing.T) {
		uc, m := setupUserUseCase(t)
		m.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(nil, errs.ErrUserNotFound).Once()

		_, err := uc.GetUserSummary(ctx, 7)

		assert.True(t, errs.IsNotFoundError(err))
	})
}

func TestTopTraders(t *testing.T) {
	uc, m := setupUserUseCase(t)
	stats := []entity.TraderStat{{User: entity.UserRef{ID: 1, Username: "john_trader"}, OrderCount: 2}}

	m.users.EXPECT().TopTraders(mock.Anything, DefaultTopTradersLimit).Return(stats, nil).Once()

	result, err := uc.TopTraders(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, stats, result)
}
