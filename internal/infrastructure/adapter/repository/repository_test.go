package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/time"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const duplicateKeyMessage = `ERROR: duplicate key value violates unique constraint "idx_wallet_user_crypto" (SQLSTATE 23505)`

var createdAt = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Sets the generated ID", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())
		user := &entity.User{Username: "john_trader", Email: "john@example.com", PasswordHash: "hash", CreatedAt: createdAt, UpdatedAt: createdAt}

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users" (.+) VALUES (.+) RETURNING "id"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectCommit()

		require.NoError(t, repo.Create(ctx, user))
		assert.Equal(t, uint64(5), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate username", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users" (.+) VALUES (.+) RETURNING "id"`).
			WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`))
		mock.ExpectRollback()

		err := repo.Create(ctx, &entity.User{Username: "john_trader", Email: "john@example.com", PasswordHash: "hash"})

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())

		rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(1, "john_trader", "john@example.com", "hash", createdAt, createdAt)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).WillReturnRows(rows)

		user, err := repo.GetByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "john_trader", user.Username)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("Missing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 999)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Connection failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())

		mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(errors.New("dial tcp 127.0.0.1:5432: connection refused"))

		_, err := repo.GetByID(ctx, 1)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestUserRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())
	faker := gofakeit.New(42)

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"})
	var emails []string
	for id := 3; id >= 1; id-- {
		email := faker.Email()
		emails = append(emails, email)
		rows.AddRow(id, faker.Username(), email, faker.Password(true, true, true, false, false, 20), createdAt, createdAt)
	}
	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY created_at DESC`).WillReturnRows(rows)

	users, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 3)
	for i, u := range users {
		assert.Equal(t, uint64(3-i), u.ID)
		assert.Equal(t, emails[i], u.Email)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := repo.Exists(context.Background(), 42)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWalletRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletRepository(db, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "wallets" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnError(errors.New(duplicateKeyMessage))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &entity.Wallet{UserID: 1, CryptoID: 1, Balance: decimal.RequireFromString("0.5")})

	assert.ErrorIs(t, err, errs.ErrDuplicateWallet)
	assert.True(t, errs.IsUniquenessError(err))
}

func TestWalletRepository_HolderStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletRepository(db, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS total_holders, COALESCE\(SUM\(balance\), 0\) AS total_supply FROM "wallets" WHERE crypto_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"total_holders", "total_supply"}).AddRow(3, "2.50000000"))

	stats, err := repo.HolderStats(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalHolders)
	assert.Equal(t, "2.5", stats.TotalSupply.String())
}

func TestFiatBalanceRepository_TotalByCurrency(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFiatBalanceRepository(db, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())

	mock.ExpectQuery(`FROM "fiat_balances" WHERE currency = \$1`).
		WithArgs("USD").
		WillReturnRows(sqlmock.NewRows([]string{"total_amount", "user_count"}).AddRow("55000.00", 4))

	total, err := repo.TotalByCurrency(context.Background(), entity.CurrencyUSD)

	require.NoError(t, err)
	assert.Equal(t, entity.CurrencyUSD, total.Currency)
	assert.Equal(t, "55000", total.TotalAmount.String())
	assert.Equal(t, int64(4), total.UserCount)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	order := &entity.Order{ID: 1, Status: entity.OrderStatusCompleted, UpdatedAt: createdAt}

	t.Run("Updated", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepository(db, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "orders" SET (.+) WHERE id = \$3`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.UpdateStatus(ctx, order))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No such order", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderRepository(db, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "orders" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		assert.ErrorIs(t, repo.UpdateStatus(ctx, order), errs.ErrOrderNotFound)
	})
}

func TestOrderRepository_GetByIDWithDanglingCrypto(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	repo := NewOrderRepository(db, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE "orders"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "crypto_id", "type", "amount", "price", "status", "created_at", "updated_at"}).
			AddRow(1, 1, 7, "BUY", "0.10000000", "44500.00000000", "PENDING", createdAt, createdAt))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).AddRow(1, "john_trader", "john@example.com"))
	mock.ExpectQuery(`SELECT \* FROM "cryptocurrencies" WHERE "cryptocurrencies"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	order, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "4450", order.TotalValue().String())
	assert.Equal(t, "john_trader", order.User.Username)
	assert.Nil(t, order.Crypto)
}

func TestTransactionRepository_VolumeStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())
	since := createdAt.Add(-7 * 24 * time.Hour)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) AS total_volume, COUNT\(\*\) AS transaction_count FROM "transactions" WHERE crypto_id = \$1 AND created_at >= \$2`).
		WithArgs(2, since).
		WillReturnRows(sqlmock.NewRows([]string{"total_volume", "transaction_count"}).AddRow("3.50000000", 2))

	stats, err := repo.VolumeStats(context.Background(), 2, since)

	require.NoError(t, err)
	assert.Equal(t, "3.5", stats.TotalVolume.String())
	assert.Equal(t, int64(2), stats.TransactionCount)
	assert.Equal(t, "1.75", stats.AverageAmount().String())
}

func TestTransactionRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())
	tx := &entity.Transaction{FromUserID: 1, ToUserID: 2, CryptoID: 1, Amount: decimal.RequireFromString("0.25"), TxType: entity.TxTypeTransfer, CreatedAt: createdAt}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "transactions" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(6))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), tx))
	assert.Equal(t, uint64(6), tx.ID)
}
