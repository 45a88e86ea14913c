package migration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/model"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/security"
	timeadapter "github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/time"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "migrate.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestMigrationManager_MigrateAll(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	mgr := NewMigrationManager(db, logger.NewNoopLogger(), timeadapter.NewRealTimeProvider())

	require.NoError(t, mgr.MigrateAll(ctx))

	version, err := mgr.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)

	for _, table := range []string{"users", "cryptocurrencies", "wallets", "fiat_balances", "orders", "transactions"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex("orders", "idx_orders_book"))
	assert.True(t, db.Migrator().HasIndex("transactions", "idx_transactions_crypto_created"))
	assert.False(t, db.Migrator().HasIndex("transactions", "idx_transactions_created_at_brin"))

	// Rerunning is a no-op
	require.NoError(t, mgr.MigrateAll(ctx))

	var versions int64
	require.NoError(t, db.Model(&model.MigrationVersion{}).Count(&versions).Error)
	assert.Equal(t, int64(2), versions)
}

func TestSeeder_Seed(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	tp := timeadapter.NewRealTimeProvider()
	log := logger.NewNoopLogger()

	require.NoError(t, NewMigrationManager(db, log, tp).MigrateAll(ctx))

	seeder := NewSeeder(db, log, tp, security.NewBcryptHasher(bcrypt.MinCost))

	seeded, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	counts := map[any]int64{
		&model.User{}:           4,
		&model.Cryptocurrency{}: 4,
		&model.FiatBalance{}:    7,
		&model.Wallet{}:         8,
		&model.Order{}:          5,
		&model.Transaction{}:    5,
	}
	for m, want := range counts {
		var got int64
		require.NoError(t, db.Model(m).Count(&got).Error)
		assert.Equal(t, want, got)
	}

	var john model.User
	require.NoError(t, db.Where("username = ?", "john_trader").First(&john).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(john.PasswordHash), []byte("trader-john-123")))

	var btc model.Cryptocurrency
	require.NoError(t, db.Where("symbol = ?", "BTC").First(&btc).Error)
	assert.True(t, decimal.NewFromInt(45000).Equal(btc.Price))

	// A populated database is left alone
	seeded, err = seeder.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
}
