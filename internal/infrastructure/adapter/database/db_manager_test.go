package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *Config {
	return &Config{
		Driver:          DriverSQLite,
		SQLitePath:      filepath.Join(t.TempDir(), "exchange.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
		ConnMaxIdleTime: time.Minute,
		QueryTimeout:    time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
	}
}

func TestManager_ConnectPingClose(t *testing.T) {
	m := NewManager(sqliteConfig(t), logger.NewNoopLogger(), timeadapter.NewRealTimeProvider())

	db, err := m.Connect(context.Background())
	require.NoError(t, err)
	require.NotNil(t, db)

	assert.NoError(t, m.Ping(context.Background()))
	assert.Equal(t, 1, m.PoolStats().MaxOpen)

	require.NoError(t, m.Close())
	assert.Error(t, m.Ping(context.Background()))
}

func TestManager_ConnectRejectsInvalidConfig(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Driver = "mysql"
	m := NewManager(cfg, logger.NewNoopLogger(), timeadapter.NewRealTimeProvider())

	_, err := m.Connect(context.Background())
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestManager_PingBeforeConnect(t *testing.T) {
	m := NewManager(sqliteConfig(t), logger.NewNoopLogger(), timeadapter.NewRealTimeProvider())
	assert.Error(t, m.Ping(context.Background()))
	assert.Equal(t, coreport.PoolStats{}, m.PoolStats())
	assert.NoError(t, m.Close())
}
