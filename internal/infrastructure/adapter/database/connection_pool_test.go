package database

import (
	"database/sql"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/crypto-exchange/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPoolMonitor_Sample(t *testing.T) {
	sampledAt := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("Keeps the latest snapshot", func(t *testing.T) {
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Now().Return(sampledAt).Once()

		m := NewPoolMonitor(func() sql.DBStats {
			return sql.DBStats{MaxOpenConnections: 10, OpenConnections: 3, InUse: 2, Idle: 1, WaitCount: 4, WaitDuration: time.Millisecond}
		}, coremocks.NewMockLogger(t), tp)

		assert.Equal(t, coreport.PoolStats{}, m.Latest())
		m.sample()

		assert.Equal(t, coreport.PoolStats{
			Open:        3,
			InUse:       2,
			Idle:        1,
			MaxOpen:     10,
			WaitCount:   4,
			WaitTime:    time.Millisecond,
			CollectedAt: sampledAt,
		}, m.Latest())
	})

	t.Run("Warns when the pool is nearly exhausted", func(t *testing.T) {
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Now().Return(sampledAt).Once()
		log := coremocks.NewMockLogger(t)
		log.EXPECT().Warn("Database connection pool nearly exhausted", mock.MatchedBy(func(f map[string]any) bool {
			return f["in_use"] == 9 && f["max_open"] == 10
		})).Once()

		m := NewPoolMonitor(func() sql.DBStats {
			return sql.DBStats{MaxOpenConnections: 10, OpenConnections: 10, InUse: 9, Idle: 1}
		}, log, tp)
		m.sample()
	})

	t.Run("Unlimited pool never warns", func(t *testing.T) {
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Now().Return(sampledAt).Once()

		m := NewPoolMonitor(func() sql.DBStats {
			return sql.DBStats{OpenConnections: 50, InUse: 50}
		}, coremocks.NewMockLogger(t), tp)
		m.sample()

		assert.Equal(t, 50, m.Latest().InUse)
	})
}

func TestPoolMonitor_StopIsIdempotent(t *testing.T) {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(time.Now()).Maybe()

	m := NewPoolMonitor(func() sql.DBStats { return sql.DBStats{} }, coremocks.NewMockLogger(t), tp)
	m.Start(time.Hour)

	m.Stop()
	assert.NotPanics(t, m.Stop)
}
