package database

import (
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
)

// poolSaturation is the in-use share of MaxOpen above which a sample warns
const poolSaturation = 0.8

// PoolMonitor samples connection pool statistics on an interval and keeps the latest snapshot
type PoolMonitor struct {
	stats        func() sql.DBStats
	logger       coreport.Logger
	timeProvider coreport.TimeProvider

	mu     sync.RWMutex
	latest coreport.PoolStats

	stop     chan struct{}
	stopOnce sync.Once
}

// NewPoolMonitor creates a monitor reading from stats, usually (*sql.DB).Stats
func NewPoolMonitor(stats func() sql.DBStats, logger coreport.Logger, timeProvider coreport.TimeProvider) *PoolMonitor {
	return &PoolMonitor{
		stats:        stats,
		logger:       logger,
		timeProvider: timeProvider,
		stop:         make(chan struct{}),
	}
}

// Start takes a first sample and keeps sampling every interval until Stop
func (m *PoolMonitor) Start(interval time.Duration) {
	m.sample()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.sample()
			case <-m.stop:
				return
			}
		}
	}()
}

// Stop ends sampling; calling it more than once is safe
func (m *PoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// Latest returns the most recent snapshot
func (m *PoolMonitor) Latest() coreport.PoolStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.latest
}

func (m *PoolMonitor) sample() {
	s := m.stats()
	snap := coreport.PoolStats{
		Open:        s.OpenConnections,
		InUse:       s.InUse,
		Idle:        s.Idle,
		MaxOpen:     s.MaxOpenConnections,
		WaitCount:   s.WaitCount,
		WaitTime:    s.WaitDuration,
		CollectedAt: m.timeProvider.Now(),
	}

	m.mu.Lock()
	m.latest = snap
	m.mu.Unlock()

	// MaxOpen 0 means unlimited
	if snap.MaxOpen > 0 && float64(snap.InUse) > float64(snap.MaxOpen)*poolSaturation {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     snap.InUse,
			"max_open":   snap.MaxOpen,
			"idle":       snap.Idle,
			"wait_count": snap.WaitCount,
			"wait_time":  snap.WaitTime.String(),
		})
	}
}
