package core

import (
	"context"
	"time"
)

// PoolStats is a snapshot of the store's connection pool
type PoolStats struct {
	Open        int
	InUse       int
	Idle        int
	MaxOpen     int
	WaitCount   int64
	WaitTime    time.Duration
	CollectedAt time.Time
}

// HealthChecker reports whether a backing service is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
	// PoolStats returns the latest pool snapshot, zero before the first sample
	PoolStats() PoolStats
}
