package database

import (
	"time"

	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
)

// QueryMetrics holds metrics about a database round trip
type QueryMetrics struct {
	Operation    string
	Duration     time.Duration
	Failed       bool
	ErrorMessage string
}

// MetricsCollector times database round trips and warns about slow ones
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: 100 * time.Millisecond,
	}
}

// Measure runs fn and records how long it took
func (c *MetricsCollector) Measure(operation string, fn func() error) (QueryMetrics, error) {
	start := c.timeProvider.Now()
	err := fn()

	metrics := QueryMetrics{
		Operation: operation,
		Duration:  c.timeProvider.Now().Sub(start),
		Failed:    err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	if metrics.Duration > c.slowThreshold {
		c.logger.Warn("Slow database operation detected", map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
		})
	}

	return metrics, err
}
