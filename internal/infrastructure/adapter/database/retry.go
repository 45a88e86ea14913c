package database

import (
	"context"
	"math/rand/v2"
	"time"

	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxAttempts   int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// retryConfigFor derives the startup retry policy from the database config
func retryConfigFor(c *Config) RetryConfig {
	attempts := c.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	return RetryConfig{
		MaxAttempts:   attempts,
		RetryInterval: c.RetryDelay,
		MaxInterval:   30 * time.Second,
		JitterFactor:  0.2,
	}
}

// retry runs operation until it succeeds, attempts are exhausted or ctx is done.
// Only startup code uses it; request paths never retry.
func retry(ctx context.Context, config RetryConfig, logger coreport.Logger, operation func() error) error {
	var err error

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		if err = operation(); err == nil {
			return nil
		}

		if attempt == config.MaxAttempts-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Database not ready, retrying", map[string]any{
			"attempt":      attempt + 1,
			"max_attempts": config.MaxAttempts,
			"error":        err.Error(),
			"retry_after":  backoff.String(),
		})

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"max_attempts": config.MaxAttempts,
		"error":        err.Error(),
	})
	return err
}

// calculateBackoffWithJitter computes interval * 2^attempt capped at MaxInterval, plus jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))
	if backoff > config.MaxInterval || backoff < 0 {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
	}
	return backoff
}
