package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, RetryInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond}

	t.Run("Succeeds after a transient failure", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), cfg, logger.NewNoopLogger(), func() error {
			calls++
			if calls < 2 {
				return errors.New("connection refused")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("Gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), cfg, logger.NewNoopLogger(), func() error {
			calls++
			return errors.New("connection refused")
		})

		assert.EqualError(t, err, "connection refused")
		assert.Equal(t, 3, calls)
	})

	t.Run("Stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := retry(ctx, RetryConfig{MaxAttempts: 5, RetryInterval: time.Hour, MaxInterval: time.Hour}, logger.NewNoopLogger(),
			func() error { return errors.New("down") })

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoff(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, time.Second, calculateBackoffWithJitter(10, cfg))
}
