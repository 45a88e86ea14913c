package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/logger"
	timeAdapter "github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/crypto-exchange/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSystemHandler_Health(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		health := coremocks.NewMockHealthChecker(t)
		h := NewSystemHandler(health, timeAdapter.NewRealTimeProvider(), logger.NewNoopLogger())

		health.EXPECT().Ping(mock.Anything).Return(nil)
		health.EXPECT().PoolStats().Return(coreport.PoolStats{
			Open: 4, InUse: 1, Idle: 3, MaxOpen: 25, WaitCount: 2, WaitTime: 1500 * time.Microsecond,
		})

		rec, body := serve(t, http.MethodGet, "/health", h.Health, "/health", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", body["status"])
		assert.Equal(t, "Connected", body["database"])
		assert.Contains(t, body, "uptime")

		pool := body["pool"].(map[string]any)
		assert.Equal(t, float64(4), pool["open_connections"])
		assert.Equal(t, float64(1), pool["in_use"])
		assert.Equal(t, float64(25), pool["max_open_connections"])
		assert.Equal(t, "1.5ms", pool["wait_duration"])
	})

	t.Run("disconnected", func(t *testing.T) {
		health := coremocks.NewMockHealthChecker(t)
		h := NewSystemHandler(health, timeAdapter.NewRealTimeProvider(), logger.NewNoopLogger())

		health.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused"))

		rec, body := serve(t, http.MethodGet, "/health", h.Health, "/health", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "ERROR", body["status"])
		assert.Equal(t, "Disconnected", body["database"])
		assert.Equal(t, "connection refused", body["error"])
		assert.NotContains(t, body, "pool")
	})
}

func TestSystemHandler_Catalogue(t *testing.T) {
	h := NewSystemHandler(coremocks.NewMockHealthChecker(t), timeAdapter.NewRealTimeProvider(), logger.NewNoopLogger())
	h.Register("users", http.MethodGet, "/api/users", "List all users")
	h.Register("users", http.MethodPost, "/api/users", "Create a user")

	rec, body := serve(t, http.MethodGet, "/api", h.Catalogue, "/api", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	endpoints := body["available_endpoints"].(map[string]any)
	assert.Len(t, endpoints["users"], 2)
	assert.Len(t, body["database_tables"], 6)
}

func TestSystemHandler_NotFound(t *testing.T) {
	h := NewSystemHandler(coremocks.NewMockHealthChecker(t), timeAdapter.NewRealTimeProvider(), logger.NewNoopLogger())

	rec, body := serve(t, http.MethodGet, "/missing", h.NotFound, "/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "/missing", body["path"])
}
