package handler

import (
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Version is reported by the metadata endpoints
const Version = "1.0.0"

// Route describes one entry of the endpoint catalogue
type Route struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// SystemHandler serves metadata and health endpoints
type SystemHandler struct {
	health       coreport.HealthChecker
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	startedAt    time.Time
	catalogue    map[string][]Route
}

// NewSystemHandler creates a new system handler; uptime is measured from this call
func NewSystemHandler(health coreport.HealthChecker, timeProvider coreport.TimeProvider, logger coreport.Logger) *SystemHandler {
	return &SystemHandler{
		health:       health,
		timeProvider: timeProvider,
		logger:       logger,
		startedAt:    timeProvider.Now(),
		catalogue:    map[string][]Route{},
	}
}

// Register records a route in the endpoint catalogue
func (h *SystemHandler) Register(group, method, path, description string) {
	h.catalogue[group] = append(h.catalogue[group], Route{Method: method, Path: path, Description: description})
}

// Root handles GET /
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "Crypto Exchange API",
		"version":     Version,
		"description": "RESTful API for a cryptocurrency exchange",
		"endpoints": gin.H{
			"api":    "/api",
			"health": "/health",
		},
	})
}

// Catalogue handles GET /api
func (h *SystemHandler) Catalogue(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":             "Crypto Exchange API v" + Version,
		"available_endpoints": h.catalogue,
		"database_tables": []string{
			"users",
			"cryptocurrencies",
			"wallets",
			"fiat_balances",
			"orders",
			"transactions",
		},
	})
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	now := h.timeProvider.Now()
	uptime := now.Sub(h.startedAt).Seconds()

	if err := h.health.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "ERROR",
			"database":  "Disconnected",
			"error":     err.Error(),
			"uptime":    uptime,
			"timestamp": now,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"database":  "Connected",
		"pool":      dto.NewPoolStatsResponse(h.health.PoolStats()),
		"uptime":    uptime,
		"timestamp": now,
	})
}

// NotFound answers unknown routes with the top-level entry points
func (h *SystemHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"message": "Route not found",
		"path":    c.Request.URL.Path,
		"available_routes": []string{
			"GET /",
			"GET /health",
			"GET /api",
			"/api/users",
			"/api/cryptocurrencies",
			"/api/wallets",
			"/api/fiat-balances",
			"/api/orders",
			"/api/transactions",
		},
	})
}
