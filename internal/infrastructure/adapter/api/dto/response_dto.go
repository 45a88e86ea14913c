package dto

import (
	"time"

	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
)

// DataResponse wraps a single resource
type DataResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// ListResponse wraps a collection of resources
type ListResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   int    `json:"count"`
	Data    []T    `json:"data"`
}

// FilteredListResponse is a listing that echoes its filters and the summed value of its items
type FilteredListResponse[T any] struct {
	Success    bool           `json:"success"`
	Filters    map[string]any `json:"filters"`
	Count      int            `json:"count"`
	TotalValue float64        `json:"total_value"`
	Data       []T            `json:"data"`
}

// OK wraps data in a success envelope
func OK[T any](data T) DataResponse[T] {
	return DataResponse[T]{Success: true, Data: data}
}

// Created wraps a freshly created resource with a confirmation message
func Created[T any](message string, data T) DataResponse[T] {
	return DataResponse[T]{Success: true, Message: message, Data: data}
}

// List wraps items in a counted success envelope; a nil slice renders as []
func List[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Success: true, Count: len(items), Data: items}
}

// mapSlice converts entities to response DTOs
func mapSlice[E any, R any](items []E, fn func(E) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// PoolStatsResponse is the connection pool snapshot reported by /health
type PoolStatsResponse struct {
	OpenConnections    int       `json:"open_connections"`
	InUse              int       `json:"in_use"`
	Idle               int       `json:"idle"`
	MaxOpenConnections int       `json:"max_open_connections"`
	WaitCount          int64     `json:"wait_count"`
	WaitDuration       string    `json:"wait_duration"`
	CollectedAt        time.Time `json:"collected_at"`
}

// NewPoolStatsResponse converts a pool snapshot
func NewPoolStatsResponse(s coreport.PoolStats) PoolStatsResponse {
	return PoolStatsResponse{
		OpenConnections:    s.Open,
		InUse:              s.InUse,
		Idle:               s.Idle,
		MaxOpenConnections: s.MaxOpen,
		WaitCount:          s.WaitCount,
		WaitDuration:       s.WaitTime.String(),
		CollectedAt:        s.CollectedAt,
	}
}
