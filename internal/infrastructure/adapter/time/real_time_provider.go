package time

import (
	"time"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the wall clock.
// Timestamps are UTC and truncated to microseconds, the precision the store keeps.
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current UTC time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// DaysAgo counts whole 24h days back from now, not calendar days
func (p *RealTimeProvider) DaysAgo(days int) time.Time {
	return p.Now().Add(-time.Duration(days) * core.Day.Std())
}
