package core

import "time"

// Duration is a domain-specific wrapper around time.Duration
type Duration time.Duration

// Day is the unit of the reporting windows
const Day = Duration(24 * time.Hour)

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the clock every timestamp and reporting window is read from
type TimeProvider interface {
	// Now returns the current instant in UTC
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) Duration
	// DaysAgo returns the start of a trailing window of the given number of days
	DaysAgo(days int) time.Time
}
