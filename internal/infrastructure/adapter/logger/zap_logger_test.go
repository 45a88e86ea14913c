package logger

import (
	"testing"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want core.LogLevel
	}{
		{"debug", core.LogLevelDebug},
		{" WARN ", core.LogLevelWarn},
		{"warning", core.LogLevelWarn},
		{"error", core.LogLevelError},
		{"info", core.LogLevelInfo},
		{"", core.LogLevelInfo},
		{"verbose", core.LogLevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestParseLevel_RoundTrip(t *testing.T) {
	for _, level := range []core.LogLevel{core.LogLevelDebug, core.LogLevelInfo, core.LogLevelWarn, core.LogLevelError} {
		assert.Equal(t, level, ParseLevel(level.String()))
	}
}

func TestZapLoggerLevels(t *testing.T) {
	l, err := NewZapLogger(Options{Format: "json", Level: "warn"})
	require.NoError(t, err)

	assert.Equal(t, core.LogLevelWarn, l.GetLevel())
	assert.False(t, l.atom.Enabled(zapcore.InfoLevel))

	l.SetLevel(core.LogLevelDebug)

	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	assert.True(t, l.atom.Enabled(zapcore.DebugLevel))
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelError)

	assert.Equal(t, core.LogLevelError, l.GetLevel())
	assert.NotPanics(t, func() { l.Info("ignored", map[string]any{"k": "v"}) })
	assert.NoError(t, l.Flush())
}
