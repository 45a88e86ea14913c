package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 3100
  readTimeout: 20
database:
  driver: sqlite
  sqlitePath: test.db
  connMaxLifetime: 10
logger:
  level: debug
seed:
  enabled: true
`

func withConfigDir(t *testing.T, env, body string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(body), 0o600))

	paths := ConfigPaths
	ConfigPaths = []string{dir}
	t.Cleanup(func() { ConfigPaths = paths })

	t.Setenv("CX_ENV", env)
}

func TestLoadConfig(t *testing.T) {
	withConfigDir(t, Test, testYAML)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 3100, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "test.db", cfg.Database.SQLitePath)
	assert.Equal(t, 10*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.True(t, cfg.Seed.Enabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	withConfigDir(t, Test, testYAML)
	t.Setenv("CX_DB_DRIVER", "postgres")
	t.Setenv("CX_DB_HOST", "db.internal")
	t.Setenv("CX_SERVER_PORT", "4000")
	t.Setenv("CX_SEED_ENABLED", "false")
	t.Setenv("CX_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.False(t, cfg.Seed.Enabled)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	withConfigDir(t, Test, testYAML)
	t.Setenv("CX_ENV", "staging")

	_, err := LoadConfig()

	assert.Error(t, err)
}
