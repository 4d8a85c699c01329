package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, defaultHost, cfg.Server.Host)
	assert.Equal(t, defaultPort, cfg.Server.Port)
	assert.Equal(t, defaultBodyLimit, cfg.Server.BodyLimit)
	assert.InDelta(t, defaultRateLimit, cfg.Server.RateLimit, 0)
	assert.Equal(t, defaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, defaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, 0, cfg.Engine.Workers)
	assert.Equal(t, defaultMaxBuildings, cfg.Engine.MaxBuildings)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
  rate_limit: 0
  shutdown_timeout: 3s
logging:
  level: debug
engine:
  workers: 4
  max_buildings: 10
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Address())
	assert.Zero(t, cfg.Server.RateLimit)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, log.DEBUG, cfg.Logging.Lvl())
	assert.Equal(t, 4, cfg.Engine.Workers)
	assert.Equal(t, 10, cfg.Engine.MaxBuildings)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SKYLINE_SERVER_PORT", "7070")
	t.Setenv("SKYLINE_LOGGING_LEVEL", "warn")

	cfg, err := LoadConfig(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, log.WARN, cfg.Logging.Lvl())
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"port", "server:\n  port: 70000\n", ErrInvalidPort},
		{"rate", "server:\n  rate_limit: -1\n", ErrInvalidRateLimit},
		{"workers", "engine:\n  workers: -2\n", ErrInvalidWorkers},
		{"max buildings", "engine:\n  max_buildings: 0\n", ErrInvalidMaxBuildings},
		{"log level", "logging:\n  level: loud\n", ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLvlFallback(t *testing.T) {
	assert.Equal(t, log.INFO, LoggingConfig{Level: "bogus"}.Lvl())
	assert.Equal(t, log.OFF, LoggingConfig{Level: "OFF"}.Lvl())
}
