package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activities-service/internal/config"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Address)
	assert.False(t, cfg.EnforceCapacity)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.HTTPShutdownTimeout)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("ACTIVITIES_ADDRESS", ":9090")
	t.Setenv("ACTIVITIES_ENFORCE_CAPACITY", "true")
	t.Setenv("ACTIVITIES_SEED_FILE", "/etc/activities/seed.yaml")
	t.Setenv("ACTIVITIES_CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://mergington.edu")
	t.Setenv("ACTIVITIES_LOG_LEVEL", "debug")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Address)
	assert.True(t, cfg.EnforceCapacity)
	assert.Equal(t, "/etc/activities/seed.yaml", cfg.SeedFile)
	assert.Equal(t, []string{"http://localhost:5173", "https://mergington.edu"}, cfg.CORSAllowedOrigins)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestParse_InvalidLogLevel(t *testing.T) {
	t.Setenv("ACTIVITIES_LOG_LEVEL", "loud")

	_, err := config.Parse()
	assert.Error(t, err)
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ACTIVITIES_STATIC_DIR=./static\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("ACTIVITIES_STATIC_DIR") })

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./static", cfg.StaticDir)
}

func TestLoad_MissingDotEnvIsIgnored(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
