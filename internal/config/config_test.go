package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://chromium-i18n.appspot.com/ssl-address", cfg.Source.BaseURL)
	assert.Equal(t, "addressdata/1.0", cfg.Source.UserAgent)
	assert.Equal(t, 30, cfg.Source.TimeoutSecs)
	assert.Equal(t, 3, cfg.Source.MaxRetries)
	assert.InDelta(t, 10, cfg.Source.RateLimit, 0.001)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "addressdata.db", cfg.Storage.Path)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
source:
  base_url: https://mirror.example.com/address
  max_retries: 5
storage:
  driver: postgres
  database_url: postgres://localhost/addressdata
server:
  port: 9090
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://mirror.example.com/address", cfg.Source.BaseURL)
	assert.Equal(t, 5, cfg.Source.MaxRetries)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "postgres://localhost/addressdata", cfg.Storage.DatabaseURL)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Defaults still apply to unset keys.
	assert.Equal(t, 30, cfg.Source.TimeoutSecs)
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("ADDRESSDATA_SERVER_PORT", "7070")
	t.Setenv("ADDRESSDATA_STORAGE_DRIVER", "none")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "none", cfg.Storage.Driver)
}

func TestSourceTimeout(t *testing.T) {
	cfg := SourceConfig{TimeoutSecs: 45}
	assert.Equal(t, "45s", cfg.Timeout().String())
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NotNil(t, zap.L())

	require.Error(t, InitLogger(LogConfig{Level: "nope", Format: "json"}))
}
