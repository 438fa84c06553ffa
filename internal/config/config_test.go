package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Mohsinsiddi/escan-mcp/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ETHERSCAN_API_KEY", "")
	t.Setenv("ETHERSCAN_BASE_URL", "")
	t.Setenv("ETHERSCAN_CHAIN_ID", "")
	t.Setenv("ETHERSCAN_TIMEOUT", "")
	t.Setenv("ESCAN_LOG_LEVEL", "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.DefaultChainID)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	data := []byte(`{"api_key":"file-key","default_chain_id":"8453","timeout_seconds":10,"log_level":"debug"}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), data, 0o600))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "8453", cfg.DefaultChainID)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	data := []byte(`{"api_key":"file-key","default_chain_id":"8453"}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), data, 0o600))

	t.Setenv("ETHERSCAN_API_KEY", "env-key")
	t.Setenv("ETHERSCAN_CHAIN_ID", "10")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "10", cfg.DefaultChainID)
}

func TestEnvTimeoutIgnoresGarbage(t *testing.T) {
	clearEnv(t)
	t.Setenv("ETHERSCAN_TIMEOUT", "not-a-number")

	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
}

func TestLoadMalformedFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{broken"), 0o600))

	_, err := config.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestValidateRequiresAPIKey(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ETHERSCAN_API_KEY")

	cfg.APIKey = "key"
	assert.NoError(t, cfg.Validate())
}

func TestSaveAndReload(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	cfg.APIKey = "saved-key"
	cfg.LogLevel = "warn"
	require.NoError(t, cfg.Save())

	reloaded, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "saved-key", reloaded.APIKey)
	assert.Equal(t, "warn", reloaded.LogLevel)
}
