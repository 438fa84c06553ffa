// Package config loads server configuration from a JSON file with
// environment-variable overrides. The environment always wins, so a
// deployment can run with no config file at all.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	defaultChainID = "1"
	defaultTimeout = 30

	configFile = "config.json"

	// Environment overrides.
	envAPIKey   = "ETHERSCAN_API_KEY"
	envBaseURL  = "ETHERSCAN_BASE_URL"
	envChainID  = "ETHERSCAN_CHAIN_ID"
	envTimeout  = "ETHERSCAN_TIMEOUT"
	envLogLevel = "ESCAN_LOG_LEVEL"
)

// Config holds all escan-mcp configuration.
type Config struct {
	APIKey         string `json:"api_key"`
	BaseURL        string `json:"base_url,omitempty"`
	DefaultChainID string `json:"default_chain_id"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	LogLevel       string `json:"log_level,omitempty"` // "debug" | "info" | "warn" | "error"

	// internal: config dir path used for Save()
	configDir string
}

// Load reads config from dir (missing files fall back to defaults), then
// applies environment overrides. dir defaults to ~/.escan-mcp.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".escan-mcp")
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		cfg.configDir = dir
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg.applyEnv()

	if cfg.DefaultChainID == "" {
		cfg.DefaultChainID = defaultChainID
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaultTimeout
	}
	return cfg, nil
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("no API key configured: set %s or api_key in %s", envAPIKey, filepath.Join(c.configDir, configFile))
	}
	return nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(envBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(envChainID); v != "" {
		c.DefaultChainID = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TimeoutSeconds = n
		}
	}
	if v := os.Getenv(envLogLevel); v != "" {
		c.LogLevel = v
	}
}

func defaults(dir string) *Config {
	return &Config{
		DefaultChainID: defaultChainID,
		TimeoutSeconds: defaultTimeout,
		configDir:      dir,
	}
}
