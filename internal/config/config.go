// Package config loads process configuration from MODKIT_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name
const Prefix = "MODKIT"

// Config holds all application configuration.
type Config struct {
	// Worker count for extract and copy; 0 means one per CPU
	Threads int `envconfig:"THREADS" default:"0"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`

	// DataDir holds the machine id and benchmark scratch files
	DataDir string `envconfig:"DATA_DIR"`

	PrimaryExts []string `envconfig:"PRIMARY_EXTS" default:".package"`
	ScriptExts  []string `envconfig:"SCRIPT_EXTS" default:".ts4script"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// ResolveDataDir returns DataDir, or a "modkit" directory under the user
// configuration directory when unset.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate data directory: %w", err)
	}
	return filepath.Join(base, "modkit"), nil
}
