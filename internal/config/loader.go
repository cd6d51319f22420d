package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Loader handles loading configuration from multiple sources.
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
//  1. Start with defaults
//  2. Override with the TOML config file, if present
//  3. Override with environment variables
//  4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFromFile(); err != nil {
		return nil, err
	}

	// The file expresses the timeout in seconds; convert it before the
	// environment gets its turn so GOPROJECTS_TIMEOUT wins over the file.
	if l.config.Application.TimeoutSeconds > 0 {
		l.config.Application.Timeout = time.Duration(l.config.Application.TimeoutSeconds) * time.Second
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	// Keep the TOML-facing form in sync with the effective duration.
	l.config.Application.TimeoutSeconds = int(l.config.Application.Timeout / time.Second)

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigFilePath returns the path of the TOML config file: the
// GOPROJECTS_CONFIG environment variable when set, otherwise
// ~/.config/go-projects/config.toml.
func ConfigFilePath() string {
	if path := os.Getenv("GOPROJECTS_CONFIG"); path != "" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "go-projects", "config.toml")
}

// loadFromFile applies the TOML config file on top of the defaults. A
// missing file is not an error.
func (l *Loader) loadFromFile() error {
	path := ConfigFilePath()
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if _, err := toml.DecodeFile(path, l.config); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}
