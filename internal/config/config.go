// Package config handles configuration defaults, file loading, and
// environment overrides for all three binaries.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options.
type Config struct {
	Storage     StorageConfig     `toml:"storage"`
	Validation  ValidationConfig  `toml:"validation"`
	Application ApplicationConfig `toml:"application"`
	Movies      MoviesConfig      `toml:"movies"`
}

// StorageConfig holds task-file configuration.
type StorageConfig struct {
	// Dir is the directory holding the tasks file. Defaults to the
	// current directory, where the original tool kept its file.
	Dir      string `toml:"dir"`
	Filename string `toml:"filename"`
}

// ValidationConfig holds validation rules configuration.
type ValidationConfig struct {
	DescriptionMinLength int `toml:"description_min_length"`
	DescriptionMaxLength int `toml:"description_max_length"`
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	Timeout time.Duration `toml:"-"`
	// TimeoutSeconds is the TOML-facing form of Timeout.
	TimeoutSeconds int  `toml:"timeout_seconds"`
	Verbose        bool `toml:"verbose"`
}

// MoviesConfig holds movie-client configuration.
type MoviesConfig struct {
	BaseURL       string `toml:"base_url"`
	CacheDir      string `toml:"cache_dir"`
	CacheFilename string `toml:"cache_filename"`
	// CacheTTLMinutes controls how long a fetched category is served
	// from the local cache.
	CacheTTLMinutes int  `toml:"cache_ttl_minutes"`
	CacheEnabled    bool `toml:"cache_enabled"`
}

// NewConfig creates a new configuration with sensible defaults.
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultCacheDir := filepath.Join(homeDir, ".cache", "go-projects")

	return &Config{
		Storage: StorageConfig{
			Dir:      ".",
			Filename: "tasks.json",
		},
		Validation: ValidationConfig{
			DescriptionMinLength: 1,
			DescriptionMaxLength: 1024,
		},
		Application: ApplicationConfig{
			Timeout:        30 * time.Second,
			TimeoutSeconds: 30,
			Verbose:        false,
		},
		Movies: MoviesConfig{
			BaseURL:         "https://api.themoviedb.org/3",
			CacheDir:        defaultCacheDir,
			CacheFilename:   "movies.db",
			CacheTTLMinutes: 30,
			CacheEnabled:    true,
		},
	}
}

// GetTasksPath returns the full path to the tasks file.
func (c *Config) GetTasksPath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetMovieCachePath returns the full path to the movie cache database.
func (c *Config) GetMovieCachePath() string {
	return filepath.Join(c.Movies.CacheDir, c.Movies.CacheFilename)
}

// GetCacheTTL returns the movie cache TTL as a duration.
func (c *Config) GetCacheTTL() time.Duration {
	return time.Duration(c.Movies.CacheTTLMinutes) * time.Minute
}

// LoadFromEnvironment loads configuration from environment variables.
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("GOPROJECTS_TASKS_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("GOPROJECTS_TASKS_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if minLen := os.Getenv("GOPROJECTS_DESCRIPTION_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.DescriptionMinLength = n
		}
	}
	if maxLen := os.Getenv("GOPROJECTS_DESCRIPTION_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.DescriptionMaxLength = n
		}
	}
	if timeout := os.Getenv("GOPROJECTS_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("GOPROJECTS_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}
	if url := os.Getenv("GOPROJECTS_MOVIES_BASE_URL"); url != "" {
		c.Movies.BaseURL = url
	}
	if dir := os.Getenv("GOPROJECTS_MOVIES_CACHE_DIR"); dir != "" {
		c.Movies.CacheDir = dir
	}
	if ttl := os.Getenv("GOPROJECTS_MOVIES_CACHE_TTL"); ttl != "" {
		if n, err := strconv.Atoi(ttl); err == nil {
			c.Movies.CacheTTLMinutes = n
		}
	}
	if enabled := os.Getenv("GOPROJECTS_MOVIES_CACHE_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			c.Movies.CacheEnabled = b
		}
	}
	return nil
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "tasks directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "tasks filename cannot be empty"}
	}
	if c.Validation.DescriptionMinLength < 1 {
		return &ConfigError{Field: "validation.description_min_length", Message: "description minimum length must be at least 1"}
	}
	if c.Validation.DescriptionMaxLength < c.Validation.DescriptionMinLength {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be greater than minimum length"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	if c.Movies.BaseURL == "" {
		return &ConfigError{Field: "movies.base_url", Message: "movies base URL cannot be empty"}
	}
	if c.Movies.CacheTTLMinutes < 0 {
		return &ConfigError{Field: "movies.cache_ttl_minutes", Message: "movie cache TTL cannot be negative"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
