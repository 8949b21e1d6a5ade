package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"

	"medigrip/internal/domain"
)

// Config represents the application configuration
type Config struct {
	API    APISettings    `toml:"api"`
	Search SearchSettings `toml:"search"`
	UI     UISettings     `toml:"ui"`
	Log    LogSettings    `toml:"log"`
}

// APISettings configures the administration API connection
type APISettings struct {
	BaseURL   string `toml:"base_url"`
	TimeoutMS int    `toml:"timeout_ms"`
	Role      string `toml:"role"`
}

// SearchSettings configures the global search overlay
type SearchSettings struct {
	DebounceMS int `toml:"debounce_ms"`
	MinLength  int `toml:"min_length"`
	Limit      int `toml:"limit"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowStatusBar bool `toml:"show_status_bar"`
	MouseEnabled  bool `toml:"mouse_enabled"`
}

// LogSettings configures diagnostic logging
type LogSettings struct {
	File  string `toml:"file"`
	Debug bool   `toml:"debug"`
}

// Timeout returns the API request timeout as a duration
func (a APISettings) Timeout() time.Duration {
	return time.Duration(a.TimeoutMS) * time.Millisecond
}

// Debounce returns the search quiet interval as a duration
func (s SearchSettings) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APISettings{
			BaseURL:   "http://localhost:8000/api",
			TimeoutMS: 5000,
			Role:      string(domain.RoleGuest),
		},
		Search: SearchSettings{
			DebounceMS: 300,
			MinLength:  2,
			Limit:      10,
		},
		UI: UISettings{
			ShowStatusBar: true,
			MouseEnabled:  true,
		},
		Log: LogSettings{
			File: "medigrip.log",
		},
	}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "medigrip", "config.toml")
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist. Values absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration and reports every problem found
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.API.BaseURL == "" {
		result = multierror.Append(result, errors.New("api.base_url must not be empty"))
	}
	if c.API.TimeoutMS <= 0 {
		result = multierror.Append(result, errors.New("api.timeout_ms must be positive"))
	}
	if _, err := domain.ParseRole(c.API.Role); err != nil {
		result = multierror.Append(result, fmt.Errorf("api.role: %w", err))
	}
	if c.Search.DebounceMS < 0 {
		result = multierror.Append(result, errors.New("search.debounce_ms must not be negative"))
	}
	if c.Search.MinLength < 1 {
		result = multierror.Append(result, errors.New("search.min_length must be at least 1"))
	}
	if c.Search.Limit < 1 {
		result = multierror.Append(result, errors.New("search.limit must be at least 1"))
	}

	return result.ErrorOrNil()
}
