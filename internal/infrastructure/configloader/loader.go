package configloader

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port                string `yaml:"port"`
	ReadTimeoutSeconds  int    `yaml:"readTimeoutSeconds"`
	WriteTimeoutSeconds int    `yaml:"writeTimeoutSeconds"`
	IdleTimeoutSeconds  int    `yaml:"idleTimeoutSeconds"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// APIConfig holds configuration for the read-only chain API.
type APIConfig struct {
	DefaultPageSize           int      `yaml:"defaultPageSize"`
	MaxPageSize               int      `yaml:"maxPageSize"`
	SearchCacheTTLMinutes     int      `yaml:"searchCacheTTLMinutes"`
	SearchCacheCleanupMinutes int      `yaml:"searchCacheCleanupMinutes"`
	RateLimitPerSecond        float64  `yaml:"rateLimitPerSecond"`
	RateLimitBurst            int      `yaml:"rateLimitBurst"`
	AllowedOrigins            []string `yaml:"allowedOrigins"`
}

// MetricsConfig toggles the Prometheus endpoint. Enabled defaults to true when unset.
type MetricsConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// IsEnabled reports whether the metrics endpoint should be served.
func (m MetricsConfig) IsEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}

// Config is the top-level configuration structure.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	API     APIConfig     `yaml:"api"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Load reads the YAML configuration file from the given path and unmarshals it.
// A missing file is not an error: defaults are used instead.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logrus.Warnf("Config file %s not found, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
		logrus.Infof("Server.Port not set, defaulting to %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeoutSeconds <= 0 {
		cfg.Server.ReadTimeoutSeconds = 5
	}
	if cfg.Server.WriteTimeoutSeconds <= 0 {
		cfg.Server.WriteTimeoutSeconds = 10
	}
	if cfg.Server.IdleTimeoutSeconds <= 0 {
		cfg.Server.IdleTimeoutSeconds = 60
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.API.DefaultPageSize <= 0 {
		cfg.API.DefaultPageSize = 100
		logrus.Infof("API.DefaultPageSize not set, defaulting to %d", cfg.API.DefaultPageSize)
	}
	if cfg.API.MaxPageSize <= 0 {
		cfg.API.MaxPageSize = 1000
	}
	if cfg.API.SearchCacheTTLMinutes <= 0 {
		cfg.API.SearchCacheTTLMinutes = 60
		logrus.Infof("API.SearchCacheTTLMinutes not set, defaulting to %d minutes", cfg.API.SearchCacheTTLMinutes)
	}
	if cfg.API.SearchCacheCleanupMinutes <= 0 {
		cfg.API.SearchCacheCleanupMinutes = 2 * cfg.API.SearchCacheTTLMinutes
	}
	if cfg.API.RateLimitPerSecond <= 0 {
		cfg.API.RateLimitPerSecond = 50
	}
	if cfg.API.RateLimitBurst <= 0 {
		cfg.API.RateLimitBurst = 100
	}
	if len(cfg.API.AllowedOrigins) == 0 {
		cfg.API.AllowedOrigins = []string{"*"}
	}

	if cfg.Metrics.Enabled == nil {
		enabled := true
		cfg.Metrics.Enabled = &enabled
		logrus.Infof("Metrics.Enabled not set, defaulting to %t", enabled)
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	if c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("api.defaultPageSize (%d) exceeds api.maxPageSize (%d)", c.API.DefaultPageSize, c.API.MaxPageSize)
	}
	if c.Metrics.Path[0] != '/' {
		return fmt.Errorf("metrics.path %q must start with '/'", c.Metrics.Path)
	}
	return nil
}
