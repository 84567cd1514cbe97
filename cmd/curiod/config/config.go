// Package config provides configuration management for the curiod daemon.
//
// Configuration comes from an optional YAML file overridden by CLI flags.
// Batch windows are expressed as duration strings ("50ms", "1s") in both
// sources and resolved against defaults when absent.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/curio-dev/curio/internal/api"
	"github.com/curio-dev/curio/internal/logging"
	"github.com/curio-dev/curio/internal/queue"
	"github.com/curio-dev/curio/internal/validate"
	"gopkg.in/yaml.v3"
)

// Config holds all daemon configuration. Zero values mean "use the default".
type Config struct {
	APIAddr     string  `yaml:"api_addr"`      // HTTP API bind address as "host:port"
	LogLevel    string  `yaml:"log_level"`     // DEBUG, INFO, WARN, or ERROR
	ReadWindow  string  `yaml:"read_window"`   // READ batch window as a duration string
	WriteWindow string  `yaml:"write_window"`  // WRITE batch window as a duration string
	MaxPageSize int     `yaml:"max_page_size"` // Pagination ceiling
	RateLimit   float64 `yaml:"rate_limit"`    // Sustained requests/second (0 disables)
	RateBurst   int     `yaml:"rate_burst"`    // Rate limiter burst allowance
}

// Default returns the daemon configuration defaults.
func Default() *Config {
	return &Config{
		APIAddr:     fmt.Sprintf("127.0.0.1:%d", api.DefaultAPIPort),
		LogLevel:    "INFO",
		ReadWindow:  queue.DefaultReadWindow.String(),
		WriteWindow: queue.DefaultWriteWindow.String(),
		MaxPageSize: api.DefaultMaxPageSize,
		RateLimit:   api.DefaultRateLimit,
		RateBurst:   api.DefaultRateBurst,
	}
}

// LoadFile reads a YAML config file over the defaults. Fields absent from the
// file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ParseDurationField parses a duration string from a config field, returning
// a descriptive error naming the field on failure.
func ParseDurationField(field, raw string) (time.Duration, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", field, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: duration must be >= 0", field)
	}
	return d, nil
}

// parseDurationOrDefault resolves an optional duration field against its default.
func parseDurationOrDefault(field, raw string, def time.Duration) (time.Duration, error) {
	d, err := ParseDurationField(field, raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return def, nil
	}
	return d, nil
}

// QueueConfig resolves the window fields into a scheduler configuration.
func (c *Config) QueueConfig() (*queue.Config, error) {
	readWindow, err := parseDurationOrDefault("read_window", c.ReadWindow, queue.DefaultReadWindow)
	if err != nil {
		return nil, err
	}
	writeWindow, err := parseDurationOrDefault("write_window", c.WriteWindow, queue.DefaultWriteWindow)
	if err != nil {
		return nil, err
	}

	qc := &queue.Config{ReadWindow: readWindow, WriteWindow: writeWindow}
	if err := qc.Validate(); err != nil {
		return nil, err
	}
	return qc, nil
}

// Validate checks the full daemon configuration before startup.
func (c *Config) Validate() error {
	if _, err := validate.ParseBindAddress(c.APIAddr); err != nil {
		return fmt.Errorf("invalid API address: %w", err)
	}
	if err := logging.ValidateLogLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := c.QueueConfig(); err != nil {
		return err
	}
	if c.MaxPageSize <= 0 {
		return fmt.Errorf("max page size must be positive, got %d", c.MaxPageSize)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative, got %f", c.RateLimit)
	}
	return nil
}
