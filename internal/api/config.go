// Package api provides the HTTP API server for the curio service.
//
// This file defines configuration structures and validation logic for the REST
// API server that exposes the record catalog and selection operations. The
// configuration covers network binding parameters, the pagination ceiling, and
// the request rate limit, plus the reference to the scheduler that every
// operation is submitted through.
package api

import (
	"fmt"

	"github.com/curio-dev/curio/internal/queue"
	"github.com/curio-dev/curio/internal/validate"
)

const (
	// DefaultAPIPort is the default port for the HTTP API server.
	DefaultAPIPort = 8090

	// DefaultMaxPageSize is the default pagination ceiling.
	DefaultMaxPageSize = 100

	// DefaultRateLimit is the default sustained requests-per-second budget.
	DefaultRateLimit = 200

	// DefaultRateBurst is the default burst allowance on top of the
	// sustained rate.
	DefaultRateBurst = 50
)

// Config holds all configuration parameters required for running the HTTP API
// server. Serves as a dependency injection container: the scheduler is the
// only collaborator handlers are allowed to reach, keeping all record access
// funneled through submit.
type Config struct {
	BindAddr    string           // HTTP server bind address (e.g., "127.0.0.1")
	BindPort    int              // HTTP server bind port
	MaxPageSize int              // Pagination ceiling for list endpoints
	RateLimit   float64          // Sustained requests per second (0 disables limiting)
	RateBurst   int              // Burst allowance for the rate limiter
	Scheduler   *queue.Scheduler // Coalescing scheduler all operations go through
}

// DefaultConfig creates a Config with sensible defaults for local development.
// The scheduler must be set by the caller.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:    "127.0.0.1",
		BindPort:    DefaultAPIPort,
		MaxPageSize: DefaultMaxPageSize,
		RateLimit:   DefaultRateLimit,
		RateBurst:   DefaultRateBurst,
		Scheduler:   nil, // Must be set by caller
	}
}

// Validate checks that all required fields are properly configured so the
// server can start successfully.
func (c *Config) Validate() error {
	if err := validate.ValidateRequiredString(c.BindAddr, "bind address"); err != nil {
		return err
	}
	if err := validate.ValidatePortRange(c.BindPort); err != nil {
		return fmt.Errorf("bind port validation failed: %w", err)
	}
	if c.MaxPageSize <= 0 {
		return fmt.Errorf("max page size must be positive, got %d", c.MaxPageSize)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative, got %f", c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateBurst <= 0 {
		return fmt.Errorf("rate burst must be positive when rate limiting is enabled, got %d", c.RateBurst)
	}
	if c.Scheduler == nil {
		return fmt.Errorf("scheduler cannot be nil")
	}
	return nil
}
