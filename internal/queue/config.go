// Package queue provides the request-coalescing batch scheduler for curio.
package queue

import (
	"fmt"
	"time"

	"github.com/curio-dev/curio/internal/validate"
)

const (
	// DefaultReadWindow is the default collection window for read batches.
	// Short, so interactive fetches stay responsive while still coalescing
	// bursts of identical requests.
	DefaultReadWindow = 50 * time.Millisecond

	// DefaultWriteWindow is the default collection window for write batches.
	// Longer than the read window to maximize coalescing of duplicate writes.
	DefaultWriteWindow = 500 * time.Millisecond

	// maxWindow bounds both windows to catch misconfiguration.
	maxWindow = 10 * time.Second
)

// Config holds the scheduler's tunable parameters: one collection window per
// operation class. Everything else about scheduling behavior is fixed policy.
type Config struct {
	ReadWindow  time.Duration `json:"read_window" yaml:"read_window"`   // READ batch collection window
	WriteWindow time.Duration `json:"write_window" yaml:"write_window"` // WRITE batch collection window
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		ReadWindow:  DefaultReadWindow,
		WriteWindow: DefaultWriteWindow,
	}
}

// Validate checks that both windows are usable. Zero or negative windows
// would make timer arming a no-op or a busy loop.
func (c *Config) Validate() error {
	if err := validate.ValidatePositiveDuration(c.ReadWindow, "read window"); err != nil {
		return err
	}
	if err := validate.ValidatePositiveDuration(c.WriteWindow, "write window"); err != nil {
		return err
	}
	if c.ReadWindow > maxWindow {
		return fmt.Errorf("read window too large (max %v), got %v", maxWindow, c.ReadWindow)
	}
	if c.WriteWindow > maxWindow {
		return fmt.Errorf("write window too large (max %v), got %v", maxWindow, c.WriteWindow)
	}
	return nil
}

// window returns the collection window for a class.
func (c *Config) window(class Class) time.Duration {
	if class == ClassRead {
		return c.ReadWindow
	}
	return c.WriteWindow
}
