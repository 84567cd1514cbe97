// Package main implements the Curio daemon (curiod).
// Curio is a record catalog service that coalesces concurrent API requests
// into deduplicated batches, executing each distinct operation exactly once
// and fanning the result out to every caller that asked for it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/curio-dev/curio/cmd/curiod/config"
	"github.com/curio-dev/curio/internal/api"
	"github.com/curio-dev/curio/internal/catalog"
	"github.com/curio-dev/curio/internal/logging"
	"github.com/curio-dev/curio/internal/queue"
	"github.com/curio-dev/curio/internal/store"
	"github.com/curio-dev/curio/internal/validate"
	"github.com/curio-dev/curio/internal/version"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// Version comes from the centralized version package
var Version = version.CuriodVersion

// Global configuration
var flags struct {
	APIAddr     string // HTTP API bind address
	ConfigFile  string // Optional YAML config file path
	LogLevel    string // Log level: DEBUG, INFO, WARN, ERROR
	ReadWindow  string // READ batch window duration string
	WriteWindow string // WRITE batch window duration string
	MaxPageSize int    // Pagination ceiling
}

// Resolved configuration after file load and flag overrides
var cfg *config.Config

// Root command
var rootCmd = &cobra.Command{
	Use:   "curiod",
	Short: "Curio record catalog daemon with request-coalescing batch execution",
	Long: `Curio daemon (curiod) serves a record catalog over HTTP.

Concurrent identical requests are coalesced: each distinct operation is queued
once, executed once when its batch window fires, and its result is shared by
every waiting caller. Reads batch on a short window, writes on a longer one.`,
	Version: Version,
	Example: `  # Start with defaults (127.0.0.1:8090)
  curiod

  # Bind the API elsewhere and batch reads more aggressively
  curiod --api=0.0.0.0:9000 --read-window=100ms

  # Load settings from a config file, flags still win
  curiod --config=/etc/curio/curiod.yaml --log-level=DEBUG`,
	PreRunE: resolveConfig,
	RunE:    runDaemon,
}

func init() {
	// Network flags
	rootCmd.Flags().StringVar(&flags.APIAddr, "api", "",
		fmt.Sprintf("Address and port for the HTTP API (default 127.0.0.1:%d)", api.DefaultAPIPort))

	// Batching flags
	rootCmd.Flags().StringVar(&flags.ReadWindow, "read-window", "",
		fmt.Sprintf("Batch window for read operations (default %s)", queue.DefaultReadWindow))
	rootCmd.Flags().StringVar(&flags.WriteWindow, "write-window", "",
		fmt.Sprintf("Batch window for write operations (default %s)", queue.DefaultWriteWindow))
	rootCmd.Flags().IntVar(&flags.MaxPageSize, "max-page-size", 0,
		fmt.Sprintf("Maximum records per page (default %d)", api.DefaultMaxPageSize))

	// Operational flags
	rootCmd.Flags().StringVar(&flags.ConfigFile, "config", "",
		"Path to YAML config file (flags override file values)")
	rootCmd.Flags().StringVar(&flags.LogLevel, "log-level", "",
		"Log level: DEBUG, INFO, WARN, ERROR")
}

// Loads the config file if given, layers flag overrides on top, and
// validates the result before running.
func resolveConfig(cmd *cobra.Command, args []string) error {
	var err error
	if flags.ConfigFile != "" {
		cfg, err = config.LoadFile(flags.ConfigFile)
		if err != nil {
			return err
		}
	} else {
		cfg = config.Default()
	}

	// Flags override file values only when explicitly set
	if flags.APIAddr != "" {
		cfg.APIAddr = flags.APIAddr
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	if flags.ReadWindow != "" {
		cfg.ReadWindow = flags.ReadWindow
	}
	if flags.WriteWindow != "" {
		cfg.WriteWindow = flags.WriteWindow
	}
	if flags.MaxPageSize > 0 {
		cfg.MaxPageSize = flags.MaxPageSize
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Daemon requires a specific port (port 0 would let OS choose)
	netAddr, err := validate.ParseBindAddress(cfg.APIAddr)
	if err != nil {
		return fmt.Errorf("invalid API address: %w", err)
	}
	if err := validate.ValidateField(netAddr.Port, "required,min=1,max=65535"); err != nil {
		return fmt.Errorf("daemon requires specific port (not 0): %w", err)
	}

	return nil
}

// Runs the daemon with graceful shutdown handling
func runDaemon(cmd *cobra.Command, args []string) error {
	logging.SetLevel(cfg.LogLevel)

	logging.Info("Starting Curio daemon v%s", Version)
	logging.Info("API binding to %s", cfg.APIAddr)

	queueCfg, err := cfg.QueueConfig()
	if err != nil {
		return err
	}
	logging.Info("Batch windows: read=%s write=%s", queueCfg.ReadWindow, queueCfg.WriteWindow)

	// Wire the pipeline: store -> executor -> scheduler -> API
	st := store.New()
	executor := catalog.NewExecutor(st, cfg.MaxPageSize)
	scheduler := queue.NewScheduler(queueCfg, executor, queue.NewTimerFactory())

	netAddr, err := validate.ParseBindAddress(cfg.APIAddr)
	if err != nil {
		return fmt.Errorf("invalid API address: %w", err)
	}

	apiCfg := api.DefaultConfig()
	apiCfg.BindAddr = netAddr.Host
	apiCfg.BindPort = netAddr.Port
	apiCfg.MaxPageSize = cfg.MaxPageSize
	apiCfg.RateLimit = cfg.RateLimit
	apiCfg.RateBurst = cfg.RateBurst
	apiCfg.Scheduler = scheduler

	if err := apiCfg.Validate(); err != nil {
		return fmt.Errorf("invalid API config: %w", err)
	}

	server := api.NewServer(apiCfg)
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	logging.Success("Curio daemon started successfully")
	logging.Info("Daemon running... Press Ctrl+C to shutdown")

	sig := <-sigCh
	logging.Info("Received signal: %v", sig)

	// Graceful shutdown
	logging.Info("Initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error("Error shutting down API server: %v", err)
	}

	logging.Success("Curio daemon shutdown completed")
	return nil
}

// Main entry point
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
