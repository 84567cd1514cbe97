// Package commands provides the complete command tree implementation for curioctl.
//
// This package defines the hierarchical command structure for the curio CLI
// tool, implementing a resource-based command architecture. Commands are
// organized into logical groups matching the daemon's API surface.
//
// COMMAND STRUCTURE:
//   - record: Catalog browsing and record creation (ls, create)
//   - selection: Selection management (show, add, rm, order)
//   - stats: Scheduler queue introspection
//   - health: Daemon health check
//
// All commands follow consistent patterns with standardized flag handling,
// error messages, and output formatting.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "curioctl",
	Short: "CLI tool for the curio record catalog service",
	Long: `Curio CLI (curioctl) is a command-line tool for browsing the curio
record catalog and managing your selection.

The daemon coalesces identical concurrent requests into single executions,
so curioctl commands are safe to script and run in parallel.`,
	SilenceUsage: true,
	Example: `  # List catalog records
  curioctl record ls

  # Filter records by substring
  curioctl record ls --filter=jazz

  # Create a record
  curioctl record create "Blue Train" --category=jazz

  # Show the current selection
  curioctl selection show

  # Add records to the selection
  curioctl selection add 3 7 12

  # Connect to a remote daemon
  curioctl --api=192.168.1.100:8090 record ls

  # Output in JSON format
  curioctl -o json selection show`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	// Add all top-level commands to root
	RootCmd.AddCommand(recordCmd)
	RootCmd.AddCommand(selectionCmd)
	RootCmd.AddCommand(statsCmd)
	RootCmd.AddCommand(healthCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, apiAddrPtr *string, logLevelPtr *string,
	timeoutPtr *int, verbosePtr *bool, outputPtr *string, defaultAPIAddr string) {
	rootCmd.PersistentFlags().StringVar(apiAddrPtr, "api", defaultAPIAddr,
		"API server address of the curio daemon")
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().IntVar(timeoutPtr, "timeout", 8,
		"Connection timeout in seconds")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Show verbose output")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", "table",
		"Output format: table, json")
}
