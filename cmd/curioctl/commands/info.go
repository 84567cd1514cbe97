// Package commands provides daemon introspection command definitions for curioctl.
//
// This file implements the stats and health commands that expose the
// daemon's scheduler counters and health status for operational visibility.

package commands

import (
	"github.com/spf13/cobra"
)

// Stats command (scheduler queue introspection)
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show scheduler queue statistics",
	Long: `Show the daemon's scheduler statistics: pending operations split by
read and write class, plus the sizes of any batches currently executing.

Reading stats never perturbs scheduling.`,
	Example: `  # Show queue statistics
  curioctl stats

  # Output in JSON format
  curioctl -o json stats`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Health command (daemon health check)
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check daemon health",
	Long: `Check the health of the curio daemon including version and uptime.`,
	Example: `  # Check daemon health
  curioctl health

  # Check a remote daemon
  curioctl --api=192.168.1.100:8090 health`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetStatsCommand returns the stats command for handler assignment
func GetStatsCommand() *cobra.Command {
	return statsCmd
}

// GetHealthCommand returns the health command for handler assignment
func GetHealthCommand() *cobra.Command {
	return healthCmd
}
