// Package handlers provides command handler functions for curioctl daemon introspection.
//
// This file contains the stats and health command handlers for observing
// the daemon's scheduler state and overall health.
package handlers

import (
	"github.com/curio-dev/curio/cmd/curioctl/client"
	"github.com/curio-dev/curio/cmd/curioctl/config"
	"github.com/curio-dev/curio/cmd/curioctl/display"
	"github.com/curio-dev/curio/cmd/curioctl/utils"
	"github.com/curio-dev/curio/internal/logging"
	"github.com/spf13/cobra"
)

// HandleQueueStats handles the stats subcommand for displaying the
// scheduler's pending and running batch counters.
func HandleQueueStats(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Fetching queue statistics from API server: %s", config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	stats, err := apiClient.GetQueueStats()
	if err != nil {
		logging.Error("Failed to fetch queue statistics: %v", err)
		return err
	}

	display.DisplayQueueStats(stats)
	return nil
}

// HandleHealth handles the health subcommand for checking daemon health,
// version, and uptime.
func HandleHealth(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Checking health of API server: %s", config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	health, err := apiClient.GetHealth()
	if err != nil {
		logging.Error("Health check failed: %v", err)
		return err
	}

	display.DisplayHealth(health)
	return nil
}
