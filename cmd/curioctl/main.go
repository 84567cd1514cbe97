// Package main provides the entry point for the curio CLI tool (curioctl).
//
// This package implements the main executable for the catalog management CLI
// that lets operators browse records, manage their selection, and observe the
// daemon's coalescing scheduler.
//
// INITIALIZATION FLOW:
// 1. Command structure setup with hierarchical organization
// 2. Flag configuration for global and command-specific options
// 3. Handler assignment linking commands to API operations
// 4. Configuration validation and CLI state management
// 5. Command execution with proper error handling and exit codes
package main

import (
	"os"

	"github.com/curio-dev/curio/cmd/curioctl/commands"
	"github.com/curio-dev/curio/cmd/curioctl/config"
	"github.com/curio-dev/curio/cmd/curioctl/handlers"
	"github.com/spf13/cobra"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Setup all command structures
	commands.SetupCommands()
	commands.SetupRecordCommands()
	commands.SetupSelectionCommands()

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd, &config.Global.APIAddr, &config.Global.LogLevel,
		&config.Global.Timeout, &config.Global.Verbose, &config.Global.Output, config.DefaultAPIAddr)

	// Setup record command flags
	recordLsCmd, recordCreateCmd := commands.GetRecordCommands()
	setupRecordFlags(recordLsCmd, recordCreateCmd)

	// Setup selection command flags
	selectionShowCmd, _, _, _ := commands.GetSelectionCommands()
	setupSelectionFlags(selectionShowCmd)

	// Setup command handlers
	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	recordLsCmd, recordCreateCmd := commands.GetRecordCommands()
	recordLsCmd.RunE = handlers.HandleRecordList
	recordCreateCmd.RunE = handlers.HandleRecordCreate

	selectionShowCmd, selectionAddCmd, selectionRmCmd, selectionOrderCmd := commands.GetSelectionCommands()
	selectionShowCmd.RunE = handlers.HandleSelectionShow
	selectionAddCmd.RunE = handlers.HandleSelectionAdd
	selectionRmCmd.RunE = handlers.HandleSelectionRemove
	selectionOrderCmd.RunE = handlers.HandleSelectionOrder

	commands.GetStatsCommand().RunE = handlers.HandleQueueStats
	commands.GetHealthCommand().RunE = handlers.HandleHealth
}

// setupRecordFlags configures flags for record commands
func setupRecordFlags(lsCmd, createCmd *cobra.Command) {
	// Record list flags
	lsCmd.Flags().StringVar(&config.Record.Filter, "filter", "",
		"Case-insensitive substring filter across name, description, and category")
	lsCmd.Flags().IntVar(&config.Record.Offset, "offset", 0, "Pagination offset")
	lsCmd.Flags().IntVar(&config.Record.Limit, "limit", 0,
		"Page size (0 uses the server default)")

	// Record create flags
	createCmd.Flags().Int64Var(&config.Record.ID, "id", 0,
		"Explicit record ID (0 lets the server allocate)")
	createCmd.Flags().StringVar(&config.Record.Description, "description", "", "Record description")
	createCmd.Flags().StringVar(&config.Record.Category, "category", "",
		"Record category (lowercase letters, digits, hyphens, underscores)")
}

// setupSelectionFlags configures flags for selection commands
func setupSelectionFlags(showCmd *cobra.Command) {
	showCmd.Flags().IntVar(&config.Selection.Offset, "offset", 0, "Pagination offset")
	showCmd.Flags().IntVar(&config.Selection.Limit, "limit", 0,
		"Page size (0 uses the server default)")
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
