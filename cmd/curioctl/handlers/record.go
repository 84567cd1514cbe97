// Package handlers provides command handler functions for curioctl record operations.
//
// This file contains the catalog-related command handlers: record listing
// with substring filtering and pagination, and record creation with optional
// explicit IDs. Duplicate suppression on creation is surfaced to the operator
// rather than treated as an error.
package handlers

import (
	"github.com/curio-dev/curio/cmd/curioctl/client"
	"github.com/curio-dev/curio/cmd/curioctl/config"
	"github.com/curio-dev/curio/cmd/curioctl/display"
	"github.com/curio-dev/curio/cmd/curioctl/utils"
	"github.com/curio-dev/curio/internal/logging"
	"github.com/spf13/cobra"
)

// HandleRecordList handles the record ls subcommand for browsing the catalog
// with filtering and pagination.
func HandleRecordList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Fetching records from API server: %s", config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	list, err := apiClient.ListRecords(config.Record.Filter, config.Record.Offset, config.Record.Limit)
	if err != nil {
		logging.Error("Failed to fetch records: %v", err)
		return err
	}

	display.DisplayRecords(list)
	logging.Success("Successfully retrieved %d of %d records", list.Count, list.Total)
	return nil
}

// HandleRecordCreate handles the record create subcommand. The record name
// comes from the positional argument; ID, description, and category come
// from flags.
func HandleRecordCreate(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	name := args[0]
	logging.Info("Creating record '%s' via API server: %s", name, config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	outcome, err := apiClient.CreateRecord(config.Record.ID, name,
		config.Record.Description, config.Record.Category)
	if err != nil {
		logging.Error("Failed to create record: %v", err)
		return err
	}

	display.DisplayCreateOutcome(outcome)
	if !outcome.Suppressed {
		logging.Success("Record created: id=%d name=%s", outcome.Record.ID, outcome.Record.Name)
	}
	return nil
}
