// Package handlers provides command handler functions for curioctl selection operations.
//
// This file contains the selection-related command handlers: viewing the
// ordered selection and mutating it through add, remove, and reorder. ID
// arguments are parsed from positional args in both space-separated and
// comma-separated forms.
package handlers

import (
	"github.com/curio-dev/curio/cmd/curioctl/client"
	"github.com/curio-dev/curio/cmd/curioctl/config"
	"github.com/curio-dev/curio/cmd/curioctl/display"
	"github.com/curio-dev/curio/cmd/curioctl/utils"
	"github.com/curio-dev/curio/internal/logging"
	"github.com/spf13/cobra"
)

// HandleSelectionShow handles the selection show subcommand for displaying
// the ordered selection with pagination.
func HandleSelectionShow(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Fetching selection from API server: %s", config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	sel, err := apiClient.GetSelection(config.Selection.Offset, config.Selection.Limit)
	if err != nil {
		logging.Error("Failed to fetch selection: %v", err)
		return err
	}

	display.DisplaySelection(sel)
	logging.Success("Successfully retrieved selection (%d records)", sel.Total)
	return nil
}

// HandleSelectionAdd handles the selection add subcommand. The request is
// all-or-nothing: if any named record is missing the daemon rejects it and
// the error carries the missing IDs.
func HandleSelectionAdd(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	ids, err := utils.ParseIDArgs(args)
	if err != nil {
		return err
	}

	logging.Info("Adding %d records to selection via API server: %s", len(ids), config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	outcome, err := apiClient.SelectRecords(ids)
	if err != nil {
		logging.Error("Failed to add records to selection: %v", err)
		return err
	}

	display.DisplaySelectOutcome(outcome)
	return nil
}

// HandleSelectionRemove handles the selection rm subcommand. Partial removal
// is a success with per-element accounting.
func HandleSelectionRemove(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	ids, err := utils.ParseIDArgs(args)
	if err != nil {
		return err
	}

	logging.Info("Removing %d records from selection via API server: %s", len(ids), config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	outcome, err := apiClient.UnselectRecords(ids)
	if err != nil {
		logging.Error("Failed to remove records from selection: %v", err)
		return err
	}

	display.DisplayUnselectOutcome(outcome)
	return nil
}

// HandleSelectionOrder handles the selection order subcommand. The given
// sequence must be an exact permutation of the current selection.
func HandleSelectionOrder(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	ids, err := utils.ParseIDArgs(args)
	if err != nil {
		return err
	}

	logging.Info("Reordering selection via API server: %s", config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	outcome, err := apiClient.ReorderSelection(ids)
	if err != nil {
		logging.Error("Failed to reorder selection: %v", err)
		return err
	}

	display.DisplayReorderOutcome(outcome)
	return nil
}
