// Package commands provides selection management command definitions for curioctl.
//
// This file implements the selection command tree for viewing and mutating
// the user's ordered selection of catalog records.
//
// SELECTION COMMANDS:
//   - show: Display the selection with its stable order
//   - add: Add record IDs to the selection (all must exist)
//   - rm: Remove record IDs from the selection (partial removal allowed)
//   - order: Replace the selection order with an exact permutation
package commands

import (
	"github.com/spf13/cobra"
)

// Selection command (parent command for selection operations)
var selectionCmd = &cobra.Command{
	Use:   "selection",
	Short: "Manage the record selection",
	Long: `Commands for managing your ordered selection of catalog records.

The selection preserves insertion order. Adding is all-or-nothing: if any
named record is missing from the catalog, nothing is added. Removing is
per-element: missing IDs are counted, present ones are removed.`,
}

// Selection show command
var selectionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current selection",
	Long: `Show the selection in its stable order.

The full ordered ID list is always displayed alongside the resolved page,
so pagination never hides the selection's shape.`,
	Example: `  # Show the selection
  curioctl selection show

  # Paginate the resolved records
  curioctl selection show --offset=10 --limit=10

  # Output in JSON format
  curioctl -o json selection show`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Selection add command
var selectionAddCmd = &cobra.Command{
	Use:   "add ID...",
	Short: "Add records to the selection",
	Long: `Add record IDs to the selection.

Every named record must exist in the catalog or the whole request is
rejected with the missing IDs. Already-selected IDs are reported but
not duplicated.`,
	Example: `  # Add three records
  curioctl selection add 3 7 12

  # Comma-separated also works
  curioctl selection add 3,7,12`,
	Args: cobra.MinimumNArgs(1),
	// RunE will be set by the main package that imports this
}

// Selection remove command
var selectionRmCmd = &cobra.Command{
	Use:   "rm ID...",
	Short: "Remove records from the selection",
	Long: `Remove record IDs from the selection.

Partial removal is a success: IDs not present in the selection are counted
as not found while the rest are removed. Relative order of the remaining
selection is preserved.`,
	Example: `  # Remove two records
  curioctl selection rm 3 7`,
	Args: cobra.MinimumNArgs(1),
	// RunE will be set by the main package that imports this
}

// Selection order command
var selectionOrderCmd = &cobra.Command{
	Use:   "order ID...",
	Short: "Replace the selection order",
	Long: `Replace the selection order with the given ID sequence.

The sequence must be an exact permutation of the current selection: every
selected ID exactly once, no additions, no omissions.`,
	Example: `  # Reorder a three-record selection
  curioctl selection order 12 3 7`,
	Args: cobra.MinimumNArgs(1),
	// RunE will be set by the main package that imports this
}

// SetupSelectionCommands initializes selection command relationships
func SetupSelectionCommands() {
	selectionCmd.AddCommand(selectionShowCmd)
	selectionCmd.AddCommand(selectionAddCmd)
	selectionCmd.AddCommand(selectionRmCmd)
	selectionCmd.AddCommand(selectionOrderCmd)
}

// GetSelectionCommands returns selection commands for flag and handler assignment
func GetSelectionCommands() (showCmd, addCmd, rmCmd, orderCmd *cobra.Command) {
	return selectionShowCmd, selectionAddCmd, selectionRmCmd, selectionOrderCmd
}
