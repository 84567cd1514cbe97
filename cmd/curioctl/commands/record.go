// Package commands provides record management command definitions for curioctl.
//
// This file implements the record command tree for catalog browsing and
// record creation.
//
// RECORD COMMANDS:
//   - ls: List catalog records with substring filtering and pagination
//   - create: Create a new record, optionally with an explicit ID
package commands

import (
	"github.com/spf13/cobra"
)

// Record command (parent command for record operations)
var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Browse and create catalog records",
	Long: `Commands for browsing the curio record catalog and creating records.

Listing supports case-insensitive substring filtering across name,
description, and category, with offset/limit pagination.`,
}

// Record list command
var recordLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List catalog records",
	Long: `List records in the curio catalog.

Records are returned in ascending ID order. Use --filter for substring
matching and --offset/--limit for pagination.`,
	Example: `  # List all records
  curioctl record ls

  # Filter by substring
  curioctl record ls --filter=jazz

  # Paginate
  curioctl record ls --offset=20 --limit=20

  # Output in JSON format
  curioctl -o json record ls`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Record create command
var recordCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a new catalog record",
	Long: `Create a record in the curio catalog.

The record name is required. An explicit --id adopts that ID if unused;
otherwise the daemon allocates the next available one. Creating a record
with an ID that already exists is a conflict.`,
	Example: `  # Create with an allocated ID
  curioctl record create "Blue Train" --category=jazz

  # Create with an explicit ID and description
  curioctl record create "Kind of Blue" --id=7 --description="1959 studio album"`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// SetupRecordCommands initializes record command relationships
func SetupRecordCommands() {
	recordCmd.AddCommand(recordLsCmd)
	recordCmd.AddCommand(recordCreateCmd)
}

// GetRecordCommands returns record commands for flag and handler assignment
func GetRecordCommands() (lsCmd, createCmd *cobra.Command) {
	return recordLsCmd, recordCreateCmd
}
