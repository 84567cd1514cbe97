// Package handlers provides command handler functions for curioctl.
//
// This package contains all the command execution logic for curioctl
// commands, organized by resource type for maintainability and clean
// separation of concerns.
//
// The package is organized as follows:
// - record.go: Catalog browsing and record creation (ls, create)
// - selection.go: Selection management (show, add, rm, order)
// - info.go: Daemon introspection (stats, health)
//
// All handlers follow consistent patterns:
// - cobra.Command RunE function signature for CLI integration
// - Standardized error handling and logging using the logging package
// - Consistent output formatting through the display package
// - Clean separation between API communication and presentation logic
package handlers
