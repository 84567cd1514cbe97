// Package config provides configuration management for the curioctl CLI.
package config

import "github.com/curio-dev/curio/internal/version"

const (
	DefaultAPIAddr = "127.0.0.1:8090" // Default curiod API server address
)

// Version returns the current curioctl CLI version from the centralized version package
var Version = version.CurioctlVersion

// Global holds the global CLI configuration
var Global struct {
	APIAddr  string // Address of curiod API server to connect to
	LogLevel string // Log level for CLI operations
	Timeout  int    // Connection timeout in seconds
	Verbose  bool   // Show verbose output
	Output   string // Output format: table, json
}

// Record holds the record command configuration
var Record struct {
	Filter string // Substring filter for record listing
	Offset int    // Pagination offset
	Limit  int    // Page size (0 uses the server default)

	// Create flags
	ID          int64  // Explicit record ID (0 lets the server allocate)
	Description string // Record description
	Category    string // Record category
}

// Selection holds the selection command configuration
var Selection struct {
	Offset int // Pagination offset
	Limit  int // Page size (0 uses the server default)
}
