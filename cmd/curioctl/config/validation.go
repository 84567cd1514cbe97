// Package config provides configuration management for the curioctl CLI.
package config

import (
	"fmt"

	"github.com/curio-dev/curio/internal/logging"
	"github.com/curio-dev/curio/internal/validate"
	"github.com/spf13/cobra"
)

// ValidateGlobalFlags runs before every command and rejects unusable global
// flag values before any request leaves the client.
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := ValidateAPIAddress(); err != nil {
		return err
	}
	if err := ValidateTimeout(); err != nil {
		return err
	}
	return ValidateOutputFormat()
}

// ValidateAPIAddress validates the --api flag. The address must name a
// concrete daemon endpoint: a routable host and a non-zero port.
func ValidateAPIAddress() error {
	netAddr, err := validate.ParseBindAddress(Global.APIAddr)
	if err != nil {
		logging.Error("Invalid API address '%s': %v", Global.APIAddr, err)
		return fmt.Errorf("invalid API address, expected host:port (e.g. %s)", DefaultAPIAddr)
	}

	// 0.0.0.0 is a bind address, not a dial target
	if netAddr.Host == "0.0.0.0" {
		logging.Error("Unroutable API address '0.0.0.0:%d'", netAddr.Port)
		return fmt.Errorf("cannot connect to 0.0.0.0, use 127.0.0.1 or a specific IP address")
	}

	if err := validate.ValidateField(netAddr.Port, "required,min=1,max=65535"); err != nil {
		logging.Error("Invalid API port %d: %v", netAddr.Port, err)
		return fmt.Errorf("API port must be between 1-65535")
	}

	return nil
}

// ValidateTimeout validates the --timeout flag. The ceiling leaves room for
// a full write window plus batch execution on a loaded daemon.
func ValidateTimeout() error {
	if err := validate.ValidateField(Global.Timeout, "min=1,max=300"); err != nil {
		logging.Error("Invalid timeout %d: %v", Global.Timeout, err)
		return fmt.Errorf("timeout must be between 1-300 seconds")
	}
	return nil
}

// ValidateOutputFormat validates the --output flag.
func ValidateOutputFormat() error {
	switch Global.Output {
	case "table", "json":
		return nil
	default:
		logging.Error("Invalid output format '%s'", Global.Output)
		return fmt.Errorf("invalid output format %q, valid: table, json", Global.Output)
	}
}
