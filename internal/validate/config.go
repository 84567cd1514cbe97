// Package validate provides configuration validation utilities for curio
// components.
//
// This file implements common validation patterns used across config packages
// to ensure consistency and reduce duplication. All functions leverage the
// go-playground/validator library for standardized validation behavior.
//
// VALIDATION UTILITIES:
//   - Port validation: Standard port range checking (1-65535)
//   - String validation: Required field and non-empty string checking
//   - Window validation: Positive duration validation for batch windows
package validate

import (
	"fmt"
	"time"
)

// ValidatePortRange validates that a port number is within the valid range
// (1-65535). Rejects port 0 (OS-assigned) since clients need a predictable
// address for the API endpoint.
func ValidatePortRange(port int) error {
	return ValidateField(port, "required,min=1,max=65535")
}

// ValidateRequiredString validates that a string field is not empty.
// Prevents runtime failures from missing essential configuration parameters.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidatePositiveDuration validates that a duration is positive (> 0).
// Used for the read/write batch windows and HTTP timeouts, where a zero or
// negative value would stall or busy-loop the scheduler.
func ValidatePositiveDuration(d time.Duration, name string) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}
