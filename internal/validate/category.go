// Package validate provides input validation utilities for the curio service,
// ensuring data integrity for record fields submitted through the API.

package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// CategoryFormat validates record categories against naming requirements.
// Ensures categories contain only [a-z0-9_-] and don't start/end with special
// characters, so they stay usable as filter tokens and URL path segments.
func CategoryFormat(category string) error {
	if category == "" {
		return fmt.Errorf("category cannot be empty")
	}

	// Check if category contains only allowed characters: lowercase letters, numbers, hyphens, underscores
	validCategoryRegex := regexp.MustCompile(`^[a-z0-9_-]+$`)
	if !validCategoryRegex.MatchString(category) {
		return fmt.Errorf("category '%s' must contain only lowercase letters [a-z], numbers [0-9], hyphens (-), and underscores (_)", category)
	}

	// Ensure it starts and ends with alphanumeric (not - or _)
	if strings.HasPrefix(category, "-") || strings.HasPrefix(category, "_") ||
		strings.HasSuffix(category, "-") || strings.HasSuffix(category, "_") {
		return fmt.Errorf("category '%s' cannot start or end with hyphen (-) or underscore (_)", category)
	}

	return nil
}
