// Package utils provides utility functions for the curioctl CLI.
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDuration converts Go time.Duration values into short human-readable
// strings for CLI output, scaling the unit to the magnitude of the duration.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	} else if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	} else {
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

// ParseIDArgs converts positional command arguments into a record ID list.
// Accepts both space-separated and comma-separated forms.
func ParseIDArgs(args []string) ([]int64, error) {
	var ids []int64
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid record ID '%s': must be an integer", part)
			}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one record ID is required")
	}
	return ids, nil
}

// JoinIDs renders an ID list as a comma-separated string for table output.
func JoinIDs(ids []int64) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
