// Package netutil provides network utilities for the curio service.
//
// This file implements network error classification using proper error type
// checking rather than fragile string matching, so behavior is consistent
// across operating systems and Go versions.
package netutil

import (
	"errors"
	"net"
	"syscall"
)

// IsAddressInUseError checks if an error indicates "address already in use"
// using proper error type checking rather than string matching.
//
// Used during daemon startup to distinguish port conflicts from other
// binding failures.
func IsAddressInUseError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.EADDRINUSE)
	}
	return false
}

// IsConnectionRefusedError checks if an error indicates "connection refused"
// using proper error type checking rather than string matching.
//
// Used by the CLI client to turn failed daemon connections into actionable
// messages instead of raw transport errors.
func IsConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return false
}
