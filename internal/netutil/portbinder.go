// Package netutil provides network utilities for the curio service.
//
// This package implements port binding utilities that eliminate race
// conditions during daemon startup. Instead of the "test-and-close" pattern,
// where a port is probed and released before the real server binds it, the
// listener is bound once up front and handed directly to the HTTP server, so
// the port stays reserved from validation through serving.
package netutil

import (
	"fmt"
	"net"
)

// AddressInUseError represents a "port already in use" error that preserves
// the original error for proper type checking while providing user-friendly messages.
type AddressInUseError struct {
	Port    int
	Address string
	Err     error
}

func (e *AddressInUseError) Error() string {
	return fmt.Sprintf("port %d is already in use on %s", e.Port, e.Address)
}

func (e *AddressInUseError) Unwrap() error {
	return e.Err
}

// PortBinder provides utilities for pre-binding network listeners so the
// bound port is held from startup validation until the server takes over.
type PortBinder struct{}

// NewPortBinder creates a new PortBinder instance for managing port reservations.
func NewPortBinder() *PortBinder {
	return &PortBinder{}
}

// BindTCP creates and binds a TCP listener to the specified address,
// immediately reserving the port for exclusive use by this process. The
// returned listener is passed directly to the server; once this method
// returns successfully the port stays reserved until the listener closes.
//
// Forces IPv4 binding for consistent behavior across platforms.
func (pb *PortBinder) BindTCP(address string, port int) (net.Listener, error) {
	addr := fmt.Sprintf("%s:%d", address, port)

	listener, err := net.Listen("tcp4", addr)
	if err != nil {
		if IsAddressInUseError(err) {
			return nil, &AddressInUseError{
				Port:    port,
				Address: address,
				Err:     err,
			}
		}
		return nil, fmt.Errorf("failed to bind TCP to %s: %w", addr, err)
	}

	return listener, nil
}

// GetListenerPort extracts the port number from a bound net.Listener. Useful
// for discovering the actual port when using OS-assigned ports (port 0) in
// tests.
func (pb *PortBinder) GetListenerPort(listener net.Listener) (int, error) {
	addr := listener.Addr()
	tcpAddr, ok := addr.(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("listener is not a TCP listener: %T", addr)
	}

	return tcpAddr.Port, nil
}
