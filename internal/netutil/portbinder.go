// Package netutil provides network utilities for the hiserve daemon.
//
// This package implements port binding and address discovery helpers used
// during daemon startup. The core functionality centers around pre-binding
// the HTTP listener so the port is truly reserved before the startup banner
// and browser launch happen, preventing a "test-and-close" race window where
// the banner claims a URL that another process then steals.
//
// Key capabilities:
//   - Atomic port reservation through pre-binding
//   - Typed classification of "address already in use" failures
//   - Best-effort outward-facing IP discovery for the access banner
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

// PortBinder provides utilities for pre-binding network listeners to eliminate
// port allocation race conditions during service startup.
//
// Traditional "check the port is free, close, bind later" patterns leave a
// window where another process can claim the port. PortBinder eliminates this
// by immediately binding and holding the listener until the server takes it.
type PortBinder struct{}

// NewPortBinder creates a new PortBinder instance for managing port reservations.
func NewPortBinder() *PortBinder {
	return &PortBinder{}
}

// BindTCP creates and binds a TCP listener to the specified address,
// immediately reserving the port for exclusive use by this process. Returns
// the bound listener that is passed directly to the HTTP server.
//
// Forces IPv4 binding for consistent behavior across platforms; phones on
// the LAN reach the receiver page via the IPv4 address printed in the banner.
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

// GetListenerPort extracts the port number from a bound net.Listener.
// Useful for discovering the actual port when tests bind with port 0 and the
// banner needs to advertise the final port.
func (pb *PortBinder) GetListenerPort(listener net.Listener) (int, error) {
	addr := listener.Addr()
	tcpAddr, ok := addr.(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("listener is not a TCP listener: %T", addr)
	}

	return tcpAddr.Port, nil
}
