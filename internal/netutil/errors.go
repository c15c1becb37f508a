// Package netutil provides network utilities for the hiserve daemon.
//
// This file implements unified network error checking for consistent error
// classification. Provides proper type-based error detection that works
// reliably across operating systems and Go versions, avoiding fragile
// string-based error matching.

package netutil

import (
	"errors"
	"net"
	"syscall"
)

// IsAddressInUseError checks if an error indicates "address already in use"
// using proper error type checking rather than string matching.
//
// Used by the port binder so a busy :8082 produces a clear, actionable
// message instead of a raw OS error.
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
// Used by hiservectl to tell "no server running on that address" apart from
// other transport failures when checking a receiver server.
func IsConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return false
}
