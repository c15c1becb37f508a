// Package netutil provides network utilities for the hiserve daemon.
//
// This file implements best-effort discovery of the machine's outward-facing
// IP address for the startup banner. The address is diagnostics only: it is
// computed once, never re-probed, and a failure must never gate server
// startup.

package netutil

import "net"

// FallbackHost is substituted for the LAN IP whenever discovery fails
// (no network interface, sandboxed environment, permission issue). The
// printed LAN URL then simply duplicates the localhost URL.
const FallbackHost = "localhost"

// OutboundIP discovers the outward-facing IP address by opening a
// connectionless UDP socket toward probeAddr and reading back the local
// endpoint the OS assigned. No packet is sent; the connect call only selects
// a route. The socket is closed before returning.
//
// On any failure the literal "localhost" is returned instead of an error,
// keeping the fallback policy visible at the call site. Callers must treat
// the result as best-effort display data, never as a bind address.
func OutboundIP(probeAddr string) string {
	conn, err := net.Dial("udp4", probeAddr)
	if err != nil {
		return FallbackHost
	}
	defer conn.Close()

	localAddr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || localAddr.IP == nil {
		return FallbackHost
	}

	return localAddr.IP.String()
}
