// Package config provides configuration management for the hiserved daemon.
//
// This package implements the flag-backed configuration for the receiver web
// server daemon. Every default reproduces the behavior the receiver setup
// has always had: bind all interfaces on port 8082, serve web-receiver.html
// from the directory containing the binary, and open a browser tab. Running
// plain `hiserved` with no flags is the supported, documented path; the
// flags exist for development setups and packaging.
//
// CONFIGURATION FLOW:
//  1. cobra registers flags that write directly into Global
//  2. PreRunE runs ValidateConfig, which parses the listen address into
//     host/port and rejects malformed values before anything binds
//  3. The daemon resolves the serving root (executable directory unless
//     --root overrides) and hands a server.Config to internal/server
package config

import (
	configDefaults "github.com/hiaudio/hiserve/internal/config"
	"github.com/hiaudio/hiserve/internal/version"
)

// DefaultListen is the default listen address, all interfaces on the fixed
// receiver port.
const DefaultListen = "0.0.0.0:8082"

// Version returns the current hiserved version from the centralized version package
var Version = version.HiservedVersion

// Config holds all daemon configuration values
type Config struct {
	ListenAddr string // Raw --listen value ("host:port")
	BindAddr   string // Parsed bind address (derived from ListenAddr)
	BindPort   int    // Parsed bind port (derived from ListenAddr)
	RootDir    string // Serving root override; empty means "directory of the binary"
	IndexFile  string // Landing page filename served for "/" and "/index.html"
	NoBrowser  bool   // Skip the best-effort browser launch at startup
	ProbeAddr  string // UDP probe target for LAN IP discovery
	LogLevel   string // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string // Optional log file path; empty logs to stdout/stderr
}

// Global configuration instance, populated by cobra flag registration and
// finalized by ValidateConfig.
var Global = Config{
	ListenAddr: DefaultListen,
	IndexFile:  configDefaults.DefaultIndexFile,
	ProbeAddr:  configDefaults.DefaultProbeAddr,
	LogLevel:   configDefaults.DefaultLogLevel,
}
