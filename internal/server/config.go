// Package server provides the HTTP server that delivers the HiAudio web
// receiver page and its sibling assets.
//
// This file defines configuration and validation for the static file server.
// The configuration deliberately carries an absolute root directory instead
// of relying on the process working directory: the daemon resolves the
// directory containing the binary once at startup and passes it in here, so
// relative file serving is anchored regardless of where hiserved was invoked
// from and no process-wide state is mutated.
package server

import (
	"fmt"

	configDefaults "github.com/hiaudio/hiserve/internal/config"
	"github.com/hiaudio/hiserve/internal/validate"
)

// Config holds all configuration parameters required for running the
// receiver HTTP server.
//
// The struct acts as the single hand-off point between the daemon's flag
// processing and the server: once validated, the server treats every field
// as immutable for the life of the process.
type Config struct {
	BindAddr  string // HTTP server bind address (e.g., "0.0.0.0")
	BindPort  int    // HTTP server bind port
	RootDir   string // Absolute directory all request paths are resolved against
	IndexFile string // Bare filename served for "/" and "/index.html"
}

// DefaultConfig creates a new Config instance with the shipped defaults:
// all interfaces, port 8082, web-receiver.html. RootDir has no sensible
// default and must be set by the caller (the daemon resolves it from the
// executable location).
func DefaultConfig() *Config {
	return &Config{
		BindAddr:  configDefaults.DefaultBindAddr,
		BindPort:  configDefaults.DefaultPort,
		IndexFile: configDefaults.DefaultIndexFile,
		RootDir:   "", // Must be set by caller
	}
}

// Validate performs validation of all configuration parameters to ensure the
// server can start successfully. Validation failures here surface as clear
// startup errors before any socket is bound.
func (c *Config) Validate() error {
	if err := validate.ValidateRequiredString(c.BindAddr, "bind address"); err != nil {
		return err
	}
	if err := validate.ValidatePortRange(c.BindPort); err != nil {
		return fmt.Errorf("bind port validation failed: %w", err)
	}
	if err := validate.ValidateRequiredString(c.RootDir, "root directory"); err != nil {
		return err
	}
	if err := validate.ValidateIndexFilename(c.IndexFile); err != nil {
		return fmt.Errorf("index file validation failed: %w", err)
	}

	return nil
}
