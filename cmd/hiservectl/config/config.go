// Package config provides configuration management for the hiservectl CLI.
package config

import (
	configDefaults "github.com/hiaudio/hiserve/internal/config"
	"github.com/hiaudio/hiserve/internal/version"
)

const (
	// DefaultServerAddr is where a default hiserved listens locally
	DefaultServerAddr = "localhost:8082"
)

// Version returns the current hiservectl CLI version from the centralized version package
var Version = version.HiservectlVersion

// IndexFile is the receiver page the check command expects the server to
// deliver for the landing paths.
var IndexFile = configDefaults.DefaultIndexFile

// Global holds the global CLI configuration
var Global struct {
	ServerAddr string // Address of the hiserved server to talk to
	LogLevel   string // Log level for CLI operations
	Timeout    int    // Connection timeout in seconds
	Verbose    bool   // Show verbose output
}
