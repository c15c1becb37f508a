// Package commands provides the CLI command structure for the hiserved daemon.
//
// This package implements the root command for hiserved, the HiAudio
// receiver web server. It manages flag registration, the pre-execution
// validation pipeline, and optional log file redirection. The command has no
// subcommands: running the binary starts the server, matching how the
// receiver has always been launched.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hiaudio/hiserve/cmd/hiserved/config"
	"github.com/hiaudio/hiserve/cmd/hiserved/daemon"
	"github.com/hiaudio/hiserve/cmd/hiserved/utils"
	"github.com/hiaudio/hiserve/internal/logging"
	"github.com/hiaudio/hiserve/internal/version"
	"github.com/spf13/cobra"
)

// Global variable to track log file handle for cleanup
var logFileHandle *os.File

// CleanupLogFile closes the log file handle if it exists.
// Called during daemon shutdown to ensure proper cleanup.
func CleanupLogFile() {
	if logFileHandle != nil {
		if err := logFileHandle.Close(); err != nil {
			// Write to stderr directly since we're tearing down the log file
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
		logFileHandle = nil
	}
}

// Root command for the hiserved daemon
var RootCmd = &cobra.Command{
	Use:   "hiserved",
	Short: "Local web server for the HiAudio receiver page",
	Long: `hiserved serves the HiAudio web receiver page (web-receiver.html) to
browsers on this machine and on the local network.

It serves files from the directory containing the binary, rewrites "/" and
"/index.html" to the receiver page, attaches permissive CORS headers to every
response, prints the LAN access URLs, and opens your default browser.`,
	Version:      version.HiservedVersion,
	SilenceUsage: true, // Don't show usage on errors
	Example: `  # Start with the shipped defaults (port 8082, page next to the binary)
  hiserved

  # Serve a development checkout without opening a browser
  hiserved --root=./web --no-browser

  # Bind a different port and log to a file
  hiserved --listen=0.0.0.0:9090 --log-file=/tmp/hiserved.log`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Display logo first, before any validation or logging
		utils.DisplayLogo(version.HiservedVersion)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup log file redirection if --log-file was specified
		if config.Global.LogFile != "" {
			logDir := filepath.Dir(config.Global.LogFile)
			if err := os.MkdirAll(logDir, 0755); err != nil {
				return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
			}

			var err error
			logFileHandle, err = os.OpenFile(config.Global.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("failed to open log file %s: %w", config.Global.LogFile, err)
			}

			logging.SetOutput(logFileHandle)
		}

		// Configure logging level before validation so a requested ERROR
		// level suppresses INFO chatter from the start
		logging.SetLevel(config.Global.LogLevel)

		if err := config.ValidateConfig(); err != nil {
			// Close log file handle if validation fails to prevent leak
			CleanupLogFile()
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer CleanupLogFile()
		return daemon.Run()
	},
}

func init() {
	// Network flags
	RootCmd.Flags().StringVar(&config.Global.ListenAddr, "listen", config.DefaultListen,
		"Address and port to bind to (e.g., 0.0.0.0:8082)")

	// Serving flags
	RootCmd.Flags().StringVar(&config.Global.RootDir, "root", "",
		"Directory to serve files from (defaults to the directory containing the binary)")
	RootCmd.Flags().StringVar(&config.Global.IndexFile, "index", config.Global.IndexFile,
		"Landing page filename served for / and /index.html")
	RootCmd.Flags().BoolVar(&config.Global.NoBrowser, "no-browser", false,
		"Do not open the default browser at startup")

	// Operational flags
	RootCmd.Flags().StringVar(&config.Global.LogLevel, "log-level", config.Global.LogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	RootCmd.Flags().StringVar(&config.Global.LogFile, "log-file", "",
		"Write logs to this file instead of stdout/stderr")
}
