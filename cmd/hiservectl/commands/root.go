// Package commands provides the command tree for hiservectl.
//
// hiservectl is the operator companion to hiserved: it talks to a running
// receiver server over HTTP and verifies the serving contract or fetches
// individual paths. Commands follow the same cobra patterns as the daemon
// with standardized flag handling and exit codes.
package commands

import (
	"github.com/hiaudio/hiserve/cmd/hiservectl/config"
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "hiservectl",
	Short: "CLI tool for checking a running HiAudio receiver server",
	Long: `hiservectl talks to a running hiserved instance over HTTP.

Use it to verify that the receiver page is being served with the expected
CORS headers, or to fetch individual paths for quick inspection.`,
	SilenceUsage: true,
	Example: `  # Verify the local server serves the receiver page correctly
  hiservectl check

  # Check a server on another machine
  hiservectl check --server=192.168.1.20:8082

  # Fetch a path and print the body
  hiservectl fetch /web-receiver.html`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(fetchCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags() {
	RootCmd.PersistentFlags().StringVar(&config.Global.ServerAddr, "server", config.DefaultServerAddr,
		"Address of the hiserved server to talk to")
	RootCmd.PersistentFlags().StringVar(&config.Global.LogLevel, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	RootCmd.PersistentFlags().IntVar(&config.Global.Timeout, "timeout", 8,
		"Connection timeout in seconds")
	RootCmd.PersistentFlags().BoolVarP(&config.Global.Verbose, "verbose", "v", false,
		"Show verbose output")
}
