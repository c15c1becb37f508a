// Package main provides the entry point for the hiservectl CLI tool.
//
// hiservectl is the management companion for the hiserved receiver web
// server: it verifies that a running server delivers the receiver page with
// the expected CORS contract and fetches individual paths for inspection.
package main

import (
	"os"

	"github.com/hiaudio/hiserve/cmd/hiservectl/commands"
	"github.com/hiaudio/hiserve/cmd/hiservectl/config"
)

func init() {
	rootCmd := commands.RootCmd
	rootCmd.Version = config.Version

	commands.SetupCommands()
	commands.SetupGlobalFlags()
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
