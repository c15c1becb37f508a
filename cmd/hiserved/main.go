// Package main implements the hiserved daemon, the HiAudio receiver web
// server. It delivers the web receiver page to browsers on this machine and
// on the local network, with permissive CORS headers for the companion apps
// that fetch it cross-origin.
package main

import (
	"os"

	"github.com/hiaudio/hiserve/cmd/hiserved/commands"
)

// Main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
