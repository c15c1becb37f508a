// Package daemon provides the hiserved lifecycle orchestration.
//
// This package implements the complete startup and shutdown sequence for the
// receiver web server:
//
//  1. Resolve the serving root: the directory containing the hiserved binary
//     unless --root overrides it. The root is computed once and passed into
//     the server config; the process working directory is never changed.
//  2. Fail fast if the receiver page is missing from the root. This is the
//     only fatal precondition; the process exits non-zero before any socket
//     is bound.
//  3. Discover the LAN IP with a best-effort UDP probe for the access
//     banner. Failure silently degrades to "localhost" and never gates
//     startup.
//  4. Pre-bind the TCP listener so the banner and browser launch only happen
//     once the port is actually reserved.
//  5. Print the access banner and launch the default browser (best-effort;
//     a failure is logged at WARN and discarded).
//  6. Serve until SIGINT/SIGTERM, then drain connections with a bounded
//     graceful shutdown and confirm the stop to the operator.
package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/hiaudio/hiserve/cmd/hiserved/config"
	"github.com/hiaudio/hiserve/cmd/hiserved/utils"
	"github.com/hiaudio/hiserve/internal/browser"
	"github.com/hiaudio/hiserve/internal/logging"
	"github.com/hiaudio/hiserve/internal/netutil"
	"github.com/hiaudio/hiserve/internal/server"
)

// shutdownTimeout bounds how long graceful shutdown waits for in-flight
// requests before the process exits anyway.
const shutdownTimeout = 10 * time.Second

// ResolveRootDir determines the directory all request paths are served from.
// An explicit override wins; otherwise the directory containing the running
// executable is used, so the receiver page next to the binary is found no
// matter where hiserved was invoked from.
func ResolveRootDir(override string) (string, error) {
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", fmt.Errorf("failed to resolve root directory %s: %w", override, err)
		}
		return abs, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// CheckIndexFile verifies the receiver page exists in the serving root.
// A missing page is the daemon's one fatal precondition: without it every
// landing request would 404 and the server would be pointless.
func CheckIndexFile(rootDir, indexFile string) error {
	indexPath := filepath.Join(rootDir, indexFile)
	if _, err := os.Stat(indexPath); err != nil {
		return fmt.Errorf("%s not found in %s", indexFile, rootDir)
	}
	return nil
}

// buildServerConfig converts daemon config to the server config
func buildServerConfig(rootDir string) *server.Config {
	serverConfig := server.DefaultConfig()

	serverConfig.BindAddr = config.Global.BindAddr
	serverConfig.BindPort = config.Global.BindPort
	serverConfig.RootDir = rootDir
	serverConfig.IndexFile = config.Global.IndexFile

	return serverConfig
}

// Run orchestrates the hiserved lifecycle from initialization to graceful
// shutdown. Returns an error only for fatal startup failures; a signal-driven
// stop returns nil so the process exits 0.
func Run() error {
	logging.Info("Starting hiserved v%s", config.Version)

	rootDir, err := ResolveRootDir(config.Global.RootDir)
	if err != nil {
		return err
	}
	logging.Info("Serving root: %s", rootDir)

	// Fatal precondition: the receiver page must exist before any socket
	// is bound
	if err := CheckIndexFile(rootDir, config.Global.IndexFile); err != nil {
		logging.Error("❌ Error: %v", err)
		return err
	}

	serverConfig := buildServerConfig(rootDir)
	if err := serverConfig.Validate(); err != nil {
		return fmt.Errorf("invalid server configuration: %w", err)
	}

	// Best-effort LAN IP for the banner; failures degrade to "localhost"
	lanHost := netutil.OutboundIP(config.Global.ProbeAddr)
	if lanHost == netutil.FallbackHost {
		logging.Debug("LAN IP discovery failed, banner falls back to localhost")
	}

	// Pre-bind so the banner never advertises a port we don't hold
	portBinder := netutil.NewPortBinder()
	listener, err := portBinder.BindTCP(serverConfig.BindAddr, serverConfig.BindPort)
	if err != nil {
		return fmt.Errorf("failed to bind listener: %w", err)
	}

	srv := server.NewServer(serverConfig)

	// net/http logs accept errors through the standard library logger;
	// route them into the structured pipeline
	logging.RedirectStandardLog(logging.NewLevelWriter("WARN", "http"))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(listener)
	}()

	utils.DisplayAccessInfo(lanHost, serverConfig.BindPort)

	localURL := fmt.Sprintf("http://localhost:%d", serverConfig.BindPort)
	if config.Global.NoBrowser {
		logging.Info("Browser launch disabled, open %s manually", localURL)
	} else if err := browser.Open(localURL); err != nil {
		// Convenience only; the server keeps running without a browser
		logging.Warn("Could not open browser: %v", err)
	} else {
		logging.Info("Opened browser at %s", localURL)
	}

	logging.Success("hiserved started successfully")

	// Wait for an operator stop or a server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info("Received signal: %v", sig)
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Error during shutdown: %v", err)
	}

	fmt.Println("🛑 Server stopped")
	return nil
}
