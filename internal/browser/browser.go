// Package browser provides best-effort launching of the host's default web
// browser. The daemon opens the receiver page once at startup purely as a
// convenience; a failure here must never abort or delay serving, so errors
// are reported to the caller and expected to be logged and dropped.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// launchCommand returns the platform launcher command and arguments for
// opening a URL in the default browser. Split from Open so the per-platform
// selection is testable without spawning processes.
func launchCommand(goos, url string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	default:
		return "", nil, fmt.Errorf("no known browser launcher for platform %s", goos)
	}
}

// Open points the default system browser at url. The launcher process is
// started and not waited on; a missing launcher binary or unsupported
// platform returns an error for the caller to log.
func Open(url string) error {
	name, args, err := launchCommand(runtime.GOOS, url)
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}

	// Detach: the browser outlives our interest in it and a hung launcher
	// must not block startup. Reap the child in the background.
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}
