// Package config provides configuration management for the hiserved daemon.
// This file implements the validation pipeline run from the command PreRunE
// before any socket is bound or file touched.
package config

import (
	"fmt"

	"github.com/hiaudio/hiserve/internal/logging"
	"github.com/hiaudio/hiserve/internal/validate"
)

// ValidateConfig validates the global configuration and derives the parsed
// bind address and port from the raw --listen value. Returns a descriptive
// error for the operator when any value is malformed.
func ValidateConfig() error {
	netAddr, err := validate.ParseBindAddress(Global.ListenAddr)
	if err != nil {
		return fmt.Errorf("invalid listen address: %w", err)
	}

	// The printed access URLs and receiver docs assume a fixed port, so an
	// OS-assigned port 0 is rejected here
	if err := validate.ValidatePortRange(netAddr.Port); err != nil {
		return fmt.Errorf("listen port validation failed: %w", err)
	}

	Global.BindAddr = netAddr.Host
	Global.BindPort = netAddr.Port

	if err := validate.ValidateIndexFilename(Global.IndexFile); err != nil {
		return fmt.Errorf("invalid index file: %w", err)
	}

	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return err
	}

	if err := validate.ValidateRequiredString(Global.ProbeAddr, "probe address"); err != nil {
		return err
	}

	return nil
}
