package server

import (
	"testing"
)

// TestDefaultConfig tests the shipped defaults
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.BindAddr != "0.0.0.0" {
		t.Errorf("BindAddr = %q, want %q", config.BindAddr, "0.0.0.0")
	}
	if config.BindPort != 8082 {
		t.Errorf("BindPort = %d, want 8082", config.BindPort)
	}
	if config.IndexFile != "web-receiver.html" {
		t.Errorf("IndexFile = %q, want %q", config.IndexFile, "web-receiver.html")
	}
	if config.RootDir != "" {
		t.Errorf("RootDir = %q, want empty (must be set by caller)", config.RootDir)
	}
}

// TestConfigValidate tests configuration validation
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
		description string
	}{
		{
			name:        "valid config",
			mutate:      func(c *Config) { c.RootDir = "/srv/hiaudio" },
			expectError: false,
			description: "defaults plus a root directory must validate",
		},
		{
			name:        "missing root directory",
			mutate:      func(c *Config) {},
			expectError: true,
			description: "RootDir is required",
		},
		{
			name: "empty bind address",
			mutate: func(c *Config) {
				c.RootDir = "/srv/hiaudio"
				c.BindAddr = ""
			},
			expectError: true,
			description: "bind address is required",
		},
		{
			name: "port zero",
			mutate: func(c *Config) {
				c.RootDir = "/srv/hiaudio"
				c.BindPort = 0
			},
			expectError: true,
			description: "OS-assigned ports break the printed URLs",
		},
		{
			name: "index file with path",
			mutate: func(c *Config) {
				c.RootDir = "/srv/hiaudio"
				c.IndexFile = "../outside.html"
			},
			expectError: true,
			description: "index file must be a bare name inside the root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := config.Validate()
			if tt.expectError && err == nil {
				t.Errorf("Validate() expected error (%s)", tt.description)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Validate() unexpected error: %v (%s)", err, tt.description)
			}
		})
	}
}

// TestNewServerNilConfig tests that a nil config panics at construction
// rather than at request time
func TestNewServerNilConfig(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewServer(nil) should panic")
		}
	}()

	NewServer(nil)
}
