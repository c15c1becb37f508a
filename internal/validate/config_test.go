package validate

import (
	"testing"
)

// TestValidatePortRange tests port range validation
func TestValidatePortRange(t *testing.T) {
	tests := []struct {
		name        string
		port        int
		expectError bool
		description string
	}{
		{
			name:        "default receiver port",
			port:        8082,
			expectError: false,
			description: "the shipped default must validate",
		},
		{
			name:        "minimum port",
			port:        1,
			expectError: false,
			description: "port 1 is the lower bound",
		},
		{
			name:        "maximum port",
			port:        65535,
			expectError: false,
			description: "port 65535 is the upper bound",
		},
		{
			name:        "port zero",
			port:        0,
			expectError: true,
			description: "OS-assigned ports break the printed access URLs",
		},
		{
			name:        "negative port",
			port:        -1,
			expectError: true,
			description: "negative ports are invalid",
		},
		{
			name:        "port too large",
			port:        65536,
			expectError: true,
			description: "ports above 65535 are invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePortRange(tt.port)
			if tt.expectError && err == nil {
				t.Errorf("ValidatePortRange(%d) expected error (%s)", tt.port, tt.description)
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidatePortRange(%d) unexpected error: %v (%s)", tt.port, err, tt.description)
			}
		})
	}
}

// TestValidateRequiredString tests required string validation
func TestValidateRequiredString(t *testing.T) {
	if err := ValidateRequiredString("web-receiver.html", "index filename"); err != nil {
		t.Errorf("ValidateRequiredString() unexpected error: %v", err)
	}

	err := ValidateRequiredString("", "root directory")
	if err == nil {
		t.Fatal("ValidateRequiredString(\"\") expected error")
	}
}

// TestValidateIndexFilename tests index filename validation
func TestValidateIndexFilename(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		description string
	}{
		{
			name:        "default index file",
			input:       "web-receiver.html",
			expectError: false,
			description: "the shipped default must validate",
		},
		{
			name:        "plain html file",
			input:       "index.html",
			expectError: false,
			description: "any bare filename is acceptable",
		},
		{
			name:        "empty name",
			input:       "",
			expectError: true,
			description: "empty filename is rejected",
		},
		{
			name:        "forward slash",
			input:       "pages/receiver.html",
			expectError: true,
			description: "paths are rejected, only bare names allowed",
		},
		{
			name:        "backslash",
			input:       `pages\receiver.html`,
			expectError: true,
			description: "windows-style paths are rejected too",
		},
		{
			name:        "parent traversal",
			input:       "..",
			expectError: true,
			description: "traversal components must not reach the rewrite rule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIndexFilename(tt.input)
			if tt.expectError && err == nil {
				t.Errorf("ValidateIndexFilename(%q) expected error (%s)", tt.input, tt.description)
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidateIndexFilename(%q) unexpected error: %v (%s)", tt.input, err, tt.description)
			}
		})
	}
}
