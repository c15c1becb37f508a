package validate

import (
	"testing"
)

// TestParseBindAddress tests ParseBindAddress function
func TestParseBindAddress(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedHost string
		expectedPort int
		description  string
	}{
		{
			name:         "valid address with port",
			input:        "0.0.0.0:8082",
			expectError:  false,
			expectedHost: "0.0.0.0",
			expectedPort: 8082,
			description:  "standard bind address should parse",
		},
		{
			name:         "loopback address",
			input:        "127.0.0.1:8082",
			expectError:  false,
			expectedHost: "127.0.0.1",
			expectedPort: 8082,
			description:  "loopback address should parse",
		},
		{
			name:        "empty address",
			input:       "",
			expectError: true,
			description: "empty address should be rejected",
		},
		{
			name:        "missing port",
			input:       "127.0.0.1",
			expectError: true,
			description: "address without port should be rejected",
		},
		{
			name:        "non-numeric port",
			input:       "127.0.0.1:http",
			expectError: true,
			description: "named ports should be rejected",
		},
		{
			name:        "hostname instead of IP",
			input:       "localhost:8082",
			expectError: true,
			description: "bind addresses must be IPs, not hostnames",
		},
		{
			name:        "port out of range",
			input:       "127.0.0.1:70000",
			expectError: true,
			description: "ports above 65535 should be rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ParseBindAddress(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("ParseBindAddress(%q) expected error (%s)", tt.input, tt.description)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseBindAddress(%q) unexpected error: %v (%s)", tt.input, err, tt.description)
				return
			}
			if addr.Host != tt.expectedHost {
				t.Errorf("Host = %q, want %q", addr.Host, tt.expectedHost)
			}
			if addr.Port != tt.expectedPort {
				t.Errorf("Port = %d, want %d", addr.Port, tt.expectedPort)
			}
		})
	}
}

// TestNetworkAddressString tests the host:port formatting
func TestNetworkAddressString(t *testing.T) {
	addr := NetworkAddress{Host: "192.168.1.10", Port: 8082}
	if got := addr.String(); got != "192.168.1.10:8082" {
		t.Errorf("String() = %q, want %q", got, "192.168.1.10:8082")
	}
}

// TestValidateField tests single-value validation
func TestValidateField(t *testing.T) {
	tests := []struct {
		name        string
		value       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid IP",
			value:       "10.0.0.1",
			tag:         "required,ip",
			expectError: false,
		},
		{
			name:        "invalid IP",
			value:       "999.999.999.999",
			tag:         "required,ip",
			expectError: true,
		},
		{
			name:        "port in range",
			value:       8082,
			tag:         "required,min=1,max=65535",
			expectError: false,
		},
		{
			name:        "port above range",
			value:       70000,
			tag:         "required,min=1,max=65535",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateField(tt.value, tt.tag)
			if tt.expectError && err == nil {
				t.Errorf("ValidateField(%v, %q) expected error", tt.value, tt.tag)
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidateField(%v, %q) unexpected error: %v", tt.value, tt.tag, err)
			}
		})
	}
}
