package browser

import (
	"testing"
)

// TestLaunchCommand tests per-platform launcher selection
func TestLaunchCommand(t *testing.T) {
	tests := []struct {
		name         string
		goos         string
		expectError  bool
		expectedName string
		description  string
	}{
		{
			name:         "darwin uses open",
			goos:         "darwin",
			expectError:  false,
			expectedName: "open",
			description:  "macOS opens URLs with open(1)",
		},
		{
			name:         "linux uses xdg-open",
			goos:         "linux",
			expectError:  false,
			expectedName: "xdg-open",
			description:  "linux desktops route through xdg-open",
		},
		{
			name:         "windows uses rundll32",
			goos:         "windows",
			expectError:  false,
			expectedName: "rundll32",
			description:  "windows uses the URL protocol handler",
		},
		{
			name:        "unknown platform fails",
			goos:        "plan9",
			expectError: true,
			description: "unsupported platforms report an error for the caller to log",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args, err := launchCommand(tt.goos, "http://localhost:8082")

			if tt.expectError {
				if err == nil {
					t.Errorf("launchCommand(%q) expected error (%s)", tt.goos, tt.description)
				}
				return
			}

			if err != nil {
				t.Errorf("launchCommand(%q) unexpected error: %v", tt.goos, err)
				return
			}
			if name != tt.expectedName {
				t.Errorf("launcher = %q, want %q", name, tt.expectedName)
			}
			if len(args) == 0 {
				t.Error("launcher args are empty, URL was dropped")
			}
		})
	}
}

// TestLaunchCommandCarriesURL tests that the URL survives into the arguments
func TestLaunchCommandCarriesURL(t *testing.T) {
	url := "http://localhost:8082"

	for _, goos := range []string{"darwin", "linux", "windows"} {
		_, args, err := launchCommand(goos, url)
		if err != nil {
			t.Fatalf("launchCommand(%q) error = %v", goos, err)
		}

		found := false
		for _, a := range args {
			if a == url {
				found = true
			}
		}
		if !found {
			t.Errorf("launchCommand(%q) args %v do not contain %q", goos, args, url)
		}
	}
}
