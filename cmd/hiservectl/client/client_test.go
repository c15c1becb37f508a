package client

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// conformingHandler mimics a healthy hiserved: receiver page on the landing
// path, 404 elsewhere, CORS contract on every response.
func conformingHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("<html>OK</html>"))
			return
		}
		http.NotFound(w, r)
	})
}

// serverAddr strips the scheme from an httptest server URL so it matches
// the host:port form the CLI accepts.
func serverAddr(ts *httptest.Server) string {
	return strings.TrimPrefix(ts.URL, "http://")
}

// TestCheckHealthyServer tests the contract check against a conforming server
func TestCheckHealthyServer(t *testing.T) {
	ts := httptest.NewServer(conformingHandler())
	defer ts.Close()

	c := NewReceiverClient(serverAddr(ts), 2)

	report, err := c.Check()
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}

	if !report.Healthy() {
		t.Errorf("Check() reported violations for a conforming server: %v", report.Violations)
	}
	if report.PageStatus != http.StatusOK {
		t.Errorf("PageStatus = %d, want 200", report.PageStatus)
	}
	if report.PageBytes == 0 {
		t.Error("PageBytes = 0, want the receiver page size")
	}
	if report.MissingStatus != http.StatusNotFound {
		t.Errorf("MissingStatus = %d, want 404", report.MissingStatus)
	}
}

// TestCheckDetectsViolations tests that contract breaches are reported
func TestCheckDetectsViolations(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.Handler
		description string
	}{
		{
			name: "missing CORS headers",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>OK</html>"))
			}),
			description: "responses without the header set violate the contract",
		},
		{
			name: "wrong allow-methods value",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Access-Control-Allow-Origin", "*")
				w.Header().Set("Access-Control-Allow-Methods", "GET")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.Write([]byte("<html>OK</html>"))
			}),
			description: "the header values are exact literals",
		},
		{
			name: "landing path not found",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Access-Control-Allow-Origin", "*")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				http.NotFound(w, r)
			}),
			description: "a 404 landing page violates the contract",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			c := NewReceiverClient(serverAddr(ts), 2)

			report, err := c.Check()
			if err != nil {
				t.Fatalf("Check() error: %v", err)
			}
			if report.Healthy() {
				t.Errorf("Check() reported healthy (%s)", tt.description)
			}
		})
	}
}

// TestCheckUnreachableServer tests that a dead server is a connection error,
// not a report
func TestCheckUnreachableServer(t *testing.T) {
	// Grab a port that nothing is listening on by closing a test server
	ts := httptest.NewServer(conformingHandler())
	addr := serverAddr(ts)
	ts.Close()

	c := NewReceiverClient(addr, 1)

	if _, err := c.Check(); err == nil {
		t.Error("Check() against a closed server expected error")
	}
}

// TestFetch tests path fetching
func TestFetch(t *testing.T) {
	ts := httptest.NewServer(conformingHandler())
	defer ts.Close()

	c := NewReceiverClient(serverAddr(ts), 2)

	body, status, err := c.Fetch("/")
	if err != nil {
		t.Fatalf("Fetch(\"/\") error: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if string(body) != "<html>OK</html>" {
		t.Errorf("body = %q, want the receiver page", string(body))
	}

	_, status, err = c.Fetch("/missing.js")
	if err != nil {
		t.Fatalf("Fetch(\"/missing.js\") error: %v", err)
	}
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}
