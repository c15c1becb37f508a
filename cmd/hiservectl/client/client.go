// Package client provides the HTTP client layer for the hiservectl CLI.
//
// This package wraps the Resty HTTP client with the small amount of
// receiver-server awareness hiservectl needs: fetching arbitrary paths and
// verifying the serving contract (landing page delivered for "/", the fixed
// three-header CORS set on every response including errors). The client
// handles timeout configuration, retry on connection failures, and
// structured logging for all requests.
package client

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hiaudio/hiserve/cmd/hiservectl/config"
	"github.com/hiaudio/hiserve/cmd/hiservectl/utils"
	"github.com/hiaudio/hiserve/internal/logging"
)

// corsContract is the exact header set every hiserved response must carry.
var corsContract = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
}

// missingProbePath is a path no receiver deployment ships, used to confirm
// error responses also carry the CORS headers.
const missingProbePath = "/.hiservectl-missing-probe"

// CheckReport summarizes a contract check against a running server.
type CheckReport struct {
	ServerAddr    string   // Address that was checked
	PageStatus    int      // Status code for GET /
	PageBytes     int      // Size of the landing page body
	MissingStatus int      // Status code for the missing-path probe
	Violations    []string // Human-readable contract violations, empty when healthy
}

// Healthy reports whether the server satisfied the full serving contract.
func (r *CheckReport) Healthy() bool {
	return len(r.Violations) == 0
}

// ReceiverClient wraps Resty with receiver-server specifics for reliable
// CLI-to-server communication.
type ReceiverClient struct {
	client  *resty.Client
	baseURL string
}

// NewReceiverClient creates a new client for the given server address with
// timeout handling, retry logic, and structured logging integration.
func NewReceiverClient(serverAddr string, timeout int) *ReceiverClient {
	client := resty.New()

	baseURL := fmt.Sprintf("http://%s", serverAddr)

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(utils.RestyLogger{})

	client.
		SetTimeout(time.Duration(timeout) * time.Second).
		SetBaseURL(baseURL).
		SetHeader("User-Agent", fmt.Sprintf("hiservectl/%s", config.Version))

	// Retry only on connection errors, not HTTP errors
	client.
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil
		})

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making request: %s %s", req.Method, req.URL)
		return nil
	})
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("Response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	return &ReceiverClient{
		client:  client,
		baseURL: baseURL,
	}
}

// Fetch performs a GET against the given path and returns the body and
// status code. Used by the fetch command for quick manual inspection.
func (rc *ReceiverClient) Fetch(path string) ([]byte, int, error) {
	resp, err := rc.client.R().Get(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to connect to server at %s: %w", rc.baseURL, err)
	}

	return resp.Body(), resp.StatusCode(), nil
}

// Check verifies the serving contract of a running receiver server:
// the landing path answers 200 with a non-empty page, a missing path
// answers 404, and both responses carry the exact CORS header set.
func (rc *ReceiverClient) Check() (*CheckReport, error) {
	report := &CheckReport{ServerAddr: rc.baseURL}

	page, err := rc.client.R().Get("/")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server at %s: %w", rc.baseURL, err)
	}

	report.PageStatus = page.StatusCode()
	report.PageBytes = len(page.Body())

	if page.StatusCode() != http.StatusOK {
		report.Violations = append(report.Violations,
			fmt.Sprintf("GET / returned %d, want 200", page.StatusCode()))
	}
	if report.PageBytes == 0 {
		report.Violations = append(report.Violations, "GET / returned an empty body")
	}
	report.Violations = append(report.Violations,
		corsViolations("GET /", page.Header())...)

	missing, err := rc.client.R().Get(missingProbePath)
	if err != nil {
		return nil, fmt.Errorf("missing-path probe failed against %s: %w", rc.baseURL, err)
	}

	report.MissingStatus = missing.StatusCode()

	if missing.StatusCode() != http.StatusNotFound {
		report.Violations = append(report.Violations,
			fmt.Sprintf("GET %s returned %d, want 404", missingProbePath, missing.StatusCode()))
	}
	report.Violations = append(report.Violations,
		corsViolations("GET "+missingProbePath, missing.Header())...)

	return report, nil
}

// corsViolations compares response headers against the fixed contract and
// describes every mismatch.
func corsViolations(request string, headers http.Header) []string {
	var violations []string
	for name, want := range corsContract {
		if got := headers.Get(name); got != want {
			violations = append(violations,
				fmt.Sprintf("%s: header %s = %q, want %q", request, name, got, want))
		}
	}
	return violations
}
