// Command apitest smoke-tests a running IFC calendar API against known
// conversions.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ConversionResponse is the response for the /convert endpoints.
type ConversionResponse struct {
	Gregorian      string `json:"gregorian"`
	GregorianLabel string `json:"gregorian_label"`
	DayOfYear      int    `json:"day_of_year"`
	IFCLabel       string `json:"ifc_label"`
}

// GridResponse is the part of a rendered grid the runner checks.
type GridResponse struct {
	Title string       `json:"title"`
	Weeks [][]struct{} `json:"weeks"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status string `json:"status"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	client       *http.Client
	out          io.Writer
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, out io.Writer, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		out:     out,
		verbose: verbose,
	}
}

// Run executes every group and returns the number of failures.
func (tr *TestRunner) Run() int {
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "IFC Calendar API Test Suite")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "Base URL: %s\n", tr.baseURL)

	tr.testHealth()
	tr.testGregorianToIFC()
	tr.testIFCToGregorian()
	tr.testGrids()
	tr.testEdgeCases()

	tr.printSummary()
	return tr.errorCount
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health HealthResponse
	if err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testGregorianToIFC() {
	tr.printSection("Gregorian to IFC")

	testCases := []struct {
		date     string
		expected string
	}{
		{"2023-01-01", "January 1, 2023"},
		{"2023-01-29", "February 1, 2023"},
		{"2023-06-18", "Sol 1, 2023"},
		{"2024-06-17", "Sol 1, 2024"},
		{"2024-07-01", "Sol 15, 2024"},
		{"2024-02-29", "March 4, 2024"},
		{"2023-12-30", "December 28, 2023"},
		{"2023-12-31", "Year Day, 2023"},
		{"2024-12-30", "Year Day, 2024"},
		{"2024-12-31", "Leap Day, 2024"},
	}

	for _, tc := range testCases {
		var data ConversionResponse
		if err := tr.getData("/api/v1/convert/gregorian/"+tc.date, &data); err != nil {
			tr.recordError(tc.date, err.Error())
			continue
		}

		if data.IFCLabel == tc.expected {
			tr.recordSuccess(fmt.Sprintf("%s: %s", tc.date, data.IFCLabel))
		} else {
			tr.recordError(tc.date, fmt.Sprintf("Expected '%s', got '%s'", tc.expected, data.IFCLabel))
		}

		if tr.verbose {
			fmt.Fprintf(tr.out, "    %s, day %d of the year\n", data.GregorianLabel, data.DayOfYear)
		}
	}
}

func (tr *TestRunner) testIFCToGregorian() {
	tr.printSection("IFC to Gregorian")

	testCases := []struct {
		query    string
		expected string
	}{
		{"year=2024&month=7&day=1", "2024-06-17"},
		{"year=2024&month=7&day=15", "2024-07-01"},
		{"year=2024&month=13&day=1", "2024-12-02"},
		{"year=2023&special=year-day", "2023-12-31"},
		{"year=2024&special=leap-day", "2024-12-31"},
	}

	for _, tc := range testCases {
		var data ConversionResponse
		if err := tr.getData("/api/v1/convert/ifc?"+tc.query, &data); err != nil {
			tr.recordError(tc.query, err.Error())
			continue
		}

		if data.Gregorian == tc.expected {
			tr.recordSuccess(fmt.Sprintf("%s: %s", tc.query, data.Gregorian))
		} else {
			tr.recordError(tc.query, fmt.Sprintf("Expected '%s', got '%s'", tc.expected, data.Gregorian))
		}
	}
}

func (tr *TestRunner) testGrids() {
	tr.printSection("Grids")

	testCases := []struct {
		path  string
		title string
		weeks int
	}{
		{"/api/v1/grid/gregorian?year=2026&month=10", "OCTOBER 2026", 6},
		{"/api/v1/grid/ifc?year=2024&month=7", "Sol 2024", 4},
		{"/api/v1/grid/ifc?year=2024&month=13", "December 2024", 4},
	}

	for _, tc := range testCases {
		var grid GridResponse
		if err := tr.getData(tc.path, &grid); err != nil {
			tr.recordError(tc.path, err.Error())
			continue
		}

		if grid.Title == tc.title && len(grid.Weeks) == tc.weeks {
			tr.recordSuccess(fmt.Sprintf("%s: %d weeks", grid.Title, len(grid.Weeks)))
		} else {
			tr.recordError(tc.path, fmt.Sprintf("Expected '%s' with %d weeks, got '%s' with %d",
				tc.title, tc.weeks, grid.Title, len(grid.Weeks)))
		}
	}
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	rejected := []struct {
		path string
		desc string
	}{
		{"/api/v1/convert/gregorian/invalid", "Invalid date format rejected"},
		{"/api/v1/convert/gregorian/2023-02-29", "Non-existent date rejected"},
		{"/api/v1/convert/ifc?year=2024&month=14&day=1", "IFC month 14 rejected"},
		{"/api/v1/convert/ifc?year=2024&month=1&day=29", "IFC day 29 rejected"},
		{"/api/v1/convert/ifc?year=2023&special=leap-day", "Leap Day in a common year rejected"},
		{"/api/v1/grid/julian", "Unknown calendar rejected"},
	}

	for _, tc := range rejected {
		resp, err := tr.getRaw(tc.path)
		if err != nil {
			tr.recordError(tc.path, err.Error())
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusBadRequest {
			tr.recordSuccess(tc.desc)
		} else {
			tr.recordError(tc.path, fmt.Sprintf("Expected 400, got %d", resp.StatusCode))
		}
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

// getData fetches path and decodes the envelope's data into target.
func (tr *TestRunner) getData(path string, target any) error {
	resp, err := tr.getRaw(path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return fmt.Errorf("API error: %s", errMsg)
	}

	return json.Unmarshal(apiResp.Data, target)
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	return tr.client.Get(tr.baseURL + path)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Fprintf(tr.out, "\n--- %s ---\n\n", name)
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Fprintf(tr.out, "  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Fprintf(tr.out, "  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Fprintln(tr.out)
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Summary")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "  Passed: %d\n", tr.successCount)
	fmt.Fprintf(tr.out, "  Failed: %d\n", tr.errorCount)

	if tr.errorCount > 0 {
		fmt.Fprintln(tr.out, "\nFailures:")
		for _, err := range tr.errors {
			fmt.Fprintf(tr.out, "  • %s\n", err)
		}
		fmt.Fprintf(tr.out, "\nTests completed with %d failure(s)\n", tr.errorCount)
		return
	}
	fmt.Fprintln(tr.out, "\nAll tests passed! ✓")
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	if NewTestRunner(*baseURL, os.Stdout, *verbose).Run() > 0 {
		os.Exit(1)
	}
}
