// Command coverage round-trips every date in a range of years through a
// running IFC calendar API (Gregorian to IFC and back) and reports any date
// that does not come back unchanged.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"time"

	"github.com/zapponejosh/ifc-calendar/internal/calendar"
)

// APIResponse matches the API response structure
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ConversionResponse struct {
	Gregorian string `json:"gregorian"`
	IFC       struct {
		Year    int    `json:"year"`
		Month   int    `json:"month"`
		Day     int    `json:"day"`
		Special string `json:"special,omitempty"`
	} `json:"ifc"`
	IFCLabel string `json:"ifc_label"`
}

// TestResult holds the result for a single date
type TestResult struct {
	Date     string `json:"date"`
	Success  bool   `json:"success"`
	Period   string `json:"period"` // IFC month name or special day
	IFCLabel string `json:"ifc_label,omitempty"`
	Error    string `json:"error,omitempty"`
}

// PeriodStats tracks statistics for each IFC month
type PeriodStats struct {
	Period      string   `json:"period"`
	TotalDays   int      `json:"total_days"`
	FailedDays  int      `json:"failed_days"`
	FailedDates []string `json:"failed_dates,omitempty"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	startYear := flag.Int("start", 2024, "Start year")
	years := flag.Int("years", 4, "Number of years to test")
	verbose := flag.Bool("v", false, "Verbose output (show each date)")
	outputFile := flag.String("o", "", "Output results to JSON file")
	flag.Parse()

	endYear := *startYear + *years - 1

	fmt.Println("================================================================")
	fmt.Println("IFC Calendar API - Round Trip Coverage")
	fmt.Println("================================================================")
	fmt.Printf("Base URL:    %s\n", *baseURL)
	fmt.Printf("Date Range:  %d-01-01 to %d-12-31\n\n", *startYear, endYear)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	results := testAllDates(client, *baseURL, *startYear, endYear, os.Stdout, *verbose)
	analysis := analyzeResults(results)
	printSummary(os.Stdout, analysis)

	if *outputFile != "" {
		saveResults(*outputFile, analysis)
	}

	if analysis.TotalFailed > 0 {
		os.Exit(1)
	}
}

func testAllDates(client *http.Client, baseURL string, startYear, endYear int, out io.Writer, verbose bool) []TestResult {
	var results []TestResult

	start := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, time.December, 31, 0, 0, 0, 0, time.UTC)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		r := testDate(client, baseURL, d.Format("2006-01-02"))
		results = append(results, r)

		if verbose {
			status := "✓"
			if !r.Success {
				status = "✗"
			}
			fmt.Fprintf(out, "  %s %s -> %s %s\n", status, r.Date, r.IFCLabel, r.Error)
		}
	}

	return results
}

// testDate converts dateStr to IFC and back, expecting dateStr again.
func testDate(client *http.Client, baseURL, dateStr string) TestResult {
	result := TestResult{Date: dateStr}

	var fwd ConversionResponse
	if err := getData(client, baseURL+"/api/v1/convert/gregorian/"+dateStr, &fwd); err != nil {
		result.Error = err.Error()
		return result
	}
	result.IFCLabel = fwd.IFCLabel

	q := url.Values{}
	q.Set("year", fmt.Sprint(fwd.IFC.Year))
	switch calendar.SpecialDay(fwd.IFC.Special) {
	case calendar.LeapDay:
		result.Period = fwd.IFC.Special
		q.Set("special", "leap-day")
	case calendar.YearDay:
		result.Period = fwd.IFC.Special
		q.Set("special", "year-day")
	default:
		result.Period, _ = calendar.IFCMonthName(fwd.IFC.Month)
		q.Set("month", fmt.Sprint(fwd.IFC.Month+1))
		q.Set("day", fmt.Sprint(fwd.IFC.Day))
	}

	var back ConversionResponse
	if err := getData(client, baseURL+"/api/v1/convert/ifc?"+q.Encode(), &back); err != nil {
		result.Error = err.Error()
		return result
	}

	if back.Gregorian != dateStr {
		result.Error = fmt.Sprintf("round trip returned %s", back.Gregorian)
		return result
	}

	result.Success = true
	return result
}

func getData(client *http.Client, rawURL string, target any) error {
	resp, err := client.Get(rawURL)
	if err != nil {
		return fmt.Errorf("connection error: %w", err)
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

// Analysis holds the analyzed results
type Analysis struct {
	TotalDays   int                     `json:"total_days"`
	TotalFailed int                     `json:"total_failed"`
	ByPeriod    map[string]*PeriodStats `json:"by_period"`
	ByYear      map[int]*YearStats      `json:"by_year"`
	AllFailures []TestResult            `json:"failures"`
}

type YearStats struct {
	Year        int `json:"year"`
	TotalDays   int `json:"total_days"`
	SpecialDays int `json:"special_days"`
	FailedDays  int `json:"failed_days"`
}

func analyzeResults(results []TestResult) *Analysis {
	analysis := &Analysis{
		ByPeriod: make(map[string]*PeriodStats),
		ByYear:   make(map[int]*YearStats),
	}

	for _, r := range results {
		analysis.TotalDays++

		date, _ := time.Parse("2006-01-02", r.Date)
		year := date.Year()
		if _, ok := analysis.ByYear[year]; !ok {
			analysis.ByYear[year] = &YearStats{Year: year}
		}
		analysis.ByYear[year].TotalDays++
		if p := calendar.SpecialDay(r.Period); p == calendar.LeapDay || p == calendar.YearDay {
			analysis.ByYear[year].SpecialDays++
		}

		period := r.Period
		if period == "" {
			period = "(conversion failed)"
		}
		if _, ok := analysis.ByPeriod[period]; !ok {
			analysis.ByPeriod[period] = &PeriodStats{Period: period}
		}
		analysis.ByPeriod[period].TotalDays++

		if !r.Success {
			analysis.TotalFailed++
			analysis.ByYear[year].FailedDays++
			analysis.ByPeriod[period].FailedDays++
			analysis.ByPeriod[period].FailedDates = append(analysis.ByPeriod[period].FailedDates, r.Date)
			analysis.AllFailures = append(analysis.AllFailures, r)
		}
	}

	return analysis
}

func printSummary(out io.Writer, analysis *Analysis) {
	fmt.Fprintln(out, "================================================================")
	fmt.Fprintln(out, "SUMMARY")
	fmt.Fprintln(out, "================================================================")
	fmt.Fprintf(out, "Total Days Tested: %d\n", analysis.TotalDays)
	fmt.Fprintf(out, "Failed:            %d\n\n", analysis.TotalFailed)

	years := make([]int, 0, len(analysis.ByYear))
	for y := range analysis.ByYear {
		years = append(years, y)
	}
	sort.Ints(years)

	fmt.Fprintln(out, "By Year:")
	for _, y := range years {
		stats := analysis.ByYear[y]
		status := "✓"
		if stats.FailedDays > 0 {
			status = "✗"
		}
		fmt.Fprintf(out, "  %s %d: %d days, %d special, %d failed\n",
			status, y, stats.TotalDays, stats.SpecialDays, stats.FailedDays)
	}
	fmt.Fprintln(out)

	if analysis.TotalFailed == 0 {
		fmt.Fprintln(out, "No failures!")
		return
	}

	var periods []*PeriodStats
	for _, stats := range analysis.ByPeriod {
		if stats.FailedDays > 0 {
			periods = append(periods, stats)
		}
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].FailedDays > periods[j].FailedDays
	})

	fmt.Fprintln(out, "FAILURES BY IFC MONTH")
	for _, stats := range periods {
		fmt.Fprintf(out, "\n%s: %d failures\n", stats.Period, stats.FailedDays)
		for i, date := range stats.FailedDates {
			if i == 5 {
				fmt.Fprintf(out, "  ... and %d more\n", len(stats.FailedDates)-5)
				break
			}
			fmt.Fprintf(out, "  - %s\n", date)
		}
	}
	fmt.Fprintln(out)
}

func saveResults(filename string, analysis *Analysis) {
	output := struct {
		GeneratedAt string    `json:"generated_at"`
		Analysis    *Analysis `json:"analysis"`
	}{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Analysis:    analysis,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling results: %v\n", err)
		return
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		return
	}

	fmt.Printf("Results saved to: %s\n", filename)
}
