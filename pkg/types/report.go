package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// -----------------------------------------------------------------------------
// Session Report
// -----------------------------------------------------------------------------

// Report collects the session-level outputs of a test run: the region size,
// per-test results, and the full address ledger.
type Report struct {
	// Metadata
	SessionID string        `json:"session_id"`
	Size      int           `json:"size"`
	Words     int           `json:"words"`
	Base      Address       `json:"base"`
	Elapsed   time.Duration `json:"elapsed"`

	// Per-test results in execution order
	Results []TestResult `json:"results"`

	// Ledger sorted by address
	Faults []LedgerEntry `json:"faults"`

	// Summary statistics
	Summary ReportSummary `json:"summary"`
}

// ReportSummary provides quick statistics.
type ReportSummary struct {
	TestsRun        int    `json:"tests_run"`
	TestsFailed     int    `json:"tests_failed"`
	TotalErrors     uint64 `json:"total_errors"`     // sum of ledger counts
	FaultyAddresses int    `json:"faulty_addresses"` // distinct ledger entries
}

// NewReport creates an empty report for a region.
func NewReport(sessionID string, size int, base Address) *Report {
	return &Report{
		SessionID: sessionID,
		Size:      size,
		Words:     size / WordSize,
		Base:      base,
	}
}

// AddResult appends a test result and updates the summary.
func (r *Report) AddResult(res TestResult) {
	r.Results = append(r.Results, res)
	r.Summary.TestsRun++
	if !res.Passed() {
		r.Summary.TestsFailed++
	}
}

// SetFaults replaces the ledger view; entries are sorted by address.
func (r *Report) SetFaults(entries []LedgerEntry) {
	r.Faults = make([]LedgerEntry, len(entries))
	copy(r.Faults, entries)
	sort.Slice(r.Faults, func(i, j int) bool {
		return r.Faults[i].Address < r.Faults[j].Address
	})
	r.Summary.FaultyAddresses = len(r.Faults)
	r.Summary.TotalErrors = 0
	for _, e := range r.Faults {
		r.Summary.TotalErrors += uint64(e.Count)
	}
}

// HasFaults returns true if any address was flagged.
func (r *Report) HasFaults() bool {
	return len(r.Faults) > 0
}

// -----------------------------------------------------------------------------
// Output Formatters
// -----------------------------------------------------------------------------

// FormatJSON returns the report as formatted JSON (2-space indentation).
func (r *Report) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatText returns a human-readable text report.
func (r *Report) FormatText() string {
	var b strings.Builder

	// Header
	b.WriteString("=" + strings.Repeat("=", 78) + "\n")
	b.WriteString("Memory Test Report\n")
	b.WriteString("=" + strings.Repeat("=", 78) + "\n\n")

	if r.SessionID != "" {
		b.WriteString(fmt.Sprintf("Session:   %s\n", r.SessionID))
	}
	b.WriteString(fmt.Sprintf("Size:      %d bytes (%d words)\n", r.Size, r.Words))
	b.WriteString(fmt.Sprintf("Elapsed:   %v\n\n", r.Elapsed))

	b.WriteString("RESULTS\n")
	b.WriteString(strings.Repeat("-", 79) + "\n")
	for _, res := range r.Results {
		status := "ok"
		if !res.Passed() {
			status = fmt.Sprintf("%d errors", res.Errors)
		}
		b.WriteString(fmt.Sprintf("  %-14s %s\n", res.Name, status))
	}
	b.WriteString("\n")

	b.WriteString("SUMMARY\n")
	b.WriteString(strings.Repeat("-", 79) + "\n")
	b.WriteString(fmt.Sprintf("  Tests run:        %d\n", r.Summary.TestsRun))
	b.WriteString(fmt.Sprintf("  Tests failed:     %d\n", r.Summary.TestsFailed))
	b.WriteString(fmt.Sprintf("  Total errors:     %d\n", r.Summary.TotalErrors))
	b.WriteString(fmt.Sprintf("  Faulty addresses: %d\n\n", r.Summary.FaultyAddresses))

	if !r.HasFaults() {
		b.WriteString("No faults found.\n")
		return b.String()
	}

	b.WriteString("FAULTS\n")
	b.WriteString(strings.Repeat("-", 79) + "\n")
	b.WriteString(r.FormatTextCompact())

	return b.String()
}

// FormatTextCompact returns one line per faulty address.
func (r *Report) FormatTextCompact() string {
	var b strings.Builder

	for _, f := range r.Faults {
		b.WriteString(fmt.Sprintf("0x%016X %d\n", uintptr(f.Address), f.Count))
	}

	if len(r.Faults) == 0 {
		b.WriteString("No faults found.\n")
	}

	return b.String()
}
