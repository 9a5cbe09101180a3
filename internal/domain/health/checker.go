// Package health runs pre-flight checks on the raw inputs of a breakdown
// calculation.
//
// A fatal finding means the caller should skip the calculation entirely and
// fall back to a zero-valued display state; warnings are advisory only.
package health

import (
	"fmt"
	"math"
	"time"
)

// Stats carries observational figures about the checked inputs.
type Stats struct {
	// RecordCount is the number of supplied records. Stays 0 when the
	// records value is not a valid sequence.
	RecordCount int `json:"recordCount"`

	// SummaryTotal echoes the summary total that was checked.
	SummaryTotal float64 `json:"summaryTotal"`

	// Timestamp is when the check ran, RFC 3339 in UTC.
	Timestamp string `json:"timestamp"`
}

// Report is the outcome of one pre-flight check.
type Report struct {
	// Healthy is false when any fatal finding was recorded.
	Healthy bool `json:"isHealthy"`

	// Warnings are advisory findings that do not block calculation.
	Warnings []string `json:"warnings,omitempty"`

	// Errors are fatal findings.
	Errors []string `json:"errors,omitempty"`

	Stats Stats `json:"stats"`
}

// Check validates the overall calculation inputs before the heavier
// per-record work runs. It never fails: every finding lands in the report.
func Check(records any, summaryTotal float64) Report {
	rep := Report{
		Healthy: true,
		Stats: Stats{
			SummaryTotal: summaryTotal,
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
		},
	}

	if rs, ok := records.([]any); ok {
		rep.Stats.RecordCount = len(rs)
		if len(rs) == 0 {
			rep.Warnings = append(rep.Warnings, "no dedication records supplied")
		}
	} else {
		rep.Healthy = false
		rep.Errors = append(rep.Errors,
			fmt.Sprintf("dedication records must be a list, got %T", records))
	}

	if math.IsNaN(summaryTotal) {
		rep.Healthy = false
		rep.Errors = append(rep.Errors, "summary total is not a number")
	} else if math.IsInf(summaryTotal, 0) {
		rep.Healthy = false
		rep.Errors = append(rep.Errors, "summary total is not finite")
	} else if summaryTotal < 0 {
		rep.Warnings = append(rep.Warnings, "summary total is negative")
	}

	return rep
}
