package storage

import "time"

// Dedication is a stored donation record.
type Dedication struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	Category    string    `json:"dedicationCategory"`
	DedicatorID string    `json:"dedicatorId"`
	Date        string    `json:"dedicationDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SummaryTotal is the authoritative total for one period, maintained by the
// aggregation side and used to cross-check computed breakdowns.
type SummaryTotal struct {
	Period    string    `json:"period"`
	Total     float64   `json:"total"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Report statuses.
const (
	ReportStatusOK       = "ok"
	ReportStatusDegraded = "degraded"
	ReportStatusFailed   = "failed"
)

// BreakdownReport is the persisted output of one summary run.
type BreakdownReport struct {
	ID          string    `json:"id"`
	Period      string    `json:"period"`
	GeneratedAt time.Time `json:"generatedAt"`

	// Status is ok, degraded (pre-flight check failed, zero-valued result
	// substituted) or failed (calculation raised).
	Status string `json:"status"`

	CashTotal   float64 `json:"cashTotal"`
	ChequeTotal float64 `json:"chequeTotal"`
	HasCheque   bool    `json:"hasCheque"`

	SummaryTotal float64 `json:"summaryTotal"`
	Consistent   bool    `json:"consistent"`
	Difference   float64 `json:"difference"`

	RecordCount  int `json:"recordCount"`
	ValidCount   int `json:"validCount"`
	InvalidCount int `json:"invalidCount"`

	// Message is the user-facing notice for degraded and failed runs.
	Message string `json:"message,omitempty"`
}
