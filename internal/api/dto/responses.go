package dto

import "time"

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthResponse creates a healthy response stamped with the current time.
func NewHealthResponse() HealthResponse {
	return HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// DedicationResponse represents a dedication in API responses.
type DedicationResponse struct {
	ID          string `json:"id"`
	Amount      float64 `json:"amount"`
	Method      string `json:"method"`
	Category    string `json:"dedicationCategory"`
	DedicatorID string `json:"dedicatorId"`
	Date        string `json:"dedicationDate"`
	CreatedAt   string `json:"createdAt"`
}

// DedicationListResponse is returned when listing dedications.
type DedicationListResponse struct {
	Dedications []DedicationResponse `json:"dedications"`
	TotalCount  int                  `json:"total_count"`
	Limit       int                  `json:"limit"`
	Offset      int                  `json:"offset"`
}

// BreakdownResponse is the cash/cheque split of a summary.
type BreakdownResponse struct {
	CashTotal   float64 `json:"cashTotal"`
	ChequeTotal float64 `json:"chequeTotal"`
	HasCheque   bool    `json:"hasCheque"`

	// DisplayLine is the rendered "cash + cheque = total" arithmetic,
	// present only when the batch contains cheque dedications.
	DisplayLine string `json:"displayLine,omitempty"`
}

// SummaryResponse is the live summary view.
type SummaryResponse struct {
	Status          string            `json:"status"`
	Period          string            `json:"period"`
	Breakdown       BreakdownResponse `json:"breakdown"`
	CalculatedTotal float64           `json:"calculatedTotal"`
	SummaryTotal    float64           `json:"summaryTotal"`
	Consistent      bool              `json:"consistent"`
	Difference      float64           `json:"difference"`
	RecordCount     int               `json:"recordCount"`
	ValidCount      int               `json:"validCount"`
	InvalidCount    int               `json:"invalidCount"`
	Warnings        []string          `json:"warnings,omitempty"`
	Notice          string            `json:"notice,omitempty"`
}

// SummaryTotalResponse echoes a stored authoritative total.
type SummaryTotalResponse struct {
	Period    string  `json:"period"`
	Total     float64 `json:"total"`
	UpdatedAt string  `json:"updatedAt"`
}

// ReportResponse represents a persisted breakdown report.
type ReportResponse struct {
	ID           string            `json:"id"`
	Period       string            `json:"period"`
	GeneratedAt  string            `json:"generatedAt"`
	Status       string            `json:"status"`
	Breakdown    BreakdownResponse `json:"breakdown"`
	SummaryTotal float64           `json:"summaryTotal"`
	Consistent   bool              `json:"consistent"`
	Difference   float64           `json:"difference"`
	RecordCount  int               `json:"recordCount"`
	ValidCount   int               `json:"validCount"`
	InvalidCount int               `json:"invalidCount"`
	Message      string            `json:"message,omitempty"`
}

// ReportListResponse is returned when listing reports.
type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
}
