package dto

// SetSummaryTotalRequest sets the authoritative total for a period.
type SetSummaryTotalRequest struct {
	Period string  `json:"period"`
	Total  float64 `json:"total"`
}

// GenerateReportRequest asks for a breakdown report run.
type GenerateReportRequest struct {
	Period string `json:"period"`
}
