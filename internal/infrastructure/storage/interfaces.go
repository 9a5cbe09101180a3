package storage

// Repository defines the complete storage interface.
// This interface allows swapping implementations and makes testing with the
// in-memory mock straightforward.
type Repository interface {
	DedicationRepository
	SummaryRepository
	ReportRepository
	Close() error
}

// DedicationRepository handles dedication record operations
type DedicationRepository interface {
	// SaveDedication saves or updates a dedication
	SaveDedication(d *Dedication) error

	// GetDedication retrieves a dedication by ID. Returns nil when not found.
	GetDedication(id string) (*Dedication, error)

	// ListDedications returns dedications matching the filters with pagination
	ListDedications(filters DedicationFilters) (*DedicationListResult, error)
}

// DedicationFilters defines filters for listing dedications
type DedicationFilters struct {
	Method   string // Filter by payment method (empty = all)
	Category string // Filter by dedication category (empty = all)
	Limit    int    // Max results (0 = default 50, negative = no limit)
	Offset   int    // Pagination offset
}

// DedicationListResult contains paginated dedication results
type DedicationListResult struct {
	Dedications []*Dedication `json:"dedications"`
	TotalCount  int           `json:"total_count"`
	Limit       int           `json:"limit"`
	Offset      int           `json:"offset"`
}

// SummaryRepository handles the authoritative summary totals
type SummaryRepository interface {
	// SetSummaryTotal sets the authoritative total for a period
	SetSummaryTotal(period string, total float64) error

	// GetSummaryTotal retrieves the total for a period. Returns nil when
	// no total has been recorded for it.
	GetSummaryTotal(period string) (*SummaryTotal, error)
}

// ReportRepository handles persisted breakdown reports
type ReportRepository interface {
	// SaveReport persists the output of one summary run
	SaveReport(r *BreakdownReport) error

	// GetReport retrieves a report by ID. Returns nil when not found.
	GetReport(id string) (*BreakdownReport, error)

	// ListReports returns the most recent reports, newest first
	ListReports(limit int) ([]*BreakdownReport, error)
}
