package storage

import "sort"

// MockRepository is an in-memory implementation of Repository for testing.
// It stores all data in maps, making tests fast and isolated.
type MockRepository struct {
	dedications map[string]*Dedication
	totals      map[string]*SummaryTotal
	reports     map[string]*BreakdownReport

	// Hooks for test assertions
	SaveDedicationCalled bool
	LastSavedDedication  *Dedication
	SaveReportCalled     bool
	LastSavedReport      *BreakdownReport

	// Error injection for testing error paths
	SaveDedicationErr  error
	ListDedicationsErr error
	GetSummaryTotalErr error
	SaveReportErr      error
}

// Compile-time check that MockRepository implements Repository
var _ Repository = (*MockRepository)(nil)

// NewMockRepository creates a new mock repository for testing
func NewMockRepository() *MockRepository {
	return &MockRepository{
		dedications: make(map[string]*Dedication),
		totals:      make(map[string]*SummaryTotal),
		reports:     make(map[string]*BreakdownReport),
	}
}

// AddDedication seeds a dedication without touching the assertion hooks
func (m *MockRepository) AddDedication(d *Dedication) {
	m.dedications[d.ID] = d
}

// SaveDedication saves or updates a dedication
func (m *MockRepository) SaveDedication(d *Dedication) error {
	m.SaveDedicationCalled = true
	m.LastSavedDedication = d
	if m.SaveDedicationErr != nil {
		return m.SaveDedicationErr
	}
	m.dedications[d.ID] = d
	return nil
}

// GetDedication retrieves a dedication by ID
func (m *MockRepository) GetDedication(id string) (*Dedication, error) {
	return m.dedications[id], nil
}

// ListDedications returns dedications matching the filters with pagination
func (m *MockRepository) ListDedications(filters DedicationFilters) (*DedicationListResult, error) {
	if m.ListDedicationsErr != nil {
		return nil, m.ListDedicationsErr
	}

	matched := make([]*Dedication, 0)
	for _, d := range m.dedications {
		if filters.Method != "" && d.Method != filters.Method {
			continue
		}
		if filters.Category != "" && d.Category != filters.Category {
			continue
		}
		matched = append(matched, d)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	limit := filters.Limit
	if limit == 0 {
		limit = 50
	}
	if filters.Offset < len(matched) {
		matched = matched[filters.Offset:]
	} else {
		matched = nil
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	return &DedicationListResult{
		Dedications: matched,
		TotalCount:  total,
		Limit:       limit,
		Offset:      filters.Offset,
	}, nil
}

// SetSummaryTotal sets the authoritative total for a period
func (m *MockRepository) SetSummaryTotal(period string, total float64) error {
	m.totals[period] = &SummaryTotal{Period: period, Total: total}
	return nil
}

// GetSummaryTotal retrieves the total for a period
func (m *MockRepository) GetSummaryTotal(period string) (*SummaryTotal, error) {
	if m.GetSummaryTotalErr != nil {
		return nil, m.GetSummaryTotalErr
	}
	return m.totals[period], nil
}

// SaveReport persists the output of one summary run
func (m *MockRepository) SaveReport(r *BreakdownReport) error {
	m.SaveReportCalled = true
	m.LastSavedReport = r
	if m.SaveReportErr != nil {
		return m.SaveReportErr
	}
	m.reports[r.ID] = r
	return nil
}

// GetReport retrieves a report by ID
func (m *MockRepository) GetReport(id string) (*BreakdownReport, error) {
	return m.reports[id], nil
}

// ListReports returns the most recent reports, newest first
func (m *MockRepository) ListReports(limit int) ([]*BreakdownReport, error) {
	reports := make([]*BreakdownReport, 0, len(m.reports))
	for _, r := range m.reports {
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, j int) bool {
		if !reports[i].GeneratedAt.Equal(reports[j].GeneratedAt) {
			return reports[i].GeneratedAt.After(reports[j].GeneratedAt)
		}
		return reports[i].ID < reports[j].ID
	})
	if limit <= 0 {
		limit = 20
	}
	if len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}

// Close is a no-op for the mock
func (m *MockRepository) Close() error {
	return nil
}
