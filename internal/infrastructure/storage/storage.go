// Package storage provides SQLite persistence for dedications, authoritative
// summary totals, and breakdown reports.
package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Storage provides SQLite database access.
// It implements the Repository interface.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements Repository
var _ Repository = (*Storage)(nil)

// NewStorage creates a new storage instance with SQLite database
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints (SQLite-specific)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Storage{db: db}

	// Run all pending migrations
	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// SaveDedication saves or updates a dedication
func (s *Storage) SaveDedication(d *Dedication) error {
	query := `
	INSERT OR REPLACE INTO dedications
	(id, amount, method, category, dedicator_id, dedication_date, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query,
		d.ID,
		d.Amount,
		d.Method,
		d.Category,
		d.DedicatorID,
		d.Date,
		d.CreatedAt,
	)
	return err
}

// GetDedication retrieves a dedication by ID
func (s *Storage) GetDedication(id string) (*Dedication, error) {
	query := `
	SELECT id, amount, method, category, dedicator_id, dedication_date, created_at
	FROM dedications WHERE id = ?
	`
	var d Dedication
	err := s.db.QueryRow(query, id).Scan(
		&d.ID, &d.Amount, &d.Method, &d.Category, &d.DedicatorID, &d.Date, &d.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDedications returns dedications matching the filters with pagination
func (s *Storage) ListDedications(filters DedicationFilters) (*DedicationListResult, error) {
	where := " WHERE 1=1"
	args := []any{}

	if filters.Method != "" {
		where += " AND method = ?"
		args = append(args, filters.Method)
	}
	if filters.Category != "" {
		where += " AND category = ?"
		args = append(args, filters.Category)
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM dedications"+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	limit := filters.Limit
	if limit == 0 {
		limit = 50
	}

	query := `
	SELECT id, amount, method, category, dedicator_id, dedication_date, created_at
	FROM dedications` + where + " ORDER BY created_at DESC, id"
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, filters.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := &DedicationListResult{
		Dedications: make([]*Dedication, 0),
		TotalCount:  total,
		Limit:       limit,
		Offset:      filters.Offset,
	}
	for rows.Next() {
		var d Dedication
		if err := rows.Scan(&d.ID, &d.Amount, &d.Method, &d.Category, &d.DedicatorID, &d.Date, &d.CreatedAt); err != nil {
			return nil, err
		}
		result.Dedications = append(result.Dedications, &d)
	}
	return result, rows.Err()
}

// SetSummaryTotal sets the authoritative total for a period
func (s *Storage) SetSummaryTotal(period string, total float64) error {
	_, err := s.db.Exec(`
	INSERT INTO summary_totals (period, total, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(period) DO UPDATE SET total = excluded.total, updated_at = CURRENT_TIMESTAMP
	`, period, total)
	return err
}

// GetSummaryTotal retrieves the total for a period
func (s *Storage) GetSummaryTotal(period string) (*SummaryTotal, error) {
	var st SummaryTotal
	err := s.db.QueryRow(
		"SELECT period, total, updated_at FROM summary_totals WHERE period = ?", period,
	).Scan(&st.Period, &st.Total, &st.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// SaveReport persists the output of one summary run
func (s *Storage) SaveReport(r *BreakdownReport) error {
	query := `
	INSERT OR REPLACE INTO breakdown_reports
	(id, period, generated_at, status, cash_total, cheque_total, has_cheque,
	 summary_total, consistent, difference, record_count, valid_count,
	 invalid_count, message)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query,
		r.ID,
		r.Period,
		r.GeneratedAt,
		r.Status,
		r.CashTotal,
		r.ChequeTotal,
		r.HasCheque,
		r.SummaryTotal,
		r.Consistent,
		r.Difference,
		r.RecordCount,
		r.ValidCount,
		r.InvalidCount,
		r.Message,
	)
	return err
}

// GetReport retrieves a report by ID
func (s *Storage) GetReport(id string) (*BreakdownReport, error) {
	row := s.db.QueryRow(selectReportColumns+" FROM breakdown_reports WHERE id = ?", id)
	r, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListReports returns the most recent reports, newest first
func (s *Storage) ListReports(limit int) ([]*BreakdownReport, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		selectReportColumns+" FROM breakdown_reports ORDER BY generated_at DESC, id LIMIT ?", limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	reports := make([]*BreakdownReport, 0)
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

const selectReportColumns = `
	SELECT id, period, generated_at, status, cash_total, cheque_total,
	       has_cheque, summary_total, consistent, difference, record_count,
	       valid_count, invalid_count, message`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*BreakdownReport, error) {
	var r BreakdownReport
	err := row.Scan(
		&r.ID, &r.Period, &r.GeneratedAt, &r.Status, &r.CashTotal, &r.ChequeTotal,
		&r.HasCheque, &r.SummaryTotal, &r.Consistent, &r.Difference,
		&r.RecordCount, &r.ValidCount, &r.InvalidCount, &r.Message,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
