package storage

import (
	"database/sql"
	"fmt"
)

// Migration represents a database schema migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// allMigrations defines all migrations in order
var allMigrations = []Migration{
	{
		Version: 1,
		Name:    "initial_schema",
		Up:      migration001InitialSchema,
	},
	{
		Version: 2,
		Name:    "add_breakdown_reports_table",
		Up:      migration002AddBreakdownReportsTable,
	},
}

// runMigrations executes all pending migrations
func (s *Storage) runMigrations() error {
	if err := s.ensureMigrationsTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := s.getAppliedMigrations()
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, m := range allMigrations {
		if applied[m.Version] {
			continue
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}

		if _, err := tx.Exec(
			"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
			m.Version, m.Name,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}

func (s *Storage) ensureMigrationsTable() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

func (s *Storage) getAppliedMigrations() (map[int]bool, error) {
	rows, err := s.db.Query("SELECT version FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func migration001InitialSchema(tx *sql.Tx) error {
	if _, err := tx.Exec(`
	CREATE TABLE IF NOT EXISTS dedications (
		id TEXT PRIMARY KEY,
		amount REAL NOT NULL,
		method TEXT NOT NULL,
		category TEXT NOT NULL,
		dedicator_id TEXT NOT NULL,
		dedication_date TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
	CREATE INDEX IF NOT EXISTS idx_dedications_method ON dedications(method)
	`); err != nil {
		return err
	}
	if _, err := tx.Exec(`
	CREATE INDEX IF NOT EXISTS idx_dedications_category ON dedications(category)
	`); err != nil {
		return err
	}

	_, err := tx.Exec(`
	CREATE TABLE IF NOT EXISTS summary_totals (
		period TEXT PRIMARY KEY,
		total REAL NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`)
	return err
}

func migration002AddBreakdownReportsTable(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE IF NOT EXISTS breakdown_reports (
		id TEXT PRIMARY KEY,
		period TEXT NOT NULL,
		generated_at TIMESTAMP NOT NULL,
		status TEXT NOT NULL,
		cash_total REAL NOT NULL,
		cheque_total REAL NOT NULL,
		has_cheque INTEGER NOT NULL,
		summary_total REAL NOT NULL,
		consistent INTEGER NOT NULL,
		difference REAL NOT NULL,
		record_count INTEGER NOT NULL,
		valid_count INTEGER NOT NULL,
		invalid_count INTEGER NOT NULL,
		message TEXT NOT NULL DEFAULT ''
	)`)
	return err
}
