// Package service orchestrates the dedication summary flow: pre-flight
// health check, breakdown calculation, consistency check against the
// authoritative summary total, and error classification.
//
// A calculation failure never propagates to the caller as an error: it
// degrades to a zero-valued summary carrying a classified, user-facing
// message. Only infrastructure failures (storage) surface as errors.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/itsutakahope/churching-sub001/internal/domain/breakdown"
	"github.com/itsutakahope/churching-sub001/internal/domain/classify"
	"github.com/itsutakahope/churching-sub001/internal/domain/consistency"
	"github.com/itsutakahope/churching-sub001/internal/domain/health"
	"github.com/itsutakahope/churching-sub001/internal/infrastructure/storage"
)

// SummaryService computes and persists dedication breakdown summaries.
type SummaryService struct {
	repo       storage.Repository
	calculator *breakdown.Calculator
	classifier *classify.Classifier
	logger     *slog.Logger
}

// NewSummaryService creates a summary service. A nil logger falls back to
// slog.Default.
func NewSummaryService(repo storage.Repository, logger *slog.Logger) *SummaryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryService{
		repo:       repo,
		calculator: breakdown.NewCalculator(logger),
		classifier: classify.NewClassifier(logger),
		logger:     logger.With("component", "summary_service"),
	}
}

// SummaryView is the displayable result of one summary computation.
type SummaryView struct {
	// Status is ok, degraded (pre-flight check failed) or failed
	// (calculation raised).
	Status string

	Period       string
	Breakdown    breakdown.Breakdown
	Counts       breakdown.Counts
	SummaryTotal float64
	Consistency  consistency.Result
	Health       health.Report

	// Warnings are advisory messages safe to display (health warnings,
	// consistency drift).
	Warnings []string

	// Notice is the user-facing message for degraded and failed runs.
	Notice string
}

// ComputeSummary runs the full calculation flow over the stored dedications
// for a period, without persisting anything. The returned error is non-nil
// only for storage failures.
func (s *SummaryService) ComputeSummary(ctx context.Context, period string) (*SummaryView, error) {
	list, err := s.repo.ListDedications(storage.DedicationFilters{Limit: -1})
	if err != nil {
		return nil, fmt.Errorf("loading dedications: %w", err)
	}

	summaryTotal := 0.0
	st, err := s.repo.GetSummaryTotal(period)
	if err != nil {
		return nil, fmt.Errorf("loading summary total: %w", err)
	}

	view := &SummaryView{Status: storage.ReportStatusOK, Period: period}
	if st != nil {
		summaryTotal = st.Total
	} else {
		view.Warnings = append(view.Warnings,
			fmt.Sprintf("no summary total recorded for period %q", period))
	}
	view.SummaryTotal = summaryTotal

	records := rawRecords(list.Dedications)

	// Pre-flight gate: a fatal finding skips calculation entirely and
	// substitutes the zero-valued result.
	view.Health = health.Check(records, summaryTotal)
	view.Warnings = append(view.Warnings, view.Health.Warnings...)
	if !view.Health.Healthy {
		view.Status = storage.ReportStatusDegraded
		view.Notice = "data anomaly detected"
		s.logger.Error("pre-flight check failed, substituting zero-valued summary",
			"period", period, "errors", view.Health.Errors)
		return view, nil
	}

	sum, err := s.calculator.CalculateSummary(records)
	if err != nil {
		classified := s.classifier.Classify(err)
		view.Status = storage.ReportStatusFailed
		view.Notice = classified.Message
		return view, nil
	}
	view.Breakdown = sum.Breakdown
	view.Counts = sum.Counts

	// Consistency drift is advisory: the breakdown is still displayed.
	view.Consistency = consistency.Check(sum.Breakdown, summaryTotal)
	if !view.Consistency.Consistent {
		view.Warnings = append(view.Warnings, view.Consistency.Errors...)
		s.logger.Warn("breakdown disagrees with summary total",
			"period", period,
			"calculated_total", view.Consistency.CalculatedTotal,
			"summary_total", summaryTotal,
			"difference", view.Consistency.Difference,
		)
	}

	return view, nil
}

// GenerateReport computes a summary and persists it as a breakdown report.
func (s *SummaryService) GenerateReport(ctx context.Context, period string) (*storage.BreakdownReport, error) {
	view, err := s.ComputeSummary(ctx, period)
	if err != nil {
		return nil, err
	}

	report := &storage.BreakdownReport{
		ID:           uuid.NewString(),
		Period:       period,
		GeneratedAt:  time.Now().UTC(),
		Status:       view.Status,
		CashTotal:    view.Breakdown.CashTotal,
		ChequeTotal:  view.Breakdown.ChequeTotal,
		HasCheque:    view.Breakdown.HasCheque,
		SummaryTotal: view.SummaryTotal,
		Consistent:   view.Consistency.Consistent,
		Difference:   view.Consistency.Difference,
		RecordCount:  view.Counts.Total,
		ValidCount:   view.Counts.Valid,
		InvalidCount: view.Counts.Invalid,
		Message:      view.Notice,
	}
	if view.Status != storage.ReportStatusOK {
		report.RecordCount = view.Health.Stats.RecordCount
	}

	if err := s.repo.SaveReport(report); err != nil {
		return nil, fmt.Errorf("saving report: %w", err)
	}

	s.logger.Info("breakdown report generated",
		"report_id", report.ID,
		"period", period,
		"status", report.Status,
		"consistent", report.Consistent,
	)
	return report, nil
}

// rawRecords converts stored dedications into the untyped record batch the
// calculator consumes. Going back through the raw form keeps the calculation
// input identical to what a store snapshot delivers.
func rawRecords(ds []*storage.Dedication) []any {
	records := make([]any, len(ds))
	for i, d := range ds {
		records[i] = map[string]any{
			"amount":             d.Amount,
			"method":             d.Method,
			"dedicationCategory": d.Category,
			"dedicatorId":        d.DedicatorID,
			"dedicationDate":     d.Date,
		}
	}
	return records
}
