package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsutakahope/churching-sub001/internal/infrastructure/storage"
)

func seedDedication(repo *storage.MockRepository, amount float64, method string) {
	repo.AddDedication(&storage.Dedication{
		ID:          uuid.NewString(),
		Amount:      amount,
		Method:      method,
		Category:    "感恩",
		DedicatorID: "D001",
		Date:        "2024-03-10",
		CreatedAt:   time.Now().UTC(),
	})
}

func TestComputeSummary_ConsistentBatch(t *testing.T) {
	repo := storage.NewMockRepository()
	seedDedication(repo, 1000, "cash")
	seedDedication(repo, 2000, "cheque")
	seedDedication(repo, 500, "cash")
	require.NoError(t, repo.SetSummaryTotal("2024-03", 3500))

	svc := NewSummaryService(repo, nil)
	view, err := svc.ComputeSummary(context.Background(), "2024-03")

	require.NoError(t, err)
	assert.Equal(t, storage.ReportStatusOK, view.Status)
	assert.Equal(t, 1500.0, view.Breakdown.CashTotal)
	assert.Equal(t, 2000.0, view.Breakdown.ChequeTotal)
	assert.True(t, view.Breakdown.HasCheque)
	assert.True(t, view.Consistency.Consistent)
	assert.Equal(t, 0.0, view.Consistency.Difference)
	assert.Empty(t, view.Warnings)
	assert.Empty(t, view.Notice)
}

func TestComputeSummary_DriftIsAdvisory(t *testing.T) {
	repo := storage.NewMockRepository()
	seedDedication(repo, 1000, "cash")
	require.NoError(t, repo.SetSummaryTotal("2024-03", 1100))

	svc := NewSummaryService(repo, nil)
	view, err := svc.ComputeSummary(context.Background(), "2024-03")

	require.NoError(t, err)
	// The breakdown is still returned and displayable.
	assert.Equal(t, storage.ReportStatusOK, view.Status)
	assert.Equal(t, 1000.0, view.Breakdown.CashTotal)
	assert.False(t, view.Consistency.Consistent)
	assert.Equal(t, 100.0, view.Consistency.Difference)
	require.NotEmpty(t, view.Warnings)
	assert.Contains(t, view.Warnings[0], "100")
}

func TestComputeSummary_EmptyStoreIsHealthy(t *testing.T) {
	repo := storage.NewMockRepository()
	require.NoError(t, repo.SetSummaryTotal("2024-03", 0))

	svc := NewSummaryService(repo, nil)
	view, err := svc.ComputeSummary(context.Background(), "2024-03")

	require.NoError(t, err)
	assert.Equal(t, storage.ReportStatusOK, view.Status)
	assert.Equal(t, 0.0, view.Breakdown.CashTotal)
	assert.Contains(t, view.Warnings, "no dedication records supplied")
}

func TestComputeSummary_MissingTotalWarns(t *testing.T) {
	repo := storage.NewMockRepository()
	seedDedication(repo, 1000, "cash")

	svc := NewSummaryService(repo, nil)
	view, err := svc.ComputeSummary(context.Background(), "2024-03")

	require.NoError(t, err)
	assert.Equal(t, 0.0, view.SummaryTotal)
	require.NotEmpty(t, view.Warnings)
	assert.Contains(t, view.Warnings[0], "no summary total recorded")
}

func TestComputeSummary_AllInvalidDegradesGracefully(t *testing.T) {
	repo := storage.NewMockRepository()
	// Invalid on purpose: amount fails validation, record is the whole batch.
	repo.AddDedication(&storage.Dedication{
		ID:          uuid.NewString(),
		Amount:      -100,
		Method:      "invalid",
		Category:    "x",
		DedicatorID: "D001",
		Date:        "2024-03-10",
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, repo.SetSummaryTotal("2024-03", 0))

	svc := NewSummaryService(repo, nil)
	view, err := svc.ComputeSummary(context.Background(), "2024-03")

	// Calculation failure degrades, it does not propagate.
	require.NoError(t, err)
	assert.Equal(t, storage.ReportStatusFailed, view.Status)
	assert.Equal(t, 0.0, view.Breakdown.CashTotal)
	assert.Equal(t, "dedication records are invalid", view.Notice)
}

func TestComputeSummary_StorageFailurePropagates(t *testing.T) {
	repo := storage.NewMockRepository()
	repo.ListDedicationsErr = assert.AnError

	svc := NewSummaryService(repo, nil)
	_, err := svc.ComputeSummary(context.Background(), "2024-03")

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGenerateReport_PersistsOutcome(t *testing.T) {
	repo := storage.NewMockRepository()
	seedDedication(repo, 1000, "cash")
	seedDedication(repo, 2000, "cheque")
	require.NoError(t, repo.SetSummaryTotal("2024-03", 3000))

	svc := NewSummaryService(repo, nil)
	report, err := svc.GenerateReport(context.Background(), "2024-03")

	require.NoError(t, err)
	assert.True(t, repo.SaveReportCalled)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "2024-03", report.Period)
	assert.Equal(t, storage.ReportStatusOK, report.Status)
	assert.Equal(t, 1000.0, report.CashTotal)
	assert.Equal(t, 2000.0, report.ChequeTotal)
	assert.True(t, report.HasCheque)
	assert.True(t, report.Consistent)
	assert.Equal(t, 2, report.RecordCount)
	assert.Equal(t, 2, report.ValidCount)
	assert.Equal(t, 0, report.InvalidCount)

	stored, err := repo.GetReport(report.ID)
	require.NoError(t, err)
	assert.Equal(t, report, stored)
}

func TestGenerateReport_FailedRunIsStillPersisted(t *testing.T) {
	repo := storage.NewMockRepository()
	repo.AddDedication(&storage.Dedication{
		ID:        uuid.NewString(),
		Amount:    -1,
		Method:    "invalid",
		CreatedAt: time.Now().UTC(),
	})

	svc := NewSummaryService(repo, nil)
	report, err := svc.GenerateReport(context.Background(), "2024-03")

	require.NoError(t, err)
	assert.Equal(t, storage.ReportStatusFailed, report.Status)
	assert.NotEmpty(t, report.Message)
	assert.Equal(t, 1, report.RecordCount)
	assert.Equal(t, 0.0, report.CashTotal)
}
