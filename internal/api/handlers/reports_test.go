package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsutakahope/churching-sub001/internal/api/dto"
	"github.com/itsutakahope/churching-sub001/internal/api/handlers"
	"github.com/itsutakahope/churching-sub001/internal/application/service"
	"github.com/itsutakahope/churching-sub001/internal/infrastructure/storage"
)

func withChiParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newReportsHandler(repo *storage.MockRepository) *handlers.ReportsHandler {
	svc := service.NewSummaryService(repo, nil)
	return handlers.NewReportsHandler(repo, svc, "current")
}

func TestReportsHandler_Create(t *testing.T) {
	t.Run("runs and persists a report", func(t *testing.T) {
		repo := storage.NewMockRepository()
		addDedication(repo, "DED-1", 1000, "cash")
		addDedication(repo, "DED-2", 2000, "cheque")
		require.NoError(t, repo.SetSummaryTotal("2024-03", 3000))

		handler := newReportsHandler(repo)

		body := `{"period": "2024-03"}`
		req := httptest.NewRequest(http.MethodPost, "/api/reports", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, repo.SaveReportCalled)

		var response dto.ReportResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

		assert.NotEmpty(t, response.ID)
		assert.Equal(t, "2024-03", response.Period)
		assert.Equal(t, "ok", response.Status)
		assert.Equal(t, 1000.0, response.Breakdown.CashTotal)
		assert.True(t, response.Consistent)
	})

	t.Run("empty body defaults the period", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := newReportsHandler(repo)

		req := httptest.NewRequest(http.MethodPost, "/api/reports", nil)
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var response dto.ReportResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "current", response.Period)
	})

	t.Run("reports storage failures as internal", func(t *testing.T) {
		repo := storage.NewMockRepository()
		repo.SaveReportErr = assert.AnError
		handler := newReportsHandler(repo)

		req := httptest.NewRequest(http.MethodPost, "/api/reports", nil)
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestReportsHandler_List(t *testing.T) {
	repo := storage.NewMockRepository()
	require.NoError(t, repo.SaveReport(&storage.BreakdownReport{
		ID: "R1", Period: "2024-03", GeneratedAt: time.Now().UTC(),
		Status: storage.ReportStatusOK, CashTotal: 100,
	}))
	require.NoError(t, repo.SaveReport(&storage.BreakdownReport{
		ID: "R2", Period: "2024-03", GeneratedAt: time.Now().UTC().Add(time.Minute),
		Status: storage.ReportStatusFailed, Message: "dedication records are invalid",
	}))

	handler := newReportsHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.ReportListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

	require.Len(t, response.Reports, 2)
	// Newest first.
	assert.Equal(t, "R2", response.Reports[0].ID)
	assert.Equal(t, "failed", response.Reports[0].Status)
}

func TestReportsHandler_Get(t *testing.T) {
	repo := storage.NewMockRepository()
	require.NoError(t, repo.SaveReport(&storage.BreakdownReport{
		ID: "R1", Period: "2024-03", GeneratedAt: time.Now().UTC(),
		Status: storage.ReportStatusOK, CashTotal: 1500, ChequeTotal: 2000, HasCheque: true,
	}))

	handler := newReportsHandler(repo)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reports/R1", nil)
		req = withChiParam(req, "id", "R1")
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response dto.ReportResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "1,500 + 2,000 = 3,500", response.Breakdown.DisplayLine)
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reports/missing", nil)
		req = withChiParam(req, "id", "missing")
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
