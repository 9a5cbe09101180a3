package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsutakahope/churching-sub001/internal/api/dto"
	"github.com/itsutakahope/churching-sub001/internal/api/handlers"
	"github.com/itsutakahope/churching-sub001/internal/application/service"
	"github.com/itsutakahope/churching-sub001/internal/infrastructure/storage"
)

func newSummaryHandler(repo *storage.MockRepository) *handlers.SummaryHandler {
	svc := service.NewSummaryService(repo, nil)
	return handlers.NewSummaryHandler(repo, svc, "current")
}

func addDedication(repo *storage.MockRepository, id string, amount float64, method string) {
	repo.AddDedication(&storage.Dedication{
		ID: id, Amount: amount, Method: method,
		Category: "感恩", DedicatorID: "D001", Date: "2024-03-10",
		CreatedAt: time.Now().UTC(),
	})
}

func TestSummaryHandler_Get(t *testing.T) {
	t.Run("returns breakdown with display line for cheques", func(t *testing.T) {
		repo := storage.NewMockRepository()
		addDedication(repo, "DED-1", 1000, "cash")
		addDedication(repo, "DED-2", 2000, "cheque")
		addDedication(repo, "DED-3", 500, "cash")
		require.NoError(t, repo.SetSummaryTotal("current", 3500))

		handler := newSummaryHandler(repo)

		req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response dto.SummaryResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

		assert.Equal(t, "ok", response.Status)
		assert.Equal(t, 1500.0, response.Breakdown.CashTotal)
		assert.Equal(t, 2000.0, response.Breakdown.ChequeTotal)
		assert.True(t, response.Breakdown.HasCheque)
		assert.Equal(t, "1,500 + 2,000 = 3,500", response.Breakdown.DisplayLine)
		assert.True(t, response.Consistent)
		assert.Equal(t, 3, response.RecordCount)
	})

	t.Run("omits display line for cash-only batches", func(t *testing.T) {
		repo := storage.NewMockRepository()
		addDedication(repo, "DED-1", 1000, "cash")
		require.NoError(t, repo.SetSummaryTotal("current", 1000))

		handler := newSummaryHandler(repo)

		req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		var response dto.SummaryResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

		assert.False(t, response.Breakdown.HasCheque)
		assert.Empty(t, response.Breakdown.DisplayLine)
	})

	t.Run("surfaces drift as a warning", func(t *testing.T) {
		repo := storage.NewMockRepository()
		addDedication(repo, "DED-1", 1000, "cash")
		require.NoError(t, repo.SetSummaryTotal("current", 1100))

		handler := newSummaryHandler(repo)

		req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		var response dto.SummaryResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

		assert.Equal(t, "ok", response.Status)
		assert.False(t, response.Consistent)
		assert.Equal(t, 100.0, response.Difference)
		assert.NotEmpty(t, response.Warnings)
	})

	t.Run("uses the period query param", func(t *testing.T) {
		repo := storage.NewMockRepository()
		addDedication(repo, "DED-1", 1000, "cash")
		require.NoError(t, repo.SetSummaryTotal("2024-04", 1000))

		handler := newSummaryHandler(repo)

		req := httptest.NewRequest(http.MethodGet, "/api/summary?period=2024-04", nil)
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		var response dto.SummaryResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

		assert.Equal(t, "2024-04", response.Period)
		assert.True(t, response.Consistent)
	})
}

func TestSummaryHandler_SetTotal(t *testing.T) {
	t.Run("stores the total", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := newSummaryHandler(repo)

		body := `{"period": "2024-03", "total": 3500}`
		req := httptest.NewRequest(http.MethodPut, "/api/summary/total", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.SetTotal(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		st, err := repo.GetSummaryTotal("2024-03")
		require.NoError(t, err)
		require.NotNil(t, st)
		assert.Equal(t, 3500.0, st.Total)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := newSummaryHandler(repo)

		req := httptest.NewRequest(http.MethodPut, "/api/summary/total", strings.NewReader(`{`))
		rec := httptest.NewRecorder()

		handler.SetTotal(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("defaults the period", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := newSummaryHandler(repo)

		req := httptest.NewRequest(http.MethodPut, "/api/summary/total", strings.NewReader(`{"total": 100}`))
		rec := httptest.NewRecorder()

		handler.SetTotal(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		st, err := repo.GetSummaryTotal("current")
		require.NoError(t, err)
		require.NotNil(t, st)
		assert.Equal(t, 100.0, st.Total)
	})
}

func TestSummaryHandler_GetTotal(t *testing.T) {
	t.Run("returns 404 when unset", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := newSummaryHandler(repo)

		req := httptest.NewRequest(http.MethodGet, "/api/summary/total", nil)
		rec := httptest.NewRecorder()

		handler.GetTotal(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("returns the stored total", func(t *testing.T) {
		repo := storage.NewMockRepository()
		require.NoError(t, repo.SetSummaryTotal("current", 250))
		handler := newSummaryHandler(repo)

		req := httptest.NewRequest(http.MethodGet, "/api/summary/total", nil)
		rec := httptest.NewRecorder()

		handler.GetTotal(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response dto.SummaryTotalResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, 250.0, response.Total)
	})
}
