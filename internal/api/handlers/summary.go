package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/itsutakahope/churching-sub001/internal/api/dto"
	"github.com/itsutakahope/churching-sub001/internal/application/service"
	"github.com/itsutakahope/churching-sub001/internal/infrastructure/storage"
)

// SummaryHandler handles summary-related HTTP requests.
type SummaryHandler struct {
	*Base
	svc           *service.SummaryService
	defaultPeriod string
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(repo storage.Repository, svc *service.SummaryService, defaultPeriod string) *SummaryHandler {
	return &SummaryHandler{
		Base:          NewBase(repo),
		svc:           svc,
		defaultPeriod: defaultPeriod,
	}
}

func (h *SummaryHandler) period(r *http.Request) string {
	if p := r.URL.Query().Get("period"); p != "" {
		return p
	}
	return h.defaultPeriod
}

// Get handles GET /api/summary - returns the live breakdown summary.
func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.ComputeSummary(r.Context(), h.period(r))
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	response := dto.SummaryResponse{
		Status:          view.Status,
		Period:          view.Period,
		Breakdown:       toBreakdownResponse(view.Breakdown),
		CalculatedTotal: view.Consistency.CalculatedTotal,
		SummaryTotal:    view.SummaryTotal,
		Consistent:      view.Consistency.Consistent,
		Difference:      view.Consistency.Difference,
		RecordCount:     view.Counts.Total,
		ValidCount:      view.Counts.Valid,
		InvalidCount:    view.Counts.Invalid,
		Warnings:        view.Warnings,
		Notice:          view.Notice,
	}
	if view.Status != storage.ReportStatusOK {
		response.RecordCount = view.Health.Stats.RecordCount
	}

	h.WriteJSON(w, http.StatusOK, response)
}

// GetTotal handles GET /api/summary/total - returns the authoritative total.
func (h *SummaryHandler) GetTotal(w http.ResponseWriter, r *http.Request) {
	st, err := h.repo.GetSummaryTotal(h.period(r))
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}
	if st == nil {
		h.WriteError(w, http.StatusNotFound, dto.NotFoundError("summary total"))
		return
	}

	h.WriteJSON(w, http.StatusOK, dto.SummaryTotalResponse{
		Period:    st.Period,
		Total:     st.Total,
		UpdatedAt: st.UpdatedAt.UTC().Format(time.RFC3339),
	})
}

// SetTotal handles PUT /api/summary/total - sets the authoritative total.
func (h *SummaryHandler) SetTotal(w http.ResponseWriter, r *http.Request) {
	var req dto.SetSummaryTotalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("invalid JSON body"))
		return
	}
	if req.Period == "" {
		req.Period = h.defaultPeriod
	}
	if math.IsNaN(req.Total) || math.IsInf(req.Total, 0) {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("total must be a finite number"))
		return
	}

	if err := h.repo.SetSummaryTotal(req.Period, req.Total); err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusOK, dto.SummaryTotalResponse{
		Period:    req.Period,
		Total:     req.Total,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
