package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itsutakahope/churching-sub001/internal/api/dto"
	"github.com/itsutakahope/churching-sub001/internal/application/service"
	"github.com/itsutakahope/churching-sub001/internal/infrastructure/storage"
)

// ReportsHandler handles breakdown report HTTP requests.
type ReportsHandler struct {
	*Base
	svc           *service.SummaryService
	defaultPeriod string
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(repo storage.Repository, svc *service.SummaryService, defaultPeriod string) *ReportsHandler {
	return &ReportsHandler{
		Base:          NewBase(repo),
		svc:           svc,
		defaultPeriod: defaultPeriod,
	}
}

// List handles GET /api/reports - returns recent reports, newest first.
func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := ParseIntParam(r, "limit", 20)

	reports, err := h.repo.ListReports(limit)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	response := dto.ReportListResponse{
		Reports: make([]dto.ReportResponse, 0, len(reports)),
	}
	for _, report := range reports {
		response.Reports = append(response.Reports, toReportResponse(report))
	}

	h.WriteJSON(w, http.StatusOK, response)
}

// Get handles GET /api/reports/{id} - returns a single report.
func (h *ReportsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	report, err := h.repo.GetReport(id)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}
	if report == nil {
		h.WriteError(w, http.StatusNotFound, dto.NotFoundError("report"))
		return
	}

	h.WriteJSON(w, http.StatusOK, toReportResponse(report))
}

// Create handles POST /api/reports - runs and persists a new report.
func (h *ReportsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateReportRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("invalid JSON body"))
			return
		}
	}
	if req.Period == "" {
		req.Period = h.defaultPeriod
	}

	report, err := h.svc.GenerateReport(r.Context(), req.Period)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusCreated, toReportResponse(report))
}
