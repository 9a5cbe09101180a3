package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/itsutakahope/churching-sub001/internal/api/dto"
	"github.com/itsutakahope/churching-sub001/internal/domain/dedication"
	"github.com/itsutakahope/churching-sub001/internal/infrastructure/storage"
)

// DedicationsHandler handles dedication-related HTTP requests.
type DedicationsHandler struct {
	*Base
	validator *dedication.Validator
}

// NewDedicationsHandler creates a new dedications handler.
func NewDedicationsHandler(repo storage.Repository, logger *slog.Logger) *DedicationsHandler {
	return &DedicationsHandler{
		Base:      NewBase(repo),
		validator: dedication.NewValidator(logger),
	}
}

// List handles GET /api/dedications - returns paginated dedications.
func (h *DedicationsHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := storage.DedicationFilters{
		Method:   r.URL.Query().Get("method"),
		Category: r.URL.Query().Get("category"),
		Limit:    ParseIntParam(r, "limit", 50),
		Offset:   ParseIntParam(r, "offset", 0),
	}

	result, err := h.repo.ListDedications(filters)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	response := dto.DedicationListResponse{
		Dedications: make([]dto.DedicationResponse, 0, len(result.Dedications)),
		TotalCount:  result.TotalCount,
		Limit:       result.Limit,
		Offset:      result.Offset,
	}
	for _, d := range result.Dedications {
		response.Dedications = append(response.Dedications, toDedicationResponse(d))
	}

	h.WriteJSON(w, http.StatusOK, response)
}

// Get handles GET /api/dedications/{id} - returns a single dedication.
func (h *DedicationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	d, err := h.repo.GetDedication(id)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}
	if d == nil {
		h.WriteError(w, http.StatusNotFound, dto.NotFoundError("dedication"))
		return
	}

	h.WriteJSON(w, http.StatusOK, toDedicationResponse(d))
}

// Create handles POST /api/dedications - validates and stores a raw record.
//
// The body goes through the record validator exactly as a store snapshot
// would: a non-object body or any failed field check comes back as a 400
// carrying the validator's messages.
func (h *DedicationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var raw any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("invalid JSON body"))
		return
	}

	res := h.validator.Validate(raw, 0)
	if !res.Valid {
		h.WriteError(w, http.StatusBadRequest, dto.ValidationError(res.Errors))
		return
	}

	d := &storage.Dedication{
		ID:          uuid.NewString(),
		Amount:      res.Record.Amount,
		Method:      string(res.Record.Method),
		Category:    res.Record.Category,
		DedicatorID: res.Record.DedicatorID,
		Date:        res.Record.Date,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.repo.SaveDedication(d); err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusCreated, toDedicationResponse(d))
}
