package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Harshitk-cp/stratcheck/internal/api/middleware"
	"github.com/Harshitk-cp/stratcheck/internal/domain"
	"github.com/Harshitk-cp/stratcheck/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TransectHandler struct {
	svc *service.TransectService
}

func NewTransectHandler(svc *service.TransectService) *TransectHandler {
	return &TransectHandler{svc: svc}
}

type sampleRequest struct {
	Name        string   `json:"name"`
	Age         float64  `json:"age"`
	Uncertainty float64  `json:"uncertainty"`
	Position    *float64 `json:"position"`
	Elevation   float64  `json:"elevation"`
}

type transectRequest struct {
	Name    string `json:"name"`
	Nuclide string `json:"nuclide"`
	// Measured defaults to true when omitted.
	Measured *bool           `json:"measured"`
	Samples  []sampleRequest `json:"samples"`
}

func (req transectRequest) toDomain(labID uuid.UUID) *domain.Transect {
	t := &domain.Transect{
		LabID:    labID,
		Name:     req.Name,
		Nuclide:  req.Nuclide,
		Measured: req.Measured == nil || *req.Measured,
		Samples:  make([]domain.Sample, len(req.Samples)),
	}
	for i, s := range req.Samples {
		t.Samples[i] = domain.Sample{
			Ordinal:     i,
			Name:        s.Name,
			Age:         s.Age,
			Uncertainty: s.Uncertainty,
			Position:    s.Position,
			Elevation:   s.Elevation,
		}
	}
	return t
}

func (h *TransectHandler) Create(w http.ResponseWriter, r *http.Request) {
	lab := middleware.LabFromContext(r.Context())
	if lab == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req transectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t := req.toDomain(lab.ID)
	if err := h.svc.Create(r.Context(), t); err != nil {
		if status, ok := transectErrorStatus(err); ok {
			writeError(w, status, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create transect")
		return
	}

	writeJSON(w, http.StatusCreated, t)
}

func (h *TransectHandler) List(w http.ResponseWriter, r *http.Request) {
	lab := middleware.LabFromContext(r.Context())
	if lab == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	list, err := h.svc.List(r.Context(), lab.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transects")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"transects": list})
}

func (h *TransectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	lab := middleware.LabFromContext(r.Context())
	if lab == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transect id")
		return
	}

	t, err := h.svc.GetByID(r.Context(), id, lab.ID)
	if err != nil {
		if errors.Is(err, service.ErrTransectNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get transect")
		return
	}

	writeJSON(w, http.StatusOK, t)
}

func (h *TransectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	lab := middleware.LabFromContext(r.Context())
	if lab == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transect id")
		return
	}

	if err := h.svc.Delete(r.Context(), id, lab.ID); err != nil {
		if errors.Is(err, service.ErrTransectNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete transect")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// transectErrorStatus maps service validation errors to HTTP statuses.
func transectErrorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, service.ErrTransectNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, service.ErrTransectConflict):
		return http.StatusConflict, true
	case errors.Is(err, service.ErrTransectNameEmpty),
		errors.Is(err, service.ErrSampleNameEmpty),
		errors.Is(err, service.ErrSampleNameRepeated),
		errors.Is(err, service.ErrSampleInvalidAge),
		errors.Is(err, service.ErrSampleInvalidPlace):
		return http.StatusBadRequest, true
	}
	return 0, false
}
