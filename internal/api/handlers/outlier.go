package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Harshitk-cp/stratcheck/internal/api/middleware"
	"github.com/Harshitk-cp/stratcheck/internal/outlier"
	"github.com/Harshitk-cp/stratcheck/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	formatJSON = "json"
	formatText = "text"
)

// detectQueryParams are the only query parameters a detection request takes.
var detectQueryParams = map[string]bool{
	"strat_level":  true,
	"exclude_ends": true,
	"mask":         true,
	"format":       true,
}

type OutlierHandler struct {
	svc *service.OutlierService
}

func NewOutlierHandler(svc *service.OutlierService) *OutlierHandler {
	return &OutlierHandler{svc: svc}
}

// DetectStored runs detection on a stored transect.
func (h *OutlierHandler) DetectStored(w http.ResponseWriter, r *http.Request) {
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

	req, format, err := parseDetectQuery(r.URL.Query(), h.svc.Defaults())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.DetectStored(r.Context(), id, lab.ID, req)
	if err != nil {
		writeDetectError(w, err)
		return
	}

	writeResult(w, res, format)
}

// DetectInline runs detection on a transect carried in the request body.
// Nothing is stored.
func (h *OutlierHandler) DetectInline(w http.ResponseWriter, r *http.Request) {
	lab := middleware.LabFromContext(r.Context())
	if lab == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	req, format, err := parseDetectQuery(r.URL.Query(), h.svc.Defaults())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var body transectRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.Detect(r.Context(), body.toDomain(lab.ID), req)
	if err != nil {
		writeDetectError(w, err)
		return
	}

	writeResult(w, res, format)
}

func parseDetectQuery(q url.Values, defaults outlier.Params) (service.DetectRequest, string, error) {
	for key, vals := range q {
		if !detectQueryParams[key] {
			return service.DetectRequest{}, "", fmt.Errorf("%w: unknown parameter %q", outlier.ErrInvalidArity, key)
		}
		if len(vals) > 1 {
			return service.DetectRequest{}, "", fmt.Errorf("%w: %q given %d times", outlier.ErrInvalidArity, key, len(vals))
		}
	}

	req := service.DetectRequest{Params: defaults}
	if q.Has("strat_level") {
		level, err := outlier.ParseStratLevel(q.Get("strat_level"))
		if err != nil {
			return service.DetectRequest{}, "", err
		}
		req.Params.StratLevel = level
	}
	if q.Has("exclude_ends") {
		exclude, err := outlier.ParseExcludeEnds(q.Get("exclude_ends"))
		if err != nil {
			return service.DetectRequest{}, "", err
		}
		req.Params.ExcludeEnds = exclude
	}
	if err := req.Params.Validate(); err != nil {
		return service.DetectRequest{}, "", err
	}

	mask, err := outlier.ParseMask(q.Get("mask"))
	if err != nil {
		return service.DetectRequest{}, "", err
	}
	req.Mask = mask

	format := q.Get("format")
	switch format {
	case "":
		format = formatJSON
	case formatJSON, formatText:
	default:
		return service.DetectRequest{}, "", fmt.Errorf("%w: format %q, want json or text", outlier.ErrInvalidParameter, format)
	}

	return req, format, nil
}

func writeDetectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, outlier.ErrInvalidArity),
		errors.Is(err, outlier.ErrInvalidParameter),
		errors.Is(err, outlier.ErrInvalidMask):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if status, ok := transectErrorStatus(err); ok {
		writeError(w, status, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "failed to detect outliers")
}

func writeResult(w http.ResponseWriter, res *outlier.Result, format string) {
	if format == formatText {
		writeText(w, http.StatusOK, res.Report())
		return
	}
	writeJSON(w, http.StatusOK, res)
}
