package service

import (
	"context"
	"time"

	"github.com/Harshitk-cp/stratcheck/internal/domain"
	"github.com/Harshitk-cp/stratcheck/internal/outlier"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DetectRequest carries the per-call detection inputs. A nil Mask selects
// every sample.
type DetectRequest struct {
	Mask   outlier.Mask
	Params outlier.Params
}

type OutlierService struct {
	transects *TransectService
	defaults  outlier.Params
	logger    *zap.Logger
}

func NewOutlierService(ts *TransectService, defaults outlier.Params, logger *zap.Logger) *OutlierService {
	return &OutlierService{
		transects: ts,
		defaults:  defaults,
		logger:    logger,
	}
}

// Defaults returns the parameters used when a request leaves them out.
func (s *OutlierService) Defaults() outlier.Params {
	return s.defaults
}

// DetectStored runs detection on a transect owned by the lab.
func (s *OutlierService) DetectStored(ctx context.Context, id uuid.UUID, labID uuid.UUID, req DetectRequest) (*outlier.Result, error) {
	t, err := s.transects.GetByID(ctx, id, labID)
	if err != nil {
		return nil, err
	}
	return s.detect(t, req, zap.String("transect_id", id.String()))
}

// Detect runs detection on a transect supplied by the caller. Nothing is
// stored.
func (s *OutlierService) Detect(ctx context.Context, t *domain.Transect, req DetectRequest) (*outlier.Result, error) {
	if err := ValidateTransect(t); err != nil {
		return nil, err
	}
	return s.detect(t, req, zap.String("transect", t.Name))
}

func (s *OutlierService) detect(t *domain.Transect, req DetectRequest, ref zap.Field) (*outlier.Result, error) {
	start := time.Now()

	res, err := outlier.Detect(t.Outlier(), req.Mask, req.Params)
	if err != nil {
		return nil, err
	}

	if !res.Applicable() {
		s.logger.Info("outlier detection not applicable",
			ref,
			zap.String("nuclide", t.Nuclide))
		return res, nil
	}

	for _, d := range res.Duplicates {
		s.logger.Warn("samples share a stratigraphic position",
			ref,
			zap.Float64("position", d.Position),
			zap.Strings("samples", d.Samples))
	}

	s.logger.Info("outlier detection complete",
		ref,
		zap.Int("samples", len(res.Entries)),
		zap.Int("distinct", len(res.Distinct)),
		zap.Int("likely", len(res.Likely)),
		zap.Int("strat_level", req.Params.StratLevel),
		zap.Bool("exclude_ends", req.Params.ExcludeEnds),
		zap.Duration("duration", time.Since(start)))

	return res, nil
}
