package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Harshitk-cp/stratcheck/internal/domain"
	"github.com/Harshitk-cp/stratcheck/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTransectNotFound   = errors.New("transect not found")
	ErrTransectConflict   = errors.New("transect with this name already exists")
	ErrTransectNameEmpty  = errors.New("name is required")
	ErrSampleNameEmpty    = errors.New("sample name is required")
	ErrSampleNameRepeated = errors.New("sample names must be unique within a transect")
	ErrSampleInvalidAge   = errors.New("sample age must be finite with a non-negative uncertainty")
	ErrSampleInvalidPlace = errors.New("sample position and elevation must be finite")
)

type TransectService struct {
	store  domain.TransectStore
	logger *zap.Logger
}

func NewTransectService(s domain.TransectStore, logger *zap.Logger) *TransectService {
	return &TransectService{store: s, logger: logger}
}

// ValidateTransect checks the fields every transect needs before it can be
// stored or evaluated.
func ValidateTransect(t *domain.Transect) error {
	if t.Name == "" {
		return ErrTransectNameEmpty
	}

	seen := make(map[string]bool, len(t.Samples))
	for i, s := range t.Samples {
		if s.Name == "" {
			return fmt.Errorf("%w: sample %d", ErrSampleNameEmpty, i)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: %q", ErrSampleNameRepeated, s.Name)
		}
		seen[s.Name] = true

		if !finite(s.Age) || !finite(s.Uncertainty) || s.Uncertainty < 0 {
			return fmt.Errorf("%w: %q", ErrSampleInvalidAge, s.Name)
		}
		// NaN position means unrecorded and falls back to elevation.
		if (s.Position != nil && math.IsInf(*s.Position, 0)) || !finite(s.Elevation) {
			return fmt.Errorf("%w: %q", ErrSampleInvalidPlace, s.Name)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (s *TransectService) Create(ctx context.Context, t *domain.Transect) error {
	if err := ValidateTransect(t); err != nil {
		return err
	}

	if err := s.store.Create(ctx, t); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrTransectConflict
		}
		return err
	}

	s.logger.Info("transect created",
		zap.String("transect_id", t.ID.String()),
		zap.String("lab_id", t.LabID.String()),
		zap.Int("samples", len(t.Samples)))
	return nil
}

func (s *TransectService) GetByID(ctx context.Context, id uuid.UUID, labID uuid.UUID) (*domain.Transect, error) {
	t, err := s.store.GetByID(ctx, id, labID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTransectNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TransectService) List(ctx context.Context, labID uuid.UUID) ([]domain.TransectSummary, error) {
	list, err := s.store.ListByLab(ctx, labID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.TransectSummary{}
	}
	return list, nil
}

func (s *TransectService) Delete(ctx context.Context, id uuid.UUID, labID uuid.UUID) error {
	if err := s.store.Delete(ctx, id, labID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTransectNotFound
		}
		return err
	}
	return nil
}
