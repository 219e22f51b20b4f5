package domain

import (
	"context"

	"github.com/google/uuid"
)

type LabStore interface {
	Create(ctx context.Context, l *Lab) error
	GetByAPIKeyHash(ctx context.Context, apiKeyHash string) (*Lab, error)
}

// TransectStore persists transect inputs. Detection results are never
// stored; they are recomputed on every request.
type TransectStore interface {
	// Create inserts the transect and its samples atomically, filling in
	// generated ids and timestamps.
	Create(ctx context.Context, t *Transect) error
	GetByID(ctx context.Context, id uuid.UUID, labID uuid.UUID) (*Transect, error)
	ListByLab(ctx context.Context, labID uuid.UUID) ([]TransectSummary, error)
	Delete(ctx context.Context, id uuid.UUID, labID uuid.UUID) error
}
