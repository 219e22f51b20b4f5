package store

import (
	"context"
	"errors"

	"github.com/Harshitk-cp/stratcheck/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LabStore struct {
	db *pgxpool.Pool
}

func NewLabStore(db *pgxpool.Pool) *LabStore {
	return &LabStore{db: db}
}

func (s *LabStore) Create(ctx context.Context, l *domain.Lab) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO labs (name, api_key_hash) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		l.Name, l.APIKeyHash,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (s *LabStore) GetByAPIKeyHash(ctx context.Context, apiKeyHash string) (*domain.Lab, error) {
	l := &domain.Lab{}
	err := s.db.QueryRow(ctx,
		`SELECT id, name, api_key_hash, created_at, updated_at
		 FROM labs WHERE api_key_hash = $1`,
		apiKeyHash,
	).Scan(&l.ID, &l.Name, &l.APIKeyHash, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}
