package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshitk-cp/stratcheck/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransectStore struct {
	db *pgxpool.Pool
}

func NewTransectStore(db *pgxpool.Pool) *TransectStore {
	return &TransectStore{db: db}
}

func (s *TransectStore) Create(ctx context.Context, t *domain.Transect) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx,
		`INSERT INTO transects (lab_id, name, nuclide, measured)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		t.LabID, t.Name, t.Nuclide, t.Measured,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrConflict
		}
		return err
	}

	batch := &pgx.Batch{}
	for i := range t.Samples {
		smp := &t.Samples[i]
		smp.Ordinal = i
		batch.Queue(
			`INSERT INTO samples (transect_id, ordinal, name, age, uncertainty, position, elevation)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id`,
			t.ID, smp.Ordinal, smp.Name, smp.Age, smp.Uncertainty, smp.Position, smp.Elevation,
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&smp.ID)
		})
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert samples: %w", err)
	}

	return tx.Commit(ctx)
}

func (s *TransectStore) GetByID(ctx context.Context, id uuid.UUID, labID uuid.UUID) (*domain.Transect, error) {
	t := &domain.Transect{}
	err := s.db.QueryRow(ctx,
		`SELECT id, lab_id, name, nuclide, measured, created_at, updated_at
		 FROM transects WHERE id = $1 AND lab_id = $2`,
		id, labID,
	).Scan(&t.ID, &t.LabID, &t.Name, &t.Nuclide, &t.Measured, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, ordinal, name, age, uncertainty, position, elevation
		 FROM samples WHERE transect_id = $1
		 ORDER BY ordinal`,
		t.ID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	t.Samples = []domain.Sample{}
	for rows.Next() {
		var smp domain.Sample
		if err := rows.Scan(&smp.ID, &smp.Ordinal, &smp.Name, &smp.Age, &smp.Uncertainty, &smp.Position, &smp.Elevation); err != nil {
			return nil, err
		}
		t.Samples = append(t.Samples, smp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *TransectStore) ListByLab(ctx context.Context, labID uuid.UUID) ([]domain.TransectSummary, error) {
	rows, err := s.db.Query(ctx,
		`SELECT t.id, t.name, t.nuclide, t.measured, COUNT(s.id), t.created_at
		 FROM transects t
		 LEFT JOIN samples s ON s.transect_id = t.id
		 WHERE t.lab_id = $1
		 GROUP BY t.id
		 ORDER BY t.created_at DESC`,
		labID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TransectSummary
	for rows.Next() {
		var ts domain.TransectSummary
		if err := rows.Scan(&ts.ID, &ts.Name, &ts.Nuclide, &ts.Measured, &ts.SampleCount, &ts.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, rows.Err()
}

func (s *TransectStore) Delete(ctx context.Context, id uuid.UUID, labID uuid.UUID) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM transects WHERE id = $1 AND lab_id = $2`,
		id, labID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
