package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Harshitk-cp/stratcheck/internal/domain"
	"github.com/Harshitk-cp/stratcheck/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockTransectStore implements domain.TransectStore for testing.
type mockTransectStore struct {
	transects map[uuid.UUID]*domain.Transect
}

func newMockTransectStore() *mockTransectStore {
	return &mockTransectStore{transects: make(map[uuid.UUID]*domain.Transect)}
}

func (m *mockTransectStore) Create(ctx context.Context, t *domain.Transect) error {
	for _, existing := range m.transects {
		if existing.Name == t.Name && existing.LabID == t.LabID {
			return store.ErrConflict
		}
	}
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	for i := range t.Samples {
		t.Samples[i].ID = uuid.New()
		t.Samples[i].Ordinal = i
	}
	m.transects[t.ID] = t
	return nil
}

func (m *mockTransectStore) GetByID(ctx context.Context, id uuid.UUID, labID uuid.UUID) (*domain.Transect, error) {
	t, ok := m.transects[id]
	if !ok || t.LabID != labID {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func (m *mockTransectStore) ListByLab(ctx context.Context, labID uuid.UUID) ([]domain.TransectSummary, error) {
	var out []domain.TransectSummary
	for _, t := range m.transects {
		if t.LabID != labID {
			continue
		}
		out = append(out, domain.TransectSummary{
			ID:          t.ID,
			Name:        t.Name,
			Nuclide:     t.Nuclide,
			Measured:    t.Measured,
			SampleCount: len(t.Samples),
			CreatedAt:   t.CreatedAt,
		})
	}
	return out, nil
}

func (m *mockTransectStore) Delete(ctx context.Context, id uuid.UUID, labID uuid.UUID) error {
	t, ok := m.transects[id]
	if !ok || t.LabID != labID {
		return store.ErrNotFound
	}
	delete(m.transects, id)
	return nil
}

// MockTransectStore is a testify mock for failure paths.
type MockTransectStore struct {
	mock.Mock
}

func (m *MockTransectStore) Create(ctx context.Context, t *domain.Transect) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTransectStore) GetByID(ctx context.Context, id uuid.UUID, labID uuid.UUID) (*domain.Transect, error) {
	args := m.Called(ctx, id, labID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transect), args.Error(1)
}

func (m *MockTransectStore) ListByLab(ctx context.Context, labID uuid.UUID) ([]domain.TransectSummary, error) {
	args := m.Called(ctx, labID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransectSummary), args.Error(1)
}

func (m *MockTransectStore) Delete(ctx context.Context, id uuid.UUID, labID uuid.UUID) error {
	return m.Called(ctx, id, labID).Error(0)
}

func sampleTransect(labID uuid.UUID) *domain.Transect {
	return &domain.Transect{
		LabID:    labID,
		Name:     "north ridge",
		Nuclide:  "Be10",
		Measured: true,
		Samples: []domain.Sample{
			{Name: "NR-01", Age: 10, Uncertainty: 1, Elevation: 1500},
			{Name: "NR-02", Age: 10, Uncertainty: 1, Elevation: 1400},
			{Name: "NR-03", Age: 1, Uncertainty: 1, Elevation: 1300},
			{Name: "NR-04", Age: 10, Uncertainty: 1, Elevation: 1200},
			{Name: "NR-05", Age: 10, Uncertainty: 1, Elevation: 1100},
		},
	}
}

func TestTransectService_Create(t *testing.T) {
	s := NewTransectService(newMockTransectStore(), zap.NewNop())
	ctx := context.Background()

	tr := sampleTransect(uuid.New())
	require.NoError(t, s.Create(ctx, tr))
	assert.NotEqual(t, uuid.Nil, tr.ID)
	for i, smp := range tr.Samples {
		assert.Equal(t, i, smp.Ordinal)
	}
}

func TestTransectService_CreateDuplicate(t *testing.T) {
	s := NewTransectService(newMockTransectStore(), zap.NewNop())
	ctx := context.Background()
	labID := uuid.New()

	require.NoError(t, s.Create(ctx, sampleTransect(labID)))

	err := s.Create(ctx, sampleTransect(labID))
	assert.ErrorIs(t, err, ErrTransectConflict)

	// Same name under another lab is fine.
	assert.NoError(t, s.Create(ctx, sampleTransect(uuid.New())))
}

func TestValidateTransect(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()

	tests := []struct {
		name    string
		mutate  func(tr *domain.Transect)
		wantErr error
	}{
		{"valid", func(tr *domain.Transect) {}, nil},
		{"no samples", func(tr *domain.Transect) { tr.Samples = nil }, nil},
		{"missing name", func(tr *domain.Transect) { tr.Name = "" }, ErrTransectNameEmpty},
		{"missing sample name", func(tr *domain.Transect) { tr.Samples[1].Name = "" }, ErrSampleNameEmpty},
		{"repeated sample name", func(tr *domain.Transect) { tr.Samples[1].Name = "NR-01" }, ErrSampleNameRepeated},
		{"negative uncertainty", func(tr *domain.Transect) { tr.Samples[0].Uncertainty = -1 }, ErrSampleInvalidAge},
		{"nan age", func(tr *domain.Transect) { tr.Samples[0].Age = nan }, ErrSampleInvalidAge},
		{"infinite position", func(tr *domain.Transect) { tr.Samples[0].Position = &inf }, ErrSampleInvalidPlace},
		{"nan position falls back", func(tr *domain.Transect) { tr.Samples[0].Position = &nan }, nil},
		{"infinite elevation", func(tr *domain.Transect) { tr.Samples[2].Elevation = inf }, ErrSampleInvalidPlace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := sampleTransect(uuid.New())
			tt.mutate(tr)
			err := ValidateTransect(tr)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestTransectService_GetByID_WrongLab(t *testing.T) {
	s := NewTransectService(newMockTransectStore(), zap.NewNop())
	ctx := context.Background()

	tr := sampleTransect(uuid.New())
	require.NoError(t, s.Create(ctx, tr))

	found, err := s.GetByID(ctx, tr.ID, tr.LabID)
	require.NoError(t, err)
	assert.Equal(t, "north ridge", found.Name)

	_, err = s.GetByID(ctx, tr.ID, uuid.New())
	assert.ErrorIs(t, err, ErrTransectNotFound)
}

func TestTransectService_ListEmpty(t *testing.T) {
	s := NewTransectService(newMockTransectStore(), zap.NewNop())

	list, err := s.List(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestTransectService_Delete(t *testing.T) {
	s := NewTransectService(newMockTransectStore(), zap.NewNop())
	ctx := context.Background()

	tr := sampleTransect(uuid.New())
	require.NoError(t, s.Create(ctx, tr))

	require.NoError(t, s.Delete(ctx, tr.ID, tr.LabID))
	assert.ErrorIs(t, s.Delete(ctx, tr.ID, tr.LabID), ErrTransectNotFound)
}

func TestTransectService_StoreFailure(t *testing.T) {
	ms := new(MockTransectStore)
	s := NewTransectService(ms, zap.NewNop())
	ctx := context.Background()
	labID := uuid.New()
	boom := errors.New("connection reset")

	ms.On("ListByLab", ctx, labID).Return(nil, boom)
	ms.On("Create", ctx, mock.AnythingOfType("*domain.Transect")).Return(boom)

	_, err := s.List(ctx, labID)
	assert.ErrorIs(t, err, boom)

	err = s.Create(ctx, sampleTransect(labID))
	assert.ErrorIs(t, err, boom)

	ms.AssertExpectations(t)
}
