package domain

import (
	"time"

	"github.com/Harshitk-cp/stratcheck/internal/outlier"
	"github.com/google/uuid"
)

type Transect struct {
	ID        uuid.UUID `json:"id"`
	LabID     uuid.UUID `json:"lab_id,omitempty"`
	Name      string    `json:"name"`
	Nuclide   string    `json:"nuclide"`
	Measured  bool      `json:"measured"`
	Samples   []Sample  `json:"samples"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Sample is a dated sample as stored. Ordinal keeps the declared order,
// which is what inclusion masks index into.
type Sample struct {
	ID          uuid.UUID `json:"id"`
	Ordinal     int       `json:"ordinal"`
	Name        string    `json:"name"`
	Age         float64   `json:"age"`
	Uncertainty float64   `json:"uncertainty"`
	Position    *float64  `json:"position,omitempty"`
	Elevation   float64   `json:"elevation"`
}

type TransectSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Nuclide     string    `json:"nuclide"`
	Measured    bool      `json:"measured"`
	SampleCount int       `json:"sample_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Outlier converts the stored transect into detector input, samples in
// declared order.
func (t *Transect) Outlier() outlier.Transect {
	out := outlier.Transect{
		Name:     t.Name,
		Nuclide:  t.Nuclide,
		Measured: t.Measured,
		Samples:  make([]outlier.Sample, len(t.Samples)),
	}
	for i, s := range t.Samples {
		var position *float64
		if s.Position != nil {
			p := *s.Position
			position = &p
		}
		out.Samples[i] = outlier.Sample{
			Name:      s.Name,
			Age:       outlier.Age{Mean: s.Age, Uncertainty: s.Uncertainty},
			Position:  position,
			Elevation: s.Elevation,
		}
	}
	return out
}
