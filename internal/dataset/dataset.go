// Package dataset loads transect files for the outlier detector.
//
// Three formats are understood, chosen by file extension:
//
//	.yaml, .yml  a transect document (see fileTransect)
//	.json        the same document as JSON
//	.csv         one sample per row with a header naming the columns
//	             name, age, uncertainty, position, elevation
//
// A CSV file without an age column describes a dataset for which the decay
// system was not measured. YAML and JSON documents may say so explicitly
// with "measured: false"; when the field is absent the dataset counts as
// measured if any sample carries an age.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/Harshitk-cp/stratcheck/internal/outlier"
)

var (
	ErrUnsupportedFormat = errors.New("dataset: unsupported format")
	ErrInvalidDataset    = errors.New("dataset: invalid dataset")
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads a transect file. A transect without a name is named after the
// file.
func Load(path string) (outlier.Transect, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return outlier.Transect{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return outlier.Transect{}, err
	}
	defer f.Close()

	t, err := Decode(f, format)
	if err != nil {
		return outlier.Transect{}, fmt.Errorf("%s: %w", path, err)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return t, nil
}

// Decode reads a transect in the given format.
func Decode(r io.Reader, format Format) (outlier.Transect, error) {
	var (
		ft  fileTransect
		err error
	)
	switch format {
	case FormatYAML:
		ft, err = decodeYAML(r)
	case FormatJSON:
		ft, err = decodeJSON(r)
	case FormatCSV:
		ft, err = decodeCSV(r)
	default:
		return outlier.Transect{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return outlier.Transect{}, err
	}
	return ft.transect()
}

// fileTransect is the on-disk transect document.
type fileTransect struct {
	Name     string       `yaml:"name" json:"name"`
	Nuclide  string       `yaml:"nuclide" json:"nuclide"`
	Measured *bool        `yaml:"measured" json:"measured"`
	Samples  []fileSample `yaml:"samples" json:"samples"`
}

type fileSample struct {
	Name        string   `yaml:"name" json:"name"`
	Age         *float64 `yaml:"age" json:"age"`
	Uncertainty float64  `yaml:"uncertainty" json:"uncertainty"`
	Position    *float64 `yaml:"position" json:"position"`
	Elevation   float64  `yaml:"elevation" json:"elevation"`
}

func (ft fileTransect) transect() (outlier.Transect, error) {
	measured := false
	if ft.Measured != nil {
		measured = *ft.Measured
	} else {
		for _, s := range ft.Samples {
			if s.Age != nil {
				measured = true
				break
			}
		}
	}

	t := outlier.Transect{
		Name:     ft.Name,
		Nuclide:  ft.Nuclide,
		Measured: measured,
		Samples:  make([]outlier.Sample, len(ft.Samples)),
	}

	for i, s := range ft.Samples {
		if s.Name == "" {
			return outlier.Transect{}, fmt.Errorf("%w: sample %d has no name", ErrInvalidDataset, i)
		}
		if math.IsInf(s.Elevation, 0) || math.IsNaN(s.Elevation) {
			return outlier.Transect{}, fmt.Errorf("%w: sample %q has no usable elevation", ErrInvalidDataset, s.Name)
		}
		if s.Position != nil && math.IsInf(*s.Position, 0) {
			return outlier.Transect{}, fmt.Errorf("%w: sample %q has infinite position", ErrInvalidDataset, s.Name)
		}

		var age outlier.Age
		if measured {
			if s.Age == nil {
				return outlier.Transect{}, fmt.Errorf("%w: sample %q has no age", ErrInvalidDataset, s.Name)
			}
			age = outlier.Age{Mean: *s.Age, Uncertainty: s.Uncertainty}
			if math.IsNaN(age.Mean) || math.IsInf(age.Mean, 0) || !(age.Uncertainty >= 0) || math.IsInf(age.Uncertainty, 0) {
				return outlier.Transect{}, fmt.Errorf("%w: sample %q has age %v ± %v", ErrInvalidDataset, s.Name, age.Mean, age.Uncertainty)
			}
		}

		t.Samples[i] = outlier.Sample{
			Name:      s.Name,
			Age:       age,
			Position:  s.Position,
			Elevation: s.Elevation,
		}
	}
	return t, nil
}
