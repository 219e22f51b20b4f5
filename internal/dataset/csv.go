package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var csvColumns = map[string]bool{
	"name":        true,
	"age":         true,
	"uncertainty": true,
	"position":    true,
	"elevation":   true,
}

// decodeCSV reads one sample per row. Blank position cells mean the
// position was not recorded; lines starting with # are skipped.
func decodeCSV(r io.Reader) (fileTransect, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fileTransect{}, fmt.Errorf("%w: empty file", ErrInvalidDataset)
		}
		return fileTransect{}, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if !csvColumns[key] {
			return fileTransect{}, fmt.Errorf("%w: unknown column %q", ErrInvalidDataset, h)
		}
		cols[key] = i
	}
	if _, ok := cols["name"]; !ok {
		return fileTransect{}, fmt.Errorf("%w: missing name column", ErrInvalidDataset)
	}

	_, hasAge := cols["age"]
	ft := fileTransect{Measured: &hasAge}

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fileTransect{}, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
		}

		s := fileSample{Name: cell(rec, cols, "name")}
		if hasAge {
			age, err := parseFloat(cell(rec, cols, "age"))
			if err != nil {
				return fileTransect{}, fmt.Errorf("%w: row %d age: %v", ErrInvalidDataset, line, err)
			}
			s.Age = age
		}
		if v := cell(rec, cols, "uncertainty"); v != "" {
			unc, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fileTransect{}, fmt.Errorf("%w: row %d uncertainty: %v", ErrInvalidDataset, line, err)
			}
			s.Uncertainty = unc
		}
		pos, err := parseFloat(cell(rec, cols, "position"))
		if err != nil {
			return fileTransect{}, fmt.Errorf("%w: row %d position: %v", ErrInvalidDataset, line, err)
		}
		s.Position = pos
		if v := cell(rec, cols, "elevation"); v != "" {
			elev, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fileTransect{}, fmt.Errorf("%w: row %d elevation: %v", ErrInvalidDataset, line, err)
			}
			s.Elevation = elev
		}

		ft.Samples = append(ft.Samples, s)
	}
	return ft, nil
}

func cell(rec []string, cols map[string]int, key string) string {
	i, ok := cols[key]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// parseFloat returns nil for a blank cell.
func parseFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
