package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.yaml", FormatYAML, false},
		{"a.YML", FormatYAML, false},
		{"dir/a.json", FormatJSON, false},
		{"a.csv", FormatCSV, false},
		{"a.txt", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_YAML(t *testing.T) {
	doc := `
name: Ridge A
nuclide: Be10
samples:
  - name: RA-1
    age: 12.1
    uncertainty: 0.4
    position: 3
    elevation: 1500
  - name: RA-2
    age: 12.6
    uncertainty: 0.5
    elevation: 1450
`
	tr, err := Decode(strings.NewReader(doc), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "Ridge A", tr.Name)
	assert.Equal(t, "Be10", tr.Nuclide)
	assert.True(t, tr.Measured)
	require.Len(t, tr.Samples, 2)

	assert.Equal(t, "RA-1", tr.Samples[0].Name)
	assert.Equal(t, 12.1, tr.Samples[0].Age.Mean)
	assert.Equal(t, 0.4, tr.Samples[0].Age.Uncertainty)
	require.NotNil(t, tr.Samples[0].Position)
	assert.Equal(t, 3.0, *tr.Samples[0].Position)

	assert.Nil(t, tr.Samples[1].Position)
	assert.Equal(t, 1450.0, tr.Samples[1].Elevation)
}

func TestDecode_YAMLUnknownField(t *testing.T) {
	doc := `
name: Ridge A
samples:
  - name: RA-1
    age: 12.1
    uncertanity: 0.4
`
	_, err := Decode(strings.NewReader(doc), FormatYAML)
	assert.ErrorIs(t, err, ErrInvalidDataset)
}

func TestDecode_YAMLExplicitlyUnmeasured(t *testing.T) {
	doc := `
name: Ridge B
nuclide: Cl36
measured: false
samples:
  - name: RB-1
    elevation: 900
`
	tr, err := Decode(strings.NewReader(doc), FormatYAML)
	require.NoError(t, err)
	assert.False(t, tr.Measured)
	assert.Len(t, tr.Samples, 1)
}

func TestDecode_MeasuredInferredFromAges(t *testing.T) {
	doc := `{"name": "x", "samples": [{"name": "a", "elevation": 10}]}`
	tr, err := Decode(strings.NewReader(doc), FormatJSON)
	require.NoError(t, err)
	assert.False(t, tr.Measured)
}

func TestDecode_JSON(t *testing.T) {
	doc := `{
		"name": "Moraine",
		"nuclide": "Be10",
		"samples": [
			{"name": "M1", "age": 20, "uncertainty": 1, "position": 2},
			{"name": "M2", "age": 21, "uncertainty": 1, "position": 1}
		]
	}`
	tr, err := Decode(strings.NewReader(doc), FormatJSON)
	require.NoError(t, err)
	assert.True(t, tr.Measured)
	require.Len(t, tr.Samples, 2)
	assert.Equal(t, 21.0, tr.Samples[1].Age.Mean)
}

func TestDecode_JSONUnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"name": "x", "sample": []}`), FormatJSON)
	assert.ErrorIs(t, err, ErrInvalidDataset)
}

func TestDecode_CSV(t *testing.T) {
	doc := `# Ridge transect
name,age,uncertainty,position,elevation
C1,10.5,0.3,,1200
C2,11.0,0.3,4,1100
`
	tr, err := Decode(strings.NewReader(doc), FormatCSV)
	require.NoError(t, err)
	assert.True(t, tr.Measured)
	require.Len(t, tr.Samples, 2)

	assert.Nil(t, tr.Samples[0].Position)
	assert.Equal(t, 1200.0, tr.Samples[0].Elevation)
	require.NotNil(t, tr.Samples[1].Position)
	assert.Equal(t, 4.0, *tr.Samples[1].Position)
}

func TestDecode_CSVWithoutAgeColumn(t *testing.T) {
	doc := "name,elevation\nC1,1200\nC2,1100\n"
	tr, err := Decode(strings.NewReader(doc), FormatCSV)
	require.NoError(t, err)
	assert.False(t, tr.Measured)
	assert.Len(t, tr.Samples, 2)
}

func TestDecode_CSVErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"unknown column", "name,age,depth\nA,1,2\n"},
		{"no name column", "age,uncertainty\n1,2\n"},
		{"bad age", "name,age\nA,old\n"},
		{"missing age cell", "name,age\nA,\n"},
		{"bad position", "name,age,position\nA,1,top\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc), FormatCSV)
			assert.ErrorIs(t, err, ErrInvalidDataset)
		})
	}
}

func TestDecode_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unnamed sample", `{"samples": [{"age": 1}]}`},
		{"negative uncertainty", `{"samples": [{"name": "a", "age": 1, "uncertainty": -1}]}`},
		{"measured without age", `{"measured": true, "samples": [{"name": "a"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc), FormatJSON)
			assert.ErrorIs(t, err, ErrInvalidDataset)
		})
	}
}

func TestDecode_InfinitePosition(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		doc    string
	}{
		{"yaml positive", FormatYAML, `
samples:
  - {name: a, age: 10, uncertainty: 1, position: .inf}
  - {name: b, age: 10, uncertainty: 1, position: 1}
`},
		{"yaml negative", FormatYAML, `
samples:
  - {name: a, age: 10, uncertainty: 1, position: -.inf}
`},
		{"csv", FormatCSV, "name,age,uncertainty,position\na,10,1,+Inf\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc), tt.format)
			assert.ErrorIs(t, err, ErrInvalidDataset)
		})
	}
}

func TestDecode_UndefinedPositionFallsBack(t *testing.T) {
	doc := `
samples:
  - {name: a, age: 10, uncertainty: 1, position: .nan, elevation: 300}
`
	tr, err := Decode(strings.NewReader(doc), FormatYAML)
	require.NoError(t, err)
	require.Len(t, tr.Samples, 1)
	assert.Equal(t, 300.0, tr.Samples[0].StratPosition())
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, err := Decode(strings.NewReader(""), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_NamesTransectAfterFile(t *testing.T) {
	path := writeFile(t, "north_ridge.csv", "name,age,uncertainty\nA,1,0.1\n")

	tr, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "north_ridge", tr.Name)
}

func TestLoad_KeepsDeclaredName(t *testing.T) {
	path := writeFile(t, "file.yaml", "name: Declared\nsamples: []\n")

	tr, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Declared", tr.Name)
	assert.Empty(t, tr.Samples)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ErrorNamesFile(t *testing.T) {
	path := writeFile(t, "broken.json", "{")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataset)
	assert.Contains(t, err.Error(), "broken.json")
}
