package outlier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 3, p.StratLevel)
	assert.False(t, p.ExcludeEnds)
	assert.NoError(t, p.Validate())
}

func TestParams_Validate(t *testing.T) {
	for _, level := range []int{-1, 0, 1, 4} {
		err := Params{StratLevel: level}.Validate()
		assert.ErrorIs(t, err, ErrInvalidParameter, "level %d", level)
	}
	for _, level := range []int{2, 3} {
		assert.NoError(t, Params{StratLevel: level}.Validate(), "level %d", level)
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Params
		wantErr error
	}{
		{"defaults", nil, Params{StratLevel: 3}, nil},
		{"level only", []string{"2"}, Params{StratLevel: 2}, nil},
		{"level and ends", []string{"2", "true"}, Params{StratLevel: 2, ExcludeEnds: true}, nil},
		{"numeric bool", []string{"3", "0"}, Params{StratLevel: 3}, nil},
		{"padded", []string{" 3 ", " T "}, Params{StratLevel: 3, ExcludeEnds: true}, nil},
		{"too many", []string{"3", "true", "extra"}, Params{}, ErrInvalidArity},
		{"level out of range", []string{"4"}, Params{}, ErrInvalidParameter},
		{"level not integer", []string{"deep"}, Params{}, ErrInvalidParameter},
		{"ends not boolean", []string{"3", "maybe"}, Params{}, ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgsWithDefaults(t *testing.T) {
	def := Params{StratLevel: 2, ExcludeEnds: true}

	got, err := ParseArgsWithDefaults(nil, def)
	require.NoError(t, err)
	assert.Equal(t, def, got)

	got, err = ParseArgsWithDefaults([]string{"3"}, def)
	require.NoError(t, err)
	assert.Equal(t, Params{StratLevel: 3, ExcludeEnds: true}, got)

	_, err = ParseArgsWithDefaults(nil, Params{StratLevel: 7})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestParseStratLevel(t *testing.T) {
	level, err := ParseStratLevel(" 2 ")
	require.NoError(t, err)
	assert.Equal(t, 2, level)

	// Range is left to Validate, so out-of-range values parse.
	level, err = ParseStratLevel("7")
	require.NoError(t, err)
	assert.Equal(t, 7, level)
	assert.ErrorIs(t, Params{StratLevel: level}.Validate(), ErrInvalidParameter)

	_, err = ParseStratLevel("deep")
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestParseMask(t *testing.T) {
	m, err := ParseMask("")
	require.NoError(t, err)
	assert.Nil(t, m)

	m, err = ParseMask("3, 1,1")
	require.NoError(t, err)
	assert.Equal(t, Mask{3, 1, 1}, m)

	_, err = ParseMask("1,x")
	assert.ErrorIs(t, err, ErrInvalidMask)
}

func TestMask_Indices(t *testing.T) {
	idx, err := Mask(nil).indices(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, idx)

	idx, err = Mask{2, 0, 2}.indices(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, idx)

	idx, err = Mask{}.indices(3)
	require.NoError(t, err)
	assert.Empty(t, idx)

	_, err = Mask{3}.indices(3)
	assert.ErrorIs(t, err, ErrInvalidMask)

	_, err = Mask{-1}.indices(3)
	assert.ErrorIs(t, err, ErrInvalidMask)
}
