package outlier

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultStratLevel is the lookahead depth used when none is given.
	DefaultStratLevel = 3

	minStratLevel = 2
	maxStratLevel = 3

	// maxArgs is the number of positional parameters ParseArgs accepts:
	// [strat_level [exclude_ends]].
	maxArgs = 2
)

// Params controls a detection run.
type Params struct {
	// StratLevel is how many living neighbors ahead a sweep may consult (2 or 3).
	StratLevel int `json:"strat_level"`
	// ExcludeEnds decides the fate of a sample with no living neighbor ahead:
	// false flags it, true passes it.
	ExcludeEnds bool `json:"exclude_ends"`
}

// DefaultParams returns lookahead depth 3 with end samples flagged.
func DefaultParams() Params {
	return Params{StratLevel: DefaultStratLevel}
}

// Validate reports whether p can drive a sweep.
func (p Params) Validate() error {
	if p.StratLevel < minStratLevel || p.StratLevel > maxStratLevel {
		return fmt.Errorf("%w: strat_level = %d, want %d or %d",
			ErrInvalidParameter, p.StratLevel, minStratLevel, maxStratLevel)
	}
	return nil
}

// ParseArgs builds Params from positional string arguments in the order
// strat_level, exclude_ends. Missing trailing arguments keep their defaults.
func ParseArgs(args []string) (Params, error) {
	return ParseArgsWithDefaults(args, DefaultParams())
}

// ParseArgsWithDefaults is ParseArgs with caller-supplied defaults.
func ParseArgsWithDefaults(args []string, def Params) (Params, error) {
	if len(args) > maxArgs {
		return Params{}, fmt.Errorf("%w: got %d, want at most %d (strat_level, exclude_ends)",
			ErrInvalidArity, len(args), maxArgs)
	}

	p := def
	if len(args) > 0 {
		level, err := ParseStratLevel(args[0])
		if err != nil {
			return Params{}, err
		}
		p.StratLevel = level
	}
	if len(args) > 1 {
		exclude, err := ParseExcludeEnds(args[1])
		if err != nil {
			return Params{}, err
		}
		p.ExcludeEnds = exclude
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// ParseStratLevel parses a lookahead depth. The range is checked by
// Params.Validate.
func ParseStratLevel(s string) (int, error) {
	level, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: strat_level %q is not an integer", ErrInvalidParameter, s)
	}
	return level, nil
}

// ParseExcludeEnds parses the end-of-transect policy. Only boolean spellings
// accepted by strconv.ParseBool are valid.
func ParseExcludeEnds(s string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("%w: exclude_ends %q is not a boolean", ErrInvalidParameter, s)
	}
	return v, nil
}
