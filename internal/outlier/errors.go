package outlier

import "errors"

// Sentinel errors for the outlier package.
// Use errors.Is to check: errors.Is(err, outlier.ErrInvalidParameter)
var (
	ErrInvalidArity     = errors.New("outlier: too many parameters")
	ErrInvalidParameter = errors.New("outlier: invalid parameter")
	ErrInvalidMask      = errors.New("outlier: mask index out of range")
)
