// Package outlier detects stratigraphic age outliers in a transect of
// exposure-age samples.
//
// Samples are ranked top-down by stratigraphic position (elevation when no
// position is recorded) and swept twice, top-down and bottom-up. Each sweep
// compares a sample with up to three living neighbors ahead of it and flags
// it when its age interval cannot be reconciled with them. A sample flagged
// by both sweeps is a distinct outlier; one flagged by a single sweep is a
// likely outlier.
//
// Basic usage:
//
//	res, err := outlier.Detect(transect, nil, outlier.DefaultParams())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(res.Report())
//
// The package is pure: it performs no I/O, starts no goroutines and keeps no
// reference to its inputs once Detect returns.
package outlier
