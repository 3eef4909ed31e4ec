package region

import "github.com/tkarvinen/surflens/core"

// Sentinel errors for the region data model.
var (
	// ErrTooFewRegions is returned by MergeRegions for fewer than 2 inputs.
	ErrTooFewRegions = core.WrapConfiguration("region: need at least 2 regions to merge")

	// ErrEmptyCurve is returned when evaluating a curve with no points.
	ErrEmptyCurve = core.WrapConfiguration("region: curve has no points")

	// ErrCurveRange is returned when the curve parameter t is outside [0,1].
	ErrCurveRange = core.WrapConfiguration("region: curve parameter outside [0,1]")
)
