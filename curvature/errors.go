package curvature

import "github.com/tkarvinen/surflens/core"

// Sentinel errors for curvature-field construction.
var (
	// ErrBadSampleCount is returned when samples-per-face is outside
	// [1, 1024]; the upper bound keeps a mis-typed grid size from
	// committing the sampler to hours of evaluator queries.
	ErrBadSampleCount = core.WrapConfiguration("curvature: samples per face must be in [1, 1024]")

	// ErrPercentileOrder is returned when the valley percentile exceeds
	// the ridge percentile. Equal percentiles remain legal; the two sets
	// are computed independently and may overlap.
	ErrPercentileOrder = core.WrapConfiguration("curvature: valley percentile above ridge percentile")

	// ErrEmptyField is returned when detection runs over an empty field.
	ErrEmptyField = core.WrapConfiguration("curvature: empty curvature field")

	// ErrBadPercentile is returned for percentiles outside [0, 100].
	ErrBadPercentile = core.WrapConfiguration("curvature: percentile outside [0,100]")
)
