package differential

import (
	"fmt"

	"github.com/tkarvinen/surflens/curvature"
)

// Option configures the differential lens via functional arguments.
// Invalid options are recorded internally and surfaced as
// ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds the tunable parameters of the differential pipeline.
type Options struct {
	// SamplesPerFace sets the curvature sampling budget per control face;
	// the actual grid is round(√SamplesPerFace) per axis.
	SamplesPerFace int

	// GaussianThreshold separates elliptic/hyperbolic from flat K.
	GaussianThreshold float64

	// MeanThreshold separates parabolic from planar |H|.
	MeanThreshold float64

	// CurvatureTolerance bounds the relative |K| and |H| difference a
	// neighbor may have versus the region's seed and still be absorbed.
	CurvatureTolerance float64

	// MinRegionSize is the smallest surviving region, in FACES. Smaller
	// regions are folded into their best-matching neighbor.
	MinRegionSize int

	// DetectRidges/DetectValleys toggle feature tagging.
	DetectRidges  bool
	DetectValleys bool

	// RidgePercentile / ValleyPercentile threshold |mean κ₁| for feature
	// candidates.
	RidgePercentile  float64
	ValleyPercentile float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the parameters the pipeline was tuned with:
// 9 samples per face, 0.01 curvature thresholds, 0.3 growth tolerance,
// 3-face minimum region, ridge/valley detection at the 90th/10th
// percentiles.
func DefaultOptions() Options {
	return Options{
		SamplesPerFace:     curvature.DefaultSamplesPerFace,
		GaussianThreshold:  curvature.DefaultGaussianThreshold,
		MeanThreshold:      curvature.DefaultMeanThreshold,
		CurvatureTolerance: 0.3,
		MinRegionSize:      3,
		DetectRidges:       true,
		DetectValleys:      true,
		RidgePercentile:    curvature.DefaultRidgePercentile,
		ValleyPercentile:   curvature.DefaultValleyPercentile,
	}
}

// WithSamplesPerFace sets the per-face sampling budget (must be >= 1).
func WithSamplesPerFace(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: SamplesPerFace must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.SamplesPerFace = n
	}
}

// WithThresholds sets the Gaussian and mean curvature classification
// thresholds (both must be >= 0).
func WithThresholds(gaussian, mean float64) Option {
	return func(o *Options) {
		if gaussian < 0 || mean < 0 {
			o.err = fmt.Errorf("%w: thresholds must be >= 0 (K=%g, H=%g)", ErrOptionViolation, gaussian, mean)
			return
		}
		o.GaussianThreshold = gaussian
		o.MeanThreshold = mean
	}
}

// WithCurvatureTolerance sets the growth compatibility tolerance in (0, 1].
func WithCurvatureTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 || tol > 1 {
			o.err = fmt.Errorf("%w: CurvatureTolerance must be in (0,1] (%g)", ErrOptionViolation, tol)
			return
		}
		o.CurvatureTolerance = tol
	}
}

// WithMinRegionSize sets the smallest surviving region in faces.
// A value of 1 disables merging.
func WithMinRegionSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MinRegionSize must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MinRegionSize = n
	}
}

// WithRidgeDetection toggles ridge tagging and sets its percentile.
func WithRidgeDetection(enabled bool, percentile float64) Option {
	return func(o *Options) {
		if percentile < 0 || percentile > 100 {
			o.err = fmt.Errorf("%w: RidgePercentile outside [0,100] (%g)", ErrOptionViolation, percentile)
			return
		}
		o.DetectRidges = enabled
		o.RidgePercentile = percentile
	}
}

// WithValleyDetection toggles valley tagging and sets its percentile.
// The valley percentile must not exceed the ridge percentile; the cross
// check runs in New once all options are applied.
func WithValleyDetection(enabled bool, percentile float64) Option {
	return func(o *Options) {
		if percentile < 0 || percentile > 100 {
			o.err = fmt.Errorf("%w: ValleyPercentile outside [0,100] (%g)", ErrOptionViolation, percentile)
			return
		}
		o.DetectValleys = enabled
		o.ValleyPercentile = percentile
	}
}
