package differential

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/tkarvinen/surflens/curvature"
)

// nearZeroMean guards the coefficient-of-variation denominators.
const nearZeroMean = 1e-6

// Coherence scores how uniform the curvature is across a region's faces,
// in [0,1] with 1 meaning perfect homogeneity.
//
// Per axis (Gaussian K and mean H): CV = std/mean with the mean taken over
// magnitudes and the std over signed values; axis coherence = 1/(1+CV).
// An axis whose magnitude mean is below 1e-6 is considered flat and scores
// 1.0. The overall coherence is the average of the two axes, clamped to
// [0,1]. A single-face region is exactly 1.0.
func Coherence(faces []int, field curvature.Field) float64 {
	if len(faces) <= 1 {
		return 1.0
	}

	kValues := make([]float64, len(faces))
	hValues := make([]float64, len(faces))
	kAbs := make([]float64, len(faces))
	hAbs := make([]float64, len(faces))
	for i, f := range faces {
		s := field[f]
		kValues[i] = s.MeanK
		hValues[i] = s.MeanH
		kAbs[i] = math.Abs(s.MeanK)
		hAbs[i] = math.Abs(s.MeanH)
	}

	kCoh := axisCoherence(stat.Mean(kAbs, nil), stat.PopStdDev(kValues, nil))
	hCoh := axisCoherence(stat.Mean(hAbs, nil), stat.PopStdDev(hValues, nil))

	coherence := (kCoh + hCoh) / 2

	// Clamp: the formula cannot exceed 1, but keep the contract explicit.
	return math.Max(0, math.Min(1, coherence))
}

// axisCoherence maps one axis's CV into (0,1]; a near-zero mean forces 1.
func axisCoherence(mean, std float64) float64 {
	if mean < nearZeroMean {
		return 1.0
	}

	return 1.0 / (1.0 + std/mean)
}
