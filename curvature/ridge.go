package curvature

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Default ridge/valley percentiles: top 10% of |mean κ₁| are ridge
// candidates, bottom 10% valley candidates.
const (
	DefaultRidgePercentile  = 90.0
	DefaultValleyPercentile = 10.0
)

// RidgeValley holds the detected feature candidates. The two sets are
// computed independently; at overlapping percentiles a face may appear in
// both, which stays visible to the caller.
type RidgeValley struct {
	Ridges  map[int]bool
	Valleys map[int]bool
}

// DetectRidgeValley flags ridge faces (|mean κ₁| at or above the
// ridgePercentile-th percentile of the whole field) and valley faces (at
// or below the valleyPercentile-th). Percentiles use linear interpolation
// between order statistics. Passing a negative percentile disables that
// side of the detection.
//
// Errors: ErrEmptyField, ErrBadPercentile, and ErrPercentileOrder when the
// valley percentile exceeds the ridge percentile (a misconfiguration that
// would otherwise silently mark most of the surface as both).
func DetectRidgeValley(field Field, ridgePercentile, valleyPercentile float64) (RidgeValley, error) {
	if len(field) == 0 {
		return RidgeValley{}, ErrEmptyField
	}
	if ridgePercentile > 100 || valleyPercentile > 100 {
		return RidgeValley{}, ErrBadPercentile
	}
	detectRidges := ridgePercentile >= 0
	detectValleys := valleyPercentile >= 0
	if detectRidges && detectValleys && valleyPercentile > ridgePercentile {
		return RidgeValley{}, ErrPercentileOrder
	}

	faces := make([]int, 0, len(field))
	for face := range field {
		faces = append(faces, face)
	}
	sort.Ints(faces)

	absK1 := make([]float64, len(faces))
	for i, face := range faces {
		absK1[i] = math.Abs(field[face].MeanKappa1)
	}
	sorted := append([]float64(nil), absK1...)
	sort.Float64s(sorted)

	rv := RidgeValley{Ridges: map[int]bool{}, Valleys: map[int]bool{}}
	if detectRidges {
		thresh := stat.Quantile(ridgePercentile/100, stat.LinInterp, sorted, nil)
		for i, face := range faces {
			if absK1[i] >= thresh {
				rv.Ridges[face] = true
			}
		}
	}
	if detectValleys {
		thresh := stat.Quantile(valleyPercentile/100, stat.LinInterp, sorted, nil)
		for i, face := range faces {
			if absK1[i] <= thresh {
				rv.Valleys[face] = true
			}
		}
	}

	return rv, nil
}
