package curvature

// Class labels the local shape of a face from its curvature statistics.
type Class int

// Face shape classes, from the sign structure of (K, H).
const (
	// Elliptic: K > threshold. Bowl-like (sphere, ellipsoid patch).
	Elliptic Class = iota

	// Hyperbolic: K < -threshold. Saddle-like.
	Hyperbolic

	// Parabolic: |K| ≤ threshold but |H| > threshold. Cylindrical/conical.
	Parabolic

	// Planar: |K| ≤ threshold and |H| ≤ threshold. Flat.
	Planar
)

// String implements fmt.Stringer.
func (c Class) String() string {
	switch c {
	case Elliptic:
		return "elliptic"
	case Hyperbolic:
		return "hyperbolic"
	case Parabolic:
		return "parabolic"
	case Planar:
		return "planar"
	default:
		return "unknown"
	}
}

// Describe returns the human-readable shape description used in region
// unity principles.
func (c Class) Describe() string {
	switch c {
	case Elliptic:
		return "bowl-like (K>0)"
	case Hyperbolic:
		return "saddle-like (K<0)"
	case Parabolic:
		return "cylindrical (K≈0)"
	case Planar:
		return "flat (K≈0, H≈0)"
	default:
		return "unknown"
	}
}

// Default classification thresholds, matching the sampler's sensitivity.
const (
	DefaultGaussianThreshold = 0.01 // K threshold for elliptic/hyperbolic
	DefaultMeanThreshold     = 0.01 // |H| threshold for flat vs curved
)

// Classify labels one face from its statistics. Gaussian-sign checks take
// priority over the mean-curvature check, which makes the label a pure
// deterministic function of (K, |H|) and the two thresholds.
func Classify(s FaceStats, gaussianThreshold, meanThreshold float64) Class {
	switch {
	case s.MeanK > gaussianThreshold:
		return Elliptic
	case s.MeanK < -gaussianThreshold:
		return Hyperbolic
	case s.MeanAbsH > meanThreshold:
		return Parabolic
	default:
		return Planar
	}
}

// ClassifyField labels every face of a field with the same thresholds.
func ClassifyField(field Field, gaussianThreshold, meanThreshold float64) map[int]Class {
	classes := make(map[int]Class, len(field))
	for face, s := range field {
		classes[face] = Classify(s, gaussianThreshold, meanThreshold)
	}

	return classes
}
