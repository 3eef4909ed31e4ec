// Package curvature samples the exact surface's curvature field and turns
// it into per-face statistics, shape classes, and ridge/valley candidates.
//
// What
//
//   - SampleField: evaluates curvature on an interior n×n grid per control
//     face (u,v ∈ [0.1, 0.9], avoiding degenerate edges and corners) and
//     aggregates per-face means, population deviations, and extrema.
//   - Classify: labels a face elliptic / hyperbolic / parabolic / planar
//     from its Gaussian and mean curvature against configured thresholds.
//     Gaussian-sign checks take priority over the mean-curvature check, so
//     the label is a pure deterministic function of (K, H, thresholds).
//   - DetectRidgeValley: flags faces whose |mean κ₁| sits above the ridge
//     percentile or below the valley percentile of the whole field.
//
// Failure policy
//
//	A single failed curvature sample (degenerate parametric point) is
//	skipped. Only when every sample of a face fails does the face receive
//	an explicit zero-valued statistics record — sampling failures never
//	abort an analysis.
//
// Errors
//
//   - ErrBadSampleCount: samples-per-face outside [1, 1024].
//   - ErrPercentileOrder: valley percentile above ridge percentile.
//   - ErrEmptyField: ridge/valley detection over no faces.
//
// All are ConfigurationErrors (match core.ErrConfiguration via errors.Is).
package curvature
