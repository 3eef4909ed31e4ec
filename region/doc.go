// Package region holds the parametric region/curve data model shared by
// every lens in surflens.
//
// What
//
//   - Region: a set of control faces forming one coherent piece of the
//     surface, with the lens's stated unity principle and its strength.
//     Regions are created by a lens during analysis and owned by the
//     caller afterwards.
//   - Curve: an ordered polyline in (face, u, v) parameter space with
//     piecewise-linear Evaluate(t) and closed-curve wrap-around.
//   - Merge / MergeRegions: fold regions together while preserving the
//     face-set union, pinned-OR, and no-duplicate invariants.
//
// Serialization
//
//	Both types marshal to the JSON shape external callers consume:
//	id, faces, boundary, unity_principle, unity_strength, pinned,
//	metadata, modified, constraints_passed. Optional curve parameters
//	(length_parameter, curvature_integral) are omitted when absent.
//
// Invariants
//
//   - Region.Faces never contains duplicates; order is irrelevant but kept
//     sorted after merges for reproducibility.
//   - Merging A and B yields Faces = A ∪ B and Pinned = A.Pinned ∨ B.Pinned.
//
// Errors
//
//   - ErrTooFewRegions (a ConfigurationError): MergeRegions needs at least
//     two inputs.
//   - ErrEmptyCurve / ErrCurveRange: Evaluate on degenerate input.
package region
