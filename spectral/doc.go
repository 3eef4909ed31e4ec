// Package spectral implements the eigenfunction lens: it decomposes the
// surface's Laplace–Beltrami operator into vibration modes and reads
// region boundaries off the eigenfunctions' nodal lines.
//
// What
//
//   - Decomposer.ComputeEigenModes builds the normalized cotangent
//     Laplacian, solves the symmetric eigenproblem on its negation (the
//     operator is negative semi-definite; the negation's spectrum is the
//     nonnegative one callers expect), and returns modes ascending by
//     eigenvalue with multiplicity classes grouped within a tolerance.
//     Mode 0 is the constant function with eigenvalue ≈ 0.
//   - Decomposer.ExtractNodalDomains flood-fills connected components of
//     same-sign eigenfunction vertices (|value| < 1e-6 snaps to a
//     boundary sign of 0, which separates and is never absorbed), then
//     lifts components to control faces by triangle majority vote.
//   - ResonanceScore rates a decomposition in [0,1]: 60% region-count
//     balance (3–8 ideal) + 40% size uniformity.
//   - Lens.Analyze chains it all and broadcasts ONE combined resonance
//     score onto every returned region, regardless of source mode — an
//     explicit design choice, not per-mode scoring.
//
// Eigensolver
//
//	Cyclic Jacobi rotations on a dense working copy with an accumulator
//	for the eigenvectors, bounded by a sweep budget. Exhausting the
//	budget returns ErrNotConverged (a ConvergenceFailure) — a recoverable
//	failure of this analysis call, never a crash, and never silently
//	replaced with a default.
//
// The nodal-domain minimum (11) counts VERTICES; the differential lens's
// MinRegionSize counts FACES. The units are intentionally not unified.
package spectral
