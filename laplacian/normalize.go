package laplacian

import "math"

// massEpsilon guards the inverse square root for isolated or degenerate
// vertices whose lumped area is (near) zero.
const massEpsilon = 1e-10

// Normalize computes A^(−1/2) L A^(−1/2) for the diagonal mass matrix
// A = diag(mass). The normalized operator has eigenvalues in a bounded
// range, which conditions the eigensolve. Symmetry and the zero row-sum
// null vector (rescaled) are preserved.
func Normalize(l *Sparse, mass []float64) (*Sparse, error) {
	if len(mass) != l.N() {
		return nil, ErrDimensionMismatch
	}
	invSqrt := make([]float64, len(mass))
	for i, a := range mass {
		invSqrt[i] = 1 / math.Sqrt(a+massEpsilon)
	}

	return l.SymScale(invSqrt)
}
