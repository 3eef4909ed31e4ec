package laplacian

import "math"

// Verification tolerances.
const (
	symmetryTol = 1e-6
	rowSumTol   = 1e-4
)

// Verification reports the structural health of an assembled operator.
type Verification struct {
	// SymmetryError is max |L[i,j] − L[j,i]|; Symmetric when < 1e-6.
	SymmetryError float64
	Symmetric     bool

	// MaxRowSum is max |(L·𝟙)[i]|; RowSumsNearZero when < 1e-4. A healthy
	// Laplacian annihilates the constant function.
	MaxRowSum       float64
	RowSumsNearZero bool

	// Sparsity is 1 − nnz/n², the fraction of structurally zero entries.
	Sparsity float64
}

// Verify measures the Laplacian properties the spectral pipeline relies
// on. It never fails; callers decide what to do with an unhealthy report.
func Verify(l *Sparse) Verification {
	v := Verification{SymmetryError: l.SymmetryError()}
	v.Symmetric = v.SymmetryError < symmetryTol

	ones := make([]float64, l.N())
	for i := range ones {
		ones[i] = 1
	}
	rowSums, _ := l.MulVec(ones) // length always matches
	for _, s := range rowSums {
		if a := math.Abs(s); a > v.MaxRowSum {
			v.MaxRowSum = a
		}
	}
	v.RowSumsNearZero = v.MaxRowSum < rowSumTol

	n := float64(l.N())
	v.Sparsity = 1 - float64(l.NNZ())/(n*n)

	return v
}
