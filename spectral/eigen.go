package spectral

import (
	"context"
	"math"
	"sort"
)

// eigenSym diagonalizes a symmetric n×n matrix given as flat row-major
// data, by cyclic Jacobi rotations: per sweep, every off-diagonal pair
// (p,q) above the rotation threshold is annihilated and the rotation is
// accumulated into the eigenvector matrix q (eigenvectors are columns).
//
// Convergence: the sweep loop stops once the largest off-diagonal
// magnitude drops below tol. Exhausting maxSweeps returns ErrNotConverged
// with the best eigenpairs so far discarded — the caller treats this as a
// recoverable analysis failure. The input slice is consumed as workspace.
//
// Returns eigenvalues ascending with the matching eigenvector columns.
// Complexity: O(sweeps·n³); deterministic pivot order.
func eigenSym(ctx context.Context, a []float64, n int, tol float64, maxSweeps int) ([]float64, []float64, error) {
	// Eigenvector accumulator starts as identity.
	q := make([]float64, n*n)
	for i := 0; i < n; i++ {
		q[i*n+i] = 1
	}

	converged := false
	for sweep := 0; sweep < maxSweeps; sweep++ {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}

		if maxOffDiagonal(a, n) < tol {
			converged = true
			break
		}
		for p := 0; p < n-1; p++ {
			for qi := p + 1; qi < n; qi++ {
				rotate(a, q, n, p, qi, tol)
			}
		}
	}
	if !converged && maxOffDiagonal(a, n) >= tol {
		return nil, nil, ErrNotConverged
	}

	// Diagonal now holds the eigenvalues; sort ascending and permute the
	// eigenvector columns to match.
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = a[i*n+i]
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool { return vals[perm[i]] < vals[perm[j]] })

	sortedVals := make([]float64, n)
	sortedVecs := make([]float64, n*n)
	for col, src := range perm {
		sortedVals[col] = vals[src]
		for row := 0; row < n; row++ {
			sortedVecs[row*n+col] = q[row*n+src]
		}
	}

	return sortedVals, sortedVecs, nil
}

// maxOffDiagonal scans the strict upper triangle for the largest |a[p,q]|.
func maxOffDiagonal(a []float64, n int) float64 {
	maxOff := 0.0
	for i := 0; i < n; i++ {
		base := i * n
		for j := i + 1; j < n; j++ {
			if off := math.Abs(a[base+j]); off > maxOff {
				maxOff = off
			}
		}
	}

	return maxOff
}

// rotate applies one Jacobi rotation annihilating a[p,q], updating the
// working matrix symmetrically and accumulating into the eigenvector
// columns. Pivots already below tol are skipped (no-op keeps the sweep
// order deterministic without risking division blow-ups).
func rotate(a, q []float64, n, p, pq int, tol float64) {
	apq := a[p*n+pq]
	if math.Abs(apq) < tol {
		return
	}
	app := a[p*n+p]
	aqq := a[pq*n+pq]

	// Stable rotation parameters: θ = (aqq−app)/(2·apq),
	// t = sign(θ)/(|θ|+√(θ²+1)), c = 1/√(1+t²), s = t·c.
	theta := (aqq - app) / (2 * apq)
	t := math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
	c := 1 / math.Sqrt(t*t+1)
	s := t * c

	for i := 0; i < n; i++ {
		if i == p || i == pq {
			continue
		}
		aip := a[i*n+p]
		aiq := a[i*n+pq]
		a[i*n+p] = c*aip - s*aiq
		a[p*n+i] = a[i*n+p]
		a[i*n+pq] = s*aip + c*aiq
		a[pq*n+i] = a[i*n+pq]
	}
	a[p*n+p] = app - t*apq
	a[pq*n+pq] = aqq + t*apq
	a[p*n+pq] = 0
	a[pq*n+p] = 0

	for i := 0; i < n; i++ {
		qip := q[i*n+p]
		qiq := q[i*n+pq]
		q[i*n+p] = c*qip - s*qiq
		q[i*n+pq] = s*qip + c*qiq
	}
}
