package laplacian

import (
	"math"
	"sort"
)

// SparseBuilder accumulates (i, j, value) triplets; duplicate coordinates
// sum. Compress with Build once assembly is done.
type SparseBuilder struct {
	n       int
	entries map[[2]int]float64
}

// NewSparseBuilder returns a triplet accumulator for an n×n matrix.
func NewSparseBuilder(n int) (*SparseBuilder, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &SparseBuilder{n: n, entries: make(map[[2]int]float64, 8*n)}, nil
}

// Add accumulates v into entry (i, j).
func (b *SparseBuilder) Add(i, j int, v float64) error {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return ErrOutOfRange
	}
	b.entries[[2]int{i, j}] += v

	return nil
}

// Build compresses the accumulated triplets into CSR form with
// column-sorted rows. The builder may be reused afterwards.
func (b *SparseBuilder) Build() *Sparse {
	counts := make([]int, b.n)
	for c := range b.entries {
		counts[c[0]]++
	}
	rowPtr := make([]int, b.n+1)
	for i := 0; i < b.n; i++ {
		rowPtr[i+1] = rowPtr[i] + counts[i]
	}

	nnz := len(b.entries)
	colIdx := make([]int, nnz)
	vals := make([]float64, nnz)
	next := append([]int(nil), rowPtr[:b.n]...)
	for c, v := range b.entries {
		p := next[c[0]]
		colIdx[p] = c[1]
		vals[p] = v
		next[c[0]]++
	}
	// Sort each row by column for deterministic iteration and At lookups.
	for i := 0; i < b.n; i++ {
		lo, hi := rowPtr[i], rowPtr[i+1]
		row := rowSorter{cols: colIdx[lo:hi], vals: vals[lo:hi]}
		sort.Sort(row)
	}

	return &Sparse{n: b.n, rowPtr: rowPtr, colIdx: colIdx, vals: vals}
}

type rowSorter struct {
	cols []int
	vals []float64
}

func (r rowSorter) Len() int           { return len(r.cols) }
func (r rowSorter) Less(i, j int) bool { return r.cols[i] < r.cols[j] }
func (r rowSorter) Swap(i, j int) {
	r.cols[i], r.cols[j] = r.cols[j], r.cols[i]
	r.vals[i], r.vals[j] = r.vals[j], r.vals[i]
}

// Sparse is a compressed-sparse-row square matrix. Immutable after Build;
// all derived matrices (SymScale, Neg) are fresh allocations.
type Sparse struct {
	n      int
	rowPtr []int
	colIdx []int
	vals   []float64
}

// N reports the dimension.
func (s *Sparse) N() int { return s.n }

// NNZ reports the number of stored entries.
func (s *Sparse) NNZ() int { return len(s.vals) }

// At returns entry (i, j); absent entries are 0.
// Complexity: O(log nnz(row i)) via binary search on the sorted row.
func (s *Sparse) At(i, j int) (float64, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return 0, ErrOutOfRange
	}
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]
	cols := s.colIdx[lo:hi]
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return s.vals[lo+k], nil
	}

	return 0, nil
}

// MulVec computes y = S·x.
func (s *Sparse) MulVec(x []float64) ([]float64, error) {
	if len(x) != s.n {
		return nil, ErrDimensionMismatch
	}
	y := make([]float64, s.n)
	for i := 0; i < s.n; i++ {
		sum := 0.0
		for p := s.rowPtr[i]; p < s.rowPtr[i+1]; p++ {
			sum += s.vals[p] * x[s.colIdx[p]]
		}
		y[i] = sum
	}

	return y, nil
}

// Diagonal extracts the main diagonal as a dense vector.
func (s *Sparse) Diagonal() []float64 {
	d := make([]float64, s.n)
	for i := 0; i < s.n; i++ {
		for p := s.rowPtr[i]; p < s.rowPtr[i+1]; p++ {
			if s.colIdx[p] == i {
				d[i] = s.vals[p]
				break
			}
		}
	}

	return d
}

// SymScale returns D·S·D for the diagonal matrix D = diag(d): entry
// (i, j) becomes S[i,j]·d[i]·d[j]. Sparsity is preserved.
func (s *Sparse) SymScale(d []float64) (*Sparse, error) {
	if len(d) != s.n {
		return nil, ErrDimensionMismatch
	}
	out := &Sparse{
		n:      s.n,
		rowPtr: append([]int(nil), s.rowPtr...),
		colIdx: append([]int(nil), s.colIdx...),
		vals:   make([]float64, len(s.vals)),
	}
	for i := 0; i < s.n; i++ {
		for p := s.rowPtr[i]; p < s.rowPtr[i+1]; p++ {
			out.vals[p] = s.vals[p] * d[i] * d[s.colIdx[p]]
		}
	}

	return out, nil
}

// Neg returns −S.
func (s *Sparse) Neg() *Sparse {
	out := &Sparse{
		n:      s.n,
		rowPtr: append([]int(nil), s.rowPtr...),
		colIdx: append([]int(nil), s.colIdx...),
		vals:   make([]float64, len(s.vals)),
	}
	for p, v := range s.vals {
		out.vals[p] = -v
	}

	return out
}

// Dense expands to a flat row-major n×n slice, the layout the Jacobi
// eigensolver works on.
func (s *Sparse) Dense() []float64 {
	d := make([]float64, s.n*s.n)
	for i := 0; i < s.n; i++ {
		base := i * s.n
		for p := s.rowPtr[i]; p < s.rowPtr[i+1]; p++ {
			d[base+s.colIdx[p]] = s.vals[p]
		}
	}

	return d
}

// SymmetryError reports max |S[i,j] − S[j,i]| over stored entries.
func (s *Sparse) SymmetryError() float64 {
	maxDiff := 0.0
	for i := 0; i < s.n; i++ {
		for p := s.rowPtr[i]; p < s.rowPtr[i+1]; p++ {
			j := s.colIdx[p]
			if j < i {
				continue // each unordered pair once
			}
			tji, _ := s.At(j, i)
			if diff := math.Abs(s.vals[p] - tji); diff > maxDiff {
				maxDiff = diff
			}
		}
	}

	return maxDiff
}
