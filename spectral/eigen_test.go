package spectral

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEigenSym_TwoByTwo(t *testing.T) {
	// [[2,1],[1,2]] has eigenvalues 1 and 3.
	a := []float64{2, 1, 1, 2}
	vals, vecs, err := eigenSym(context.Background(), a, 2, 1e-12, 50)
	require.NoError(t, err)
	require.InDelta(t, 1.0, vals[0], 1e-10)
	require.InDelta(t, 3.0, vals[1], 1e-10)

	// Column 0 is the (1,-1) direction, column 1 the (1,1) direction.
	require.InDelta(t, 0, vecs[0]+vecs[2], 1e-10)
	require.InDelta(t, 0, vecs[1]-vecs[3], 1e-10)
}

func TestEigenSym_Tridiagonal(t *testing.T) {
	// [[2,-1,0],[-1,2,-1],[0,-1,2]]: eigenvalues 2−√2, 2, 2+√2.
	a := []float64{
		2, -1, 0,
		-1, 2, -1,
		0, -1, 2,
	}
	vals, vecs, err := eigenSym(context.Background(), a, 3, 1e-12, 50)
	require.NoError(t, err)
	require.InDelta(t, 2-math.Sqrt2, vals[0], 1e-10)
	require.InDelta(t, 2.0, vals[1], 1e-10)
	require.InDelta(t, 2+math.Sqrt2, vals[2], 1e-10)

	// Residual check ‖A·v − λ·v‖∞ on the original matrix.
	orig := []float64{
		2, -1, 0,
		-1, 2, -1,
		0, -1, 2,
	}
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			av := 0.0
			for k := 0; k < 3; k++ {
				av += orig[row*3+k] * vecs[k*3+col]
			}
			require.InDelta(t, vals[col]*vecs[row*3+col], av, 1e-9,
				"residual at (%d,%d)", row, col)
		}
	}
}

func TestEigenSym_DiagonalInputSortsAscending(t *testing.T) {
	a := []float64{
		5, 0, 0,
		0, -2, 0,
		0, 0, 1,
	}
	vals, vecs, err := eigenSym(context.Background(), a, 3, 1e-12, 10)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, 1, 5}, vals)

	// Permuted identity columns: -2 came from row 1, 1 from row 2, 5 from row 0.
	require.Equal(t, 1.0, vecs[1*3+0])
	require.Equal(t, 1.0, vecs[2*3+1])
	require.Equal(t, 1.0, vecs[0*3+2])
}

func TestEigenSym_Orthonormal(t *testing.T) {
	a := []float64{
		4, 1, 2,
		1, 3, 0,
		2, 0, 5,
	}
	_, vecs, err := eigenSym(context.Background(), a, 3, 1e-12, 50)
	require.NoError(t, err)

	for c1 := 0; c1 < 3; c1++ {
		for c2 := 0; c2 < 3; c2++ {
			dot := 0.0
			for row := 0; row < 3; row++ {
				dot += vecs[row*3+c1] * vecs[row*3+c2]
			}
			want := 0.0
			if c1 == c2 {
				want = 1.0
			}
			require.InDelta(t, want, dot, 1e-9)
		}
	}
}

func TestEigenSym_ExhaustedBudget(t *testing.T) {
	a := []float64{2, 1, 1, 2}
	_, _, err := eigenSym(context.Background(), a, 2, 1e-12, 0)
	require.ErrorIs(t, err, ErrNotConverged)
}

func TestEigenSym_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := []float64{2, 1, 1, 2}
	_, _, err := eigenSym(ctx, a, 2, 1e-12, 50)
	require.ErrorIs(t, err, context.Canceled)
}
