package laplacian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSparseBuilder_Validation(t *testing.T) {
	_, err := NewSparseBuilder(0)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	sb, err := NewSparseBuilder(3)
	require.NoError(t, err)
	require.ErrorIs(t, sb.Add(3, 0, 1), ErrOutOfRange)
	require.ErrorIs(t, sb.Add(0, -1, 1), ErrOutOfRange)
	require.NoError(t, sb.Add(0, 0, 1))
}

func TestSparse_AccumulationAndAt(t *testing.T) {
	sb, err := NewSparseBuilder(3)
	require.NoError(t, err)
	require.NoError(t, sb.Add(0, 1, 2))
	require.NoError(t, sb.Add(0, 1, 3)) // duplicate coordinate sums
	require.NoError(t, sb.Add(2, 0, -1))

	s := sb.Build()
	require.Equal(t, 3, s.N())
	require.Equal(t, 2, s.NNZ())

	v, err := s.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	v, err = s.At(1, 1)
	require.NoError(t, err)
	require.Zero(t, v, "absent entries read as zero")

	_, err = s.At(0, 3)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestSparse_MulVec(t *testing.T) {
	sb, _ := NewSparseBuilder(2)
	// [[2, -1], [-1, 2]]
	require.NoError(t, sb.Add(0, 0, 2))
	require.NoError(t, sb.Add(0, 1, -1))
	require.NoError(t, sb.Add(1, 0, -1))
	require.NoError(t, sb.Add(1, 1, 2))
	s := sb.Build()

	y, err := s.MulVec([]float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1}, y)

	_, err = s.MulVec([]float64{1, 2, 3})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestSparse_SymScaleNegDense(t *testing.T) {
	sb, _ := NewSparseBuilder(2)
	require.NoError(t, sb.Add(0, 0, 4))
	require.NoError(t, sb.Add(0, 1, 2))
	require.NoError(t, sb.Add(1, 0, 2))
	s := sb.Build()

	scaled, err := s.SymScale([]float64{0.5, 2})
	require.NoError(t, err)

	v, _ := scaled.At(0, 0)
	require.Equal(t, 1.0, v) // 4·0.5·0.5
	v, _ = scaled.At(0, 1)
	require.Equal(t, 2.0, v) // 2·0.5·2
	v, _ = s.At(0, 0)
	require.Equal(t, 4.0, v, "source matrix untouched")

	neg := s.Neg()
	v, _ = neg.At(0, 1)
	require.Equal(t, -2.0, v)

	require.Equal(t, []float64{4, 2, 2, 0}, s.Dense())
	require.Equal(t, []float64{4, 0}, s.Diagonal())
}

func TestSparse_SymmetryError(t *testing.T) {
	sb, _ := NewSparseBuilder(2)
	require.NoError(t, sb.Add(0, 1, 1))
	require.NoError(t, sb.Add(1, 0, 1.5))
	s := sb.Build()
	require.InDelta(t, 0.5, s.SymmetryError(), 1e-12)
}
