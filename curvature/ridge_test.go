package curvature

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// gradedField ramps |mean κ₁| linearly over n faces.
func gradedField(n int) Field {
	field := make(Field, n)
	for i := 0; i < n; i++ {
		field[i] = FaceStats{MeanKappa1: float64(i)}
	}

	return field
}

func TestDetectRidgeValley_Extremes(t *testing.T) {
	rv, err := DetectRidgeValley(gradedField(11), 90, 10)
	require.NoError(t, err)

	// Percentile 90 of 0..10 is 9; percentile 10 is 1 (linear interpolation).
	require.Equal(t, map[int]bool{9: true, 10: true}, rv.Ridges)
	require.Equal(t, map[int]bool{0: true, 1: true}, rv.Valleys)
}

func TestDetectRidgeValley_SignedKappaUsesMagnitude(t *testing.T) {
	field := Field{
		0: {MeanKappa1: -5},
		1: {MeanKappa1: 0.1},
		2: {MeanKappa1: 0.2},
		3: {MeanKappa1: 4},
	}
	rv, err := DetectRidgeValley(field, 75, 25)
	require.NoError(t, err)
	require.True(t, rv.Ridges[0], "large negative curvature is still a ridge")
	require.True(t, rv.Valleys[1])
}

func TestDetectRidgeValley_DisabledSides(t *testing.T) {
	rv, err := DetectRidgeValley(gradedField(5), -1, 10)
	require.NoError(t, err)
	require.Empty(t, rv.Ridges)
	require.NotEmpty(t, rv.Valleys)

	rv, err = DetectRidgeValley(gradedField(5), 90, -1)
	require.NoError(t, err)
	require.NotEmpty(t, rv.Ridges)
	require.Empty(t, rv.Valleys)
}

func TestDetectRidgeValley_Errors(t *testing.T) {
	_, err := DetectRidgeValley(Field{}, 90, 10)
	require.ErrorIs(t, err, ErrEmptyField)

	_, err = DetectRidgeValley(gradedField(5), 101, 10)
	require.ErrorIs(t, err, ErrBadPercentile)

	_, err = DetectRidgeValley(gradedField(5), 10, 90)
	require.ErrorIs(t, err, ErrPercentileOrder)
}
