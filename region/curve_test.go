package region

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurveEvaluate_Errors(t *testing.T) {
	var empty Curve
	_, err := empty.Evaluate(0.5)
	require.ErrorIs(t, err, ErrEmptyCurve)

	c := Curve{Points: []Point{{U: 0.1, V: 0.1}, {U: 0.9, V: 0.9}}}
	_, err = c.Evaluate(-0.01)
	require.ErrorIs(t, err, ErrCurveRange)
	_, err = c.Evaluate(1.01)
	require.ErrorIs(t, err, ErrCurveRange)
}

func TestCurveEvaluate_SinglePoint(t *testing.T) {
	c := Curve{Points: []Point{{FaceID: 3, U: 0.2, V: 0.7}}}
	for _, tt := range []float64{0, 0.5, 1} {
		p, err := c.Evaluate(tt)
		require.NoError(t, err)
		require.Equal(t, Point{FaceID: 3, U: 0.2, V: 0.7}, p)
	}
}

func TestCurveEvaluate_OpenPolyline(t *testing.T) {
	c := Curve{Points: []Point{
		{FaceID: 0, U: 0, V: 0},
		{FaceID: 0, U: 1, V: 0},
		{FaceID: 0, U: 1, V: 1},
	}}

	p, err := c.Evaluate(0)
	require.NoError(t, err)
	require.Equal(t, Point{FaceID: 0, U: 0, V: 0}, p)

	p, err = c.Evaluate(0.25)
	require.NoError(t, err)
	require.InDelta(t, 0.5, p.U, 1e-12)
	require.InDelta(t, 0.0, p.V, 1e-12)

	p, err = c.Evaluate(1)
	require.NoError(t, err)
	require.Equal(t, Point{FaceID: 0, U: 1, V: 1}, p)
}

func TestCurveEvaluate_ClosedWrapsToStart(t *testing.T) {
	c := Curve{
		Points: []Point{
			{FaceID: 0, U: 0, V: 0},
			{FaceID: 0, U: 1, V: 0},
			{FaceID: 0, U: 1, V: 1},
			{FaceID: 0, U: 0, V: 1},
		},
		Closed: true,
	}

	// Four segments; t in [0.75, 1] traverses the closing edge back to (0,0).
	p, err := c.Evaluate(0.875)
	require.NoError(t, err)
	require.InDelta(t, 0.0, p.U, 1e-12)
	require.InDelta(t, 0.5, p.V, 1e-12)

	p, err = c.Evaluate(1)
	require.NoError(t, err)
	require.InDelta(t, 0.0, p.U, 1e-12)
	require.InDelta(t, 0.0, p.V, 1e-12)
}
