package curvature

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tkarvinen/surflens/core"
	"github.com/tkarvinen/surflens/meshtest"
)

func TestSampleField_SphereConstantCurvature(t *testing.T) {
	ev := &meshtest.Sphere{Radius: 2}

	field, err := SampleField(ev, DefaultSamplesPerFace)
	require.NoError(t, err)
	require.Len(t, field, ev.FaceCount())

	for face, s := range field {
		require.Equal(t, 9, s.SampleCount, "face %d", face)
		require.InDelta(t, 0.25, s.MeanK, 1e-12) // K = 1/R²
		require.InDelta(t, 0.5, s.MeanH, 1e-12)  // H = 1/R
		require.InDelta(t, 0.5, s.MeanKappa1, 1e-12)
		require.InDelta(t, 0.5, s.MeanKappa2, 1e-12)
		require.InDelta(t, 0.5, s.MaxAbsKappa1, 1e-12)
		require.Zero(t, s.StdK)
		require.Zero(t, s.StdH)
	}
}

func TestSampleField_ArgumentErrors(t *testing.T) {
	ev := &meshtest.Sphere{Radius: 1}

	_, err := SampleField(nil, 9)
	require.ErrorIs(t, err, core.ErrNilEvaluator)

	_, err = SampleField(ev, 0)
	require.ErrorIs(t, err, ErrBadSampleCount)

	_, err = SampleField(ev, 1025)
	require.ErrorIs(t, err, ErrBadSampleCount)

	_, err = SampleField(meshtest.NewGrid(0, 0), 9)
	require.ErrorIs(t, err, core.ErrNoFaces)
}

func TestSampleField_ZeroStatFallback(t *testing.T) {
	g := meshtest.NewGrid(1, 2).
		SetFace(0, core.CurvatureSample{Kappa1: 1, Kappa2: 1, Gaussian: 1, Mean: 1, AbsMean: 1, RMS: 1}).
		FailFace(1)

	field, err := SampleField(g, 9)
	require.NoError(t, err)
	require.Len(t, field, 2)

	// Every sample on face 1 failed; the face still gets an explicit record.
	require.Equal(t, FaceStats{}, field[1])
	require.Equal(t, 0, field[1].SampleCount)
	require.Equal(t, 9, field[0].SampleCount)
}

func TestSampleFieldExcluding_SkipsExcludedEntirely(t *testing.T) {
	ev := &meshtest.Sphere{Radius: 1}

	field, err := SampleFieldExcluding(ev, 9, map[int]bool{3: true, 7: true})
	require.NoError(t, err)
	require.Len(t, field, ev.FaceCount()-2)
	_, ok := field[3]
	require.False(t, ok)
	_, ok = field[7]
	require.False(t, ok)
}

func TestSampleGrid_Spacing(t *testing.T) {
	require.Equal(t, []float64{0.1}, sampleGrid(1))

	g := sampleGrid(9)
	require.Len(t, g, 3)
	require.InDelta(t, 0.1, g[0], 1e-12)
	require.InDelta(t, 0.5, g[1], 1e-12)
	require.InDelta(t, 0.9, g[2], 1e-12)

	// Non-square counts round to the nearest grid side.
	require.Len(t, sampleGrid(10), 3)
	require.Len(t, sampleGrid(16), 4)
}
