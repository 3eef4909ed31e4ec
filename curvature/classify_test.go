package curvature

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify_SignStructure(t *testing.T) {
	cases := []struct {
		name string
		s    FaceStats
		want Class
	}{
		{"bowl", FaceStats{MeanK: 0.5, MeanAbsH: 0.7}, Elliptic},
		{"saddle", FaceStats{MeanK: -0.5, MeanAbsH: 0.0}, Hyperbolic},
		{"cylinder", FaceStats{MeanK: 0.0, MeanAbsH: 0.5}, Parabolic},
		{"flat", FaceStats{MeanK: 0.0, MeanAbsH: 0.0}, Planar},
		{"at gaussian threshold stays flat", FaceStats{MeanK: 0.01}, Planar},
		{"just above gaussian threshold", FaceStats{MeanK: 0.0100001}, Elliptic},
		{"at mean threshold stays flat", FaceStats{MeanAbsH: 0.01}, Planar},
		{"gaussian beats mean priority", FaceStats{MeanK: -0.5, MeanAbsH: 5}, Hyperbolic},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.s, DefaultGaussianThreshold, DefaultMeanThreshold)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	s := FaceStats{MeanK: 0.02, MeanAbsH: 0.3}
	first := Classify(s, DefaultGaussianThreshold, DefaultMeanThreshold)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Classify(s, DefaultGaussianThreshold, DefaultMeanThreshold))
	}
}

func TestClassifyField(t *testing.T) {
	field := Field{
		0: {MeanK: 1},
		1: {MeanK: -1},
		2: {MeanAbsH: 1},
		3: {},
	}
	classes := ClassifyField(field, DefaultGaussianThreshold, DefaultMeanThreshold)
	require.Equal(t, map[int]Class{0: Elliptic, 1: Hyperbolic, 2: Parabolic, 3: Planar}, classes)
}

func TestClass_Strings(t *testing.T) {
	require.Equal(t, "elliptic", Elliptic.String())
	require.Equal(t, "planar", Planar.String())
	require.Equal(t, "saddle-like (K<0)", Hyperbolic.Describe())
	require.Equal(t, "unknown", Class(99).String())
}
