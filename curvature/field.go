package curvature

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/tkarvinen/surflens/core"
)

// FaceStats aggregates curvature samples over one control face. A face
// whose every sample failed carries the zero value with SampleCount 0.
type FaceStats struct {
	MeanK      float64 // mean Gaussian curvature
	MeanH      float64 // mean mean-curvature (signed)
	MeanAbsH   float64 // mean |H|
	MeanKappa1 float64 // mean principal curvature κ₁
	MeanKappa2 float64 // mean principal curvature κ₂

	StdK float64 // population std of Gaussian curvature
	StdH float64 // population std of mean curvature

	MaxAbsKappa1 float64 // max |κ₁| over the face's samples

	SampleCount int // samples that actually succeeded
}

// Field maps control face index to its aggregated curvature statistics.
// Recomputed per analysis call; cached only inside a single lens instance.
type Field map[int]FaceStats

// DefaultSamplesPerFace samples a 3×3 interior grid, as dense as the
// classification thresholds need and cheap enough for interactive use.
const DefaultSamplesPerFace = 9

// maxSamplesPerFace bounds the grid before committing to long-running
// evaluator work.
const maxSamplesPerFace = 1024

// SampleField evaluates exact curvature over every face of the surface
// and aggregates per-face statistics.
//
// The grid is n×n with n = round(√samplesPerFace), sampled at u,v points
// evenly spaced across [0.1, 0.9] (interior only; a 1-point grid collapses
// to u = v = 0.1). Individual failed samples are skipped; a face whose
// samples all fail gets an explicit zero-valued record.
//
// Errors: core.ErrNilEvaluator, core.ErrNoFaces, ErrBadSampleCount.
func SampleField(ev core.Evaluator, samplesPerFace int) (Field, error) {
	return SampleFieldExcluding(ev, samplesPerFace, nil)
}

// SampleFieldExcluding is SampleField with a set of faces to leave out
// entirely — excluded faces are never queried and never appear in the
// returned field. Used by lenses to honor pinned faces.
func SampleFieldExcluding(ev core.Evaluator, samplesPerFace int, exclude map[int]bool) (Field, error) {
	if ev == nil {
		return nil, core.ErrNilEvaluator
	}
	if samplesPerFace < 1 || samplesPerFace > maxSamplesPerFace {
		return nil, ErrBadSampleCount
	}
	faces := ev.FaceCount()
	if faces <= 0 {
		return nil, core.ErrNoFaces
	}

	grid := sampleGrid(samplesPerFace)
	field := make(Field, faces)
	for face := 0; face < faces; face++ {
		if exclude[face] {
			continue
		}
		field[face] = sampleFace(ev, face, grid)
	}

	return field, nil
}

// sampleGrid returns n evenly spaced coordinates across [0.1, 0.9] with
// n = round(√samples). n == 1 yields {0.1} (linspace semantics).
func sampleGrid(samples int) []float64 {
	n := int(math.Round(math.Sqrt(float64(samples))))
	if n < 1 {
		n = 1
	}
	if n == 1 {
		return []float64{0.1}
	}
	g := make([]float64, n)
	step := 0.8 / float64(n-1)
	for i := range g {
		g[i] = 0.1 + float64(i)*step
	}

	return g
}

// sampleFace runs the grid over one face and aggregates the survivors.
func sampleFace(ev core.Evaluator, face int, grid []float64) FaceStats {
	var (
		gaussians []float64
		means     []float64
		absMeans  []float64
		kappa1s   []float64
		kappa2s   []float64
	)
	for _, u := range grid {
		for _, v := range grid {
			s, err := ev.CurvatureAt(face, u, v)
			if err != nil {
				continue // degenerate parametric point; skip this sample
			}
			gaussians = append(gaussians, s.Gaussian)
			means = append(means, s.Mean)
			absMeans = append(absMeans, s.AbsMean)
			kappa1s = append(kappa1s, s.Kappa1)
			kappa2s = append(kappa2s, s.Kappa2)
		}
	}
	if len(gaussians) == 0 {
		return FaceStats{} // zero-stat fallback for a fully degenerate face
	}

	maxAbsK1 := 0.0
	for _, k := range kappa1s {
		if a := math.Abs(k); a > maxAbsK1 {
			maxAbsK1 = a
		}
	}

	return FaceStats{
		MeanK:        stat.Mean(gaussians, nil),
		MeanH:        stat.Mean(means, nil),
		MeanAbsH:     stat.Mean(absMeans, nil),
		MeanKappa1:   stat.Mean(kappa1s, nil),
		MeanKappa2:   stat.Mean(kappa2s, nil),
		StdK:         stat.PopStdDev(gaussians, nil),
		StdH:         stat.PopStdDev(means, nil),
		MaxAbsKappa1: maxAbsK1,
		SampleCount:  len(gaussians),
	}
}
