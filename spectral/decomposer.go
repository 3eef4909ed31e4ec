package spectral

import (
	"context"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tkarvinen/surflens/core"
	"github.com/tkarvinen/surflens/laplacian"
	"github.com/tkarvinen/surflens/region"
)

// nodalZero snaps near-zero eigenfunction values to the boundary sign 0.
const nodalZero = 1e-6

// minDomainVertices is the smallest nodal domain kept, in VERTICES
// (the differential lens's minimum counts faces — different unit).
const minDomainVertices = 11

// EigenMode is one vibration mode of the Laplace–Beltrami operator.
type EigenMode struct {
	// Eigenvalue is the mode's nonnegative eigenvalue; modes sort
	// ascending, so index 0 is the constant mode with eigenvalue ≈ 0.
	Eigenvalue float64

	// Eigenfunction holds one scalar per tessellated vertex.
	Eigenfunction []float64

	// Index is the mode's ascending rank.
	Index int

	// Multiplicity counts eigenvalues within tolerance of this one.
	Multiplicity int
}

// Decomposer solves the surface's eigenproblem and extracts nodal-domain
// regions. One instance caches the operator (via its laplacian.Builder)
// and the last computed modes.
type Decomposer struct {
	builder *laplacian.Builder
	opts    Options

	modes []EigenMode
	level int
}

// NewDecomposer builds a Decomposer over the given evaluator.
// Returns core.ErrNilEvaluator or ErrOptionViolation.
func NewDecomposer(ev core.Evaluator, opts ...Option) (*Decomposer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	builder, err := laplacian.NewBuilder(ev)
	if err != nil {
		return nil, err
	}

	return &Decomposer{builder: builder, opts: o}, nil
}

// ClearCache drops cached operators and modes; call after the source
// geometry changes.
func (d *Decomposer) ClearCache() {
	d.builder.ClearCache()
	d.modes = nil
}

// ComputeEigenModes solves for the first numModes eigenmodes of the
// normalized Laplace–Beltrami operator at the given tessellation level.
//
// The operator is negative semi-definite, so the solve runs on its
// negation and the nonnegative spectrum is reported ascending: mode 0 is
// the constant function with eigenvalue ≈ 0. Eigenvalues within the
// multiplicity tolerance of each other are grouped pairwise into
// multiplicity classes.
//
// Errors: ErrBadModeCount, laplacian build failures, ErrNotConverged
// (recoverable; retry with a higher sweep budget or coarser level).
func (d *Decomposer) ComputeEigenModes(ctx context.Context, numModes, tessellationLevel int) ([]EigenMode, error) {
	if numModes < 1 {
		return nil, ErrBadModeCount
	}
	l, mass, err := d.builder.Build(tessellationLevel)
	if err != nil {
		return nil, err
	}
	n := l.N()
	if numModes > n {
		return nil, fmt.Errorf("%w: %d modes of a %d-vertex operator", ErrBadModeCount, numModes, n)
	}

	norm, err := laplacian.Normalize(l, mass)
	if err != nil {
		return nil, err
	}

	// Solve on −L_norm: positive semi-definite, eigenvalues ascending
	// from ≈ 0.
	vals, vecs, err := eigenSym(ctx, norm.Neg().Dense(), n, d.opts.EigenTolerance, d.opts.MaxSweeps)
	if err != nil {
		return nil, err
	}

	modes := make([]EigenMode, numModes)
	for i := 0; i < numModes; i++ {
		fn := make([]float64, n)
		for row := 0; row < n; row++ {
			fn[row] = vecs[row*n+i]
		}
		val := vals[i]
		if val < 0 && val > -d.opts.MultiplicityTolerance {
			val = 0 // numeric noise below zero on a PSD spectrum
		}
		modes[i] = EigenMode{Eigenvalue: val, Eigenfunction: fn, Index: i, Multiplicity: 1}
	}
	detectMultiplicities(modes, d.opts.MultiplicityTolerance)

	d.modes = modes
	d.level = tessellationLevel

	return modes, nil
}

// detectMultiplicities counts, for each mode, how many computed modes
// share its eigenvalue within tol (pairwise symmetric grouping —
// degenerate spectra like the sphere's 3-fold and 5-fold groups).
func detectMultiplicities(modes []EigenMode, tol float64) {
	for i := range modes {
		count := 0
		for j := range modes {
			if math.Abs(modes[j].Eigenvalue-modes[i].Eigenvalue) < tol {
				count++
			}
		}
		modes[i].Multiplicity = count
	}
}

// Modes returns the last computed eigenmodes, or nil.
func (d *Decomposer) Modes() []EigenMode { return d.modes }

// ExtractNodalDomains lifts one eigenfunction's sign structure into
// face-level regions.
//
// Vertices are classified by sign with |value| < 1e-6 snapping to the
// boundary sign 0; connected components of same-nonzero-sign vertices are
// found by flood fill over the tessellation's vertex adjacency (sign-0
// vertices separate components and are never absorbed). A component claims
// every control face with a triangle majority (at least 2 of 3 vertices
// inside); a face straddling the nodal line is awarded to the component
// with the most claiming triangles, so the returned regions are always
// face-disjoint. Components under 11 vertices are discarded. positiveOnly
// keeps only sign +1 components.
//
// Errors: ErrConstantMode for modeIndex 0, ErrModesNotComputed,
// ErrModeOutOfRange.
func (d *Decomposer) ExtractNodalDomains(modeIndex int, positiveOnly bool) ([]*region.Region, error) {
	if modeIndex == 0 {
		return nil, ErrConstantMode
	}
	if d.modes == nil {
		return nil, ErrModesNotComputed
	}
	if modeIndex < 0 || modeIndex >= len(d.modes) {
		return nil, fmt.Errorf("%w: mode %d of %d", ErrModeOutOfRange, modeIndex, len(d.modes))
	}

	mesh, err := d.builder.Mesh(d.level)
	if err != nil {
		return nil, err
	}

	fn := d.modes[modeIndex].Eigenfunction
	signs := make([]int, len(fn))
	for v, val := range fn {
		switch {
		case math.Abs(val) < nodalZero:
			signs[v] = 0
		case val > 0:
			signs[v] = 1
		default:
			signs[v] = -1
		}
	}

	adjacency := mesh.VertexAdjacency()
	visited := make([]bool, len(fn))

	type domain struct {
		sign  int
		verts map[int]bool
	}
	var domains []domain

	for start := 0; start < len(fn); start++ {
		if visited[start] {
			continue
		}
		sign := signs[start]
		if sign == 0 {
			visited[start] = true // boundary vertices separate, never join
			continue
		}
		if positiveOnly && sign < 0 {
			visited[start] = true
			continue
		}

		component := floodFill(start, sign, signs, adjacency, visited)
		if len(component) < minDomainVertices {
			continue
		}
		domains = append(domains, domain{sign: sign, verts: component})
	}

	// Triangle-majority votes per (face, domain); a face straddling the
	// nodal line goes to whichever domain claims more of its triangles
	// (lowest domain index on ties), keeping regions face-disjoint.
	votes := make(map[int][]int)
	for t, tri := range mesh.Triangles {
		for di, dm := range domains {
			count := 0
			for _, v := range tri {
				if dm.verts[v] {
					count++
				}
			}
			if count < 2 {
				continue
			}
			face := mesh.FaceParents[t]
			if votes[face] == nil {
				votes[face] = make([]int, len(domains))
			}
			votes[face][di]++
		}
	}

	domainFaces := make([][]int, len(domains))
	for face, perDomain := range votes {
		best := 0
		for di, n := range perDomain {
			if n > perDomain[best] {
				best = di
			}
		}
		domainFaces[best] = append(domainFaces[best], face)
	}

	var regions []*region.Region
	for di, dm := range domains {
		if len(domainFaces[di]) == 0 {
			continue
		}
		sort.Ints(domainFaces[di])
		regions = append(regions, nodalRegion(modeIndex, dm.sign, domainFaces[di]))
	}

	return regions, nil
}

// floodFill walks the vertex adjacency breadth-first from start,
// collecting the connected component of vertices with the target sign.
func floodFill(start, sign int, signs []int, adjacency [][]int, visited []bool) map[int]bool {
	component := map[int]bool{start: true}
	queue := []int{start}
	visited[start] = true

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, nbr := range adjacency[v] {
			if visited[nbr] || signs[nbr] != sign {
				continue
			}
			visited[nbr] = true
			component[nbr] = true
			queue = append(queue, nbr)
		}
	}

	return component
}

// nodalRegion packages one nodal domain as a region. Unity strength
// starts at 0; the lens broadcasts the combined resonance score later.
func nodalRegion(modeIndex, sign int, faces []int) *region.Region {
	signWord, signMark := "positive", "+"
	idTag := "pos"
	if sign < 0 {
		signWord, signMark = "negative", "-"
		idTag = "neg"
	}

	return &region.Region{
		ID:             region.NewID(fmt.Sprintf("spectral_mode%d_%s", modeIndex, idTag)),
		Faces:          faces,
		UnityPrinciple: fmt.Sprintf("Spectral eigenmode %d (%s domain)", modeIndex, signWord),
		Metadata: map[string]any{
			"generation_method": "spectral",
			"mode_index":        modeIndex,
			"sign":              signMark,
		},
		ConstraintsPassed: true,
	}
}

// ResonanceScore rates a decomposition in [0,1]:
// 0.6·count_score + 0.4·uniformity_score, where count_score peaks at 1
// for 3–8 regions (n/3 below, decaying by (n−8)/10 above) and
// uniformity_score = 1 − min(1, std(sizes)/(mean(sizes)+1)). Empty input
// scores 0.
func (d *Decomposer) ResonanceScore(regions []*region.Region) float64 {
	if len(regions) == 0 {
		return 0
	}

	n := len(regions)
	var countScore float64
	switch {
	case n < 3:
		countScore = float64(n) / 3
	case n <= 8:
		countScore = 1
	default:
		countScore = math.Max(0, 1-float64(n-8)/10)
	}

	sizes := make([]float64, n)
	for i, r := range regions {
		sizes[i] = float64(len(r.Faces))
	}
	mean := stat.Mean(sizes, nil)
	std := stat.PopStdDev(sizes, nil)
	uniformity := 1 - math.Min(1, std/(mean+1))

	score := 0.6*countScore + 0.4*uniformity

	return math.Max(0, math.Min(1, score))
}
