package laplacian

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tkarvinen/surflens/core"
)

// Numeric policy for cotangent assembly.
const (
	// degenerateCross is the |u×v| floor below which an angle contributes
	// weight 0 instead of an unbounded cotangent.
	degenerateCross = 1e-10

	// cotClamp bounds every cotangent; very obtuse angles otherwise leak
	// huge weights into the operator.
	cotClamp = 100.0
)

// Builder assembles the cotangent Laplacian and lumped mass vector from a
// tessellation of the evaluator's surface, caching results per
// tessellation level until ClearCache (call it when the source geometry
// changes).
type Builder struct {
	ev    core.Evaluator
	cache map[int]*built
}

// built is one cached assembly.
type built struct {
	l    *Sparse
	mass []float64
	mesh *core.Mesh
}

// NewBuilder returns a Builder over the given evaluator.
func NewBuilder(ev core.Evaluator) (*Builder, error) {
	if ev == nil {
		return nil, core.ErrNilEvaluator
	}

	return &Builder{ev: ev, cache: make(map[int]*built)}, nil
}

// Build returns the Laplacian L (N×N, N = tessellated vertex count) and
// the diagonal mass vector for the given tessellation level, assembling
// them on first use and caching per level afterwards.
//
// Errors: ErrBadLevel, the evaluator's tessellation failure, or
// core.ErrBadMesh for a malformed tessellation.
func (b *Builder) Build(level int) (*Sparse, []float64, error) {
	bt, err := b.buildCached(level)
	if err != nil {
		return nil, nil, err
	}

	return bt.l, bt.mass, nil
}

// Mesh returns the (cached) tessellation backing the operator at a level.
// The spectral decomposer walks it for nodal-domain connectivity.
func (b *Builder) Mesh(level int) (*core.Mesh, error) {
	bt, err := b.buildCached(level)
	if err != nil {
		return nil, err
	}

	return bt.mesh, nil
}

// ClearCache drops all cached matrices and meshes; call after the source
// geometry changes.
func (b *Builder) ClearCache() { b.cache = make(map[int]*built) }

func (b *Builder) buildCached(level int) (*built, error) {
	if level < 0 {
		return nil, ErrBadLevel
	}
	if bt, ok := b.cache[level]; ok {
		return bt, nil
	}

	mesh, err := b.ev.Tessellate(level)
	if err != nil {
		return nil, fmt.Errorf("laplacian: tessellate level %d: %w", level, err)
	}
	if err = mesh.Validate(); err != nil {
		return nil, err
	}

	l, err := assembleCotangent(mesh)
	if err != nil {
		return nil, err
	}
	bt := &built{l: l, mass: assembleMass(mesh), mesh: mesh}
	b.cache[level] = bt

	return bt, nil
}

// assembleCotangent builds L: per undirected edge, weight = sum of the
// cotangents of the two opposite angles ÷ 2 (boundary edges contribute
// one); off-diagonals get +weight, diagonals the negated row sum so that
// L·𝟙 = 0 holds by construction.
func assembleCotangent(mesh *core.Mesh) (*Sparse, error) {
	n := mesh.VertexCount()
	sb, err := NewSparseBuilder(n)
	if err != nil {
		return nil, err
	}

	// Accumulate per-edge cotangent sums keyed by canonical (min,max).
	edgeCot := make(map[[2]int]float64, 3*len(mesh.Triangles))
	for _, tri := range mesh.Triangles {
		i, j, k := tri[0], tri[1], tri[2]
		// Each edge against its opposite vertex.
		corners := [3][3]int{{i, j, k}, {j, k, i}, {k, i, j}}
		for _, c := range corners {
			v0, v1, opp := c[0], c[1], c[2]
			key := [2]int{v0, v1}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			edgeCot[key] += cotangent(mesh.Vertices[v0], mesh.Vertices[v1], mesh.Vertices[opp])
		}
	}

	for key, cotSum := range edgeCot {
		w := cotSum / 2
		i, j := key[0], key[1]
		_ = sb.Add(i, j, w)
		_ = sb.Add(j, i, w)
		// Diagonal: L[i,i] = −Σ_j L[i,j].
		_ = sb.Add(i, i, -w)
		_ = sb.Add(j, j, -w)
	}

	return sb.Build(), nil
}

// cotangent computes cot of the angle at opp in triangle (v0, v1, opp):
// cot θ = (u·v)/|u×v| with u, v from opp to the edge endpoints. Degenerate
// angles (|u×v| < 1e-10) contribute 0; the result is clamped to
// [−100, 100]. This policy absorbs numerical degeneracy locally — the
// operator stays valid, never an error.
func cotangent(v0, v1, opp r3.Vec) float64 {
	u := r3.Sub(v0, opp)
	v := r3.Sub(v1, opp)

	crossMag := r3.Norm(r3.Cross(u, v))
	if crossMag < degenerateCross {
		return 0
	}

	cot := r3.Dot(u, v) / crossMag
	if cot > cotClamp {
		return cotClamp
	}
	if cot < -cotClamp {
		return -cotClamp
	}

	return cot
}

// assembleMass lumps ⅓ of every triangle's area onto each of its vertices
// (barycentric lumping).
func assembleMass(mesh *core.Mesh) []float64 {
	mass := make([]float64, mesh.VertexCount())
	for _, tri := range mesh.Triangles {
		v0 := mesh.Vertices[tri[0]]
		e1 := r3.Sub(mesh.Vertices[tri[1]], v0)
		e2 := r3.Sub(mesh.Vertices[tri[2]], v0)
		area := 0.5 * r3.Norm(r3.Cross(e1, e2))
		third := area / 3
		mass[tri[0]] += third
		mass[tri[1]] += third
		mass[tri[2]] += third
	}

	return mass
}
