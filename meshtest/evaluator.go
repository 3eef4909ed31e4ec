package meshtest

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tkarvinen/surflens/core"
)

// Sphere is an exact sphere presented through the 20 icosahedron control
// faces. Every curvature query returns the closed-form values
// κ₁ = κ₂ = 1/R regardless of (face, u, v).
type Sphere struct {
	// Radius of the sphere; zero or negative radii are rejected at query time.
	Radius float64
}

var _ core.Evaluator = (*Sphere)(nil)

// FaceCount reports the 20 icosahedron control faces.
func (s *Sphere) FaceCount() int { return len(icosaTriangles) }

// CurvatureAt returns the sphere's constant curvature at any point.
func (s *Sphere) CurvatureAt(face int, u, v float64) (core.CurvatureSample, error) {
	if s.Radius <= 0 {
		return core.CurvatureSample{}, fmt.Errorf("meshtest: sphere radius %v not positive", s.Radius)
	}
	if face < 0 || face >= s.FaceCount() {
		return core.CurvatureSample{}, fmt.Errorf("meshtest: face %d out of range [0,%d)", face, s.FaceCount())
	}
	k := 1 / s.Radius

	return core.CurvatureSample{
		Kappa1:   k,
		Kappa2:   k,
		Gaussian: k * k,
		Mean:     k,
		AbsMean:  k,
		RMS:      k,
	}, nil
}

// Tessellate returns the icosphere at the given level, scaled to Radius.
func (s *Sphere) Tessellate(level int) (*core.Mesh, error) {
	if level < 0 {
		return nil, fmt.Errorf("meshtest: tessellation level %d negative", level)
	}
	m := Icosphere(level)
	for i, v := range m.Vertices {
		m.Vertices[i] = r3.Scale(s.Radius, v)
	}

	return m, nil
}

// FaceNeighbors reports the three icosahedron faces sharing an edge.
func (s *Sphere) FaceNeighbors(face int) ([]int, error) {
	if face < 0 || face >= s.FaceCount() {
		return nil, fmt.Errorf("meshtest: face %d out of range [0,%d)", face, s.FaceCount())
	}

	return append([]int(nil), icosaFaceAdjacency()[face]...), nil
}

// Grid is a flat Rows×Cols patch of control faces whose per-face curvature
// the test dictates. Faces absent from Samples report zero curvature.
// Faces listed in Fail error on every curvature query, which exercises the
// degenerate-sample skip path.
type Grid struct {
	Rows, Cols int

	// Samples overrides the curvature reported for a face.
	Samples map[int]core.CurvatureSample

	// Fail marks faces whose curvature queries always error.
	Fail map[int]bool
}

var _ core.Evaluator = (*Grid)(nil)

// NewGrid returns a rows×cols flat grid with all-zero curvature.
func NewGrid(rows, cols int) *Grid {
	return &Grid{Rows: rows, Cols: cols, Samples: make(map[int]core.CurvatureSample)}
}

// SetFace fixes the curvature sample returned for one face.
func (g *Grid) SetFace(face int, sample core.CurvatureSample) *Grid {
	if g.Samples == nil {
		g.Samples = make(map[int]core.CurvatureSample)
	}
	g.Samples[face] = sample

	return g
}

// FailFace makes every curvature query on face return an error.
func (g *Grid) FailFace(face int) *Grid {
	if g.Fail == nil {
		g.Fail = make(map[int]bool)
	}
	g.Fail[face] = true

	return g
}

// FaceCount reports Rows*Cols control faces.
func (g *Grid) FaceCount() int { return g.Rows * g.Cols }

// CurvatureAt returns the configured per-face sample, ignoring (u,v).
func (g *Grid) CurvatureAt(face int, u, v float64) (core.CurvatureSample, error) {
	if face < 0 || face >= g.FaceCount() {
		return core.CurvatureSample{}, fmt.Errorf("meshtest: face %d out of range [0,%d)", face, g.FaceCount())
	}
	if g.Fail[face] {
		return core.CurvatureSample{}, fmt.Errorf("meshtest: face %d configured to fail", face)
	}

	return g.Samples[face], nil
}

// Tessellate triangulates the grid in the z=0 plane, two triangles per
// cell, with each triangle parented to its cell. Level is ignored; the
// grid has a single natural resolution.
func (g *Grid) Tessellate(level int) (*core.Mesh, error) {
	if level < 0 {
		return nil, fmt.Errorf("meshtest: tessellation level %d negative", level)
	}
	cols1 := g.Cols + 1
	vs := make([]r3.Vec, 0, (g.Rows+1)*cols1)
	normals := make([]r3.Vec, 0, (g.Rows+1)*cols1)
	for r := 0; r <= g.Rows; r++ {
		for c := 0; c <= g.Cols; c++ {
			vs = append(vs, r3.Vec{X: float64(c), Y: float64(r)})
			normals = append(normals, r3.Vec{Z: 1})
		}
	}
	tris := make([][3]int, 0, 2*g.FaceCount())
	parents := make([]int, 0, 2*g.FaceCount())
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			face := r*g.Cols + c
			v00 := r*cols1 + c
			v01 := v00 + 1
			v10 := v00 + cols1
			v11 := v10 + 1
			tris = append(tris, [3]int{v00, v01, v11}, [3]int{v00, v11, v10})
			parents = append(parents, face, face)
		}
	}

	return &core.Mesh{Vertices: vs, Normals: normals, Triangles: tris, FaceParents: parents}, nil
}

// FaceNeighbors reports the 4-neighborhood of a grid cell.
func (g *Grid) FaceNeighbors(face int) ([]int, error) {
	if face < 0 || face >= g.FaceCount() {
		return nil, fmt.Errorf("meshtest: face %d out of range [0,%d)", face, g.FaceCount())
	}
	r, c := face/g.Cols, face%g.Cols
	var nbrs []int
	if r > 0 {
		nbrs = append(nbrs, face-g.Cols)
	}
	if c > 0 {
		nbrs = append(nbrs, face-1)
	}
	if c < g.Cols-1 {
		nbrs = append(nbrs, face+1)
	}
	if r < g.Rows-1 {
		nbrs = append(nbrs, face+g.Cols)
	}
	sortInts(nbrs)

	return nbrs, nil
}
