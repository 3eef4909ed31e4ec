package core

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a triangulated sampling of the exact surface, produced by
// Evaluator.Tessellate. surflens reads it for connectivity and lumped
// areas; it never treats mesh positions as the authoritative geometry.
type Mesh struct {
	// Vertices are tessellated vertex positions.
	Vertices []r3.Vec

	// Normals are per-vertex surface normals (optional; may be empty).
	Normals []r3.Vec

	// Triangles index into Vertices, counter-clockwise.
	Triangles [][3]int

	// FaceParents maps each triangle to the control face it samples.
	FaceParents []int
}

// VertexCount reports the number of tessellated vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// Validate checks internal consistency: triangle indices in range, one
// parent per triangle, and parents non-negative. Returns ErrBadMesh with
// the first violation found.
func (m *Mesh) Validate() error {
	if m == nil || len(m.Vertices) == 0 {
		return fmt.Errorf("%w: empty vertex set", ErrBadMesh)
	}
	if len(m.FaceParents) != len(m.Triangles) {
		return fmt.Errorf("%w: %d triangles but %d face parents",
			ErrBadMesh, len(m.Triangles), len(m.FaceParents))
	}
	n := len(m.Vertices)
	for t, tri := range m.Triangles {
		for _, v := range tri {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: triangle %d references vertex %d of %d", ErrBadMesh, t, v, n)
			}
		}
		if m.FaceParents[t] < 0 {
			return fmt.Errorf("%w: triangle %d has negative parent face", ErrBadMesh, t)
		}
	}

	return nil
}

// VertexAdjacency builds the vertex→neighbor-vertices graph induced by the
// triangle edges. Each adjacency list is sorted ascending and free of
// duplicates, so traversals over it are reproducible.
//
// Complexity: O(T·log d) for T triangles with max vertex degree d.
func (m *Mesh) VertexAdjacency() [][]int {
	seen := make([]map[int]struct{}, len(m.Vertices))
	link := func(a, b int) {
		if seen[a] == nil {
			seen[a] = make(map[int]struct{}, 6)
		}
		seen[a][b] = struct{}{}
	}
	for _, tri := range m.Triangles {
		i, j, k := tri[0], tri[1], tri[2]
		link(i, j)
		link(j, i)
		link(j, k)
		link(k, j)
		link(k, i)
		link(i, k)
	}

	adj := make([][]int, len(m.Vertices))
	for v, set := range seen {
		if len(set) == 0 {
			continue
		}
		nbrs := make([]int, 0, len(set))
		for u := range set {
			nbrs = append(nbrs, u)
		}
		sort.Ints(nbrs)
		adj[v] = nbrs
	}

	return adj
}
