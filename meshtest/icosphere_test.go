package meshtest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestIcosahedron(t *testing.T) {
	m := Icosahedron()
	require.NoError(t, m.Validate())
	require.Equal(t, 12, m.VertexCount())
	require.Len(t, m.Triangles, 20)

	for i, v := range m.Vertices {
		require.InDelta(t, 1.0, r3.Norm(v), 1e-12, "vertex %d off the unit sphere", i)
	}
}

func TestIcosphere_CountsAndParents(t *testing.T) {
	for level := 0; level <= 3; level++ {
		m := Icosphere(level)
		require.NoError(t, m.Validate())

		scale := 1
		for s := 0; s < level; s++ {
			scale *= 4
		}
		require.Len(t, m.Triangles, 20*scale, "level %d", level)
		require.Equal(t, 10*scale+2, m.VertexCount(), "level %d", level)

		// Every vertex stays projected onto the unit sphere.
		for _, v := range m.Vertices {
			require.InDelta(t, 1.0, r3.Norm(v), 1e-12)
		}

		// Each original face owns exactly 4^level triangles.
		perParent := map[int]int{}
		for _, p := range m.FaceParents {
			perParent[p]++
		}
		require.Len(t, perParent, 20)
		for parent, count := range perParent {
			require.Equal(t, scale, count, "parent %d at level %d", parent, level)
		}
	}
}

func TestIcosphere_AreaApproachesSphere(t *testing.T) {
	total := func(level int) float64 {
		m := Icosphere(level)
		sum := 0.0
		for _, tri := range m.Triangles {
			e1 := r3.Sub(m.Vertices[tri[1]], m.Vertices[tri[0]])
			e2 := r3.Sub(m.Vertices[tri[2]], m.Vertices[tri[0]])
			sum += 0.5 * r3.Norm(r3.Cross(e1, e2))
		}

		return sum
	}

	sphere := 4 * math.Pi
	a0, a1, a2 := total(0), total(1), total(2)
	require.Less(t, a0, a1)
	require.Less(t, a1, a2)
	require.Less(t, a2, sphere)
	require.InDelta(t, sphere, a2, 0.3)
}

func TestIcosaFaceAdjacency(t *testing.T) {
	adj := icosaFaceAdjacency()
	require.Len(t, adj, 20)
	for f, nbrs := range adj {
		require.Len(t, nbrs, 3, "face %d", f)
		for _, nb := range nbrs {
			require.Contains(t, adj[nb], f, "adjacency must be symmetric")
		}
	}
}
