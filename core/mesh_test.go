package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/spatial/r3"
)

func quadMesh() *Mesh {
	return &Mesh{
		Vertices: []r3.Vec{
			{}, {X: 1}, {X: 1, Y: 1}, {Y: 1},
		},
		Triangles:   [][3]int{{0, 1, 2}, {0, 2, 3}},
		FaceParents: []int{0, 0},
	}
}

func TestMeshValidate(t *testing.T) {
	require.NoError(t, quadMesh().Validate())

	var nilMesh *Mesh
	require.ErrorIs(t, nilMesh.Validate(), ErrBadMesh)
	require.ErrorIs(t, (&Mesh{}).Validate(), ErrBadMesh)

	m := quadMesh()
	m.Triangles[1][2] = 4
	require.ErrorIs(t, m.Validate(), ErrBadMesh)

	m = quadMesh()
	m.FaceParents = []int{0}
	require.ErrorIs(t, m.Validate(), ErrBadMesh)

	m = quadMesh()
	m.FaceParents[0] = -1
	require.ErrorIs(t, m.Validate(), ErrBadMesh)
}

func TestVertexAdjacency(t *testing.T) {
	adj := quadMesh().VertexAdjacency()
	require.Len(t, adj, 4)
	require.Equal(t, []int{1, 2, 3}, adj[0])
	require.Equal(t, []int{0, 2}, adj[1])
	require.Equal(t, []int{0, 1, 3}, adj[2])
	require.Equal(t, []int{0, 2}, adj[3])

	// Symmetry holds for every edge.
	for v, nbrs := range adj {
		for _, u := range nbrs {
			require.Contains(t, adj[u], v)
		}
	}
}

func TestErrorTaxonomy(t *testing.T) {
	require.ErrorIs(t, ErrNilEvaluator, ErrConfiguration)
	require.ErrorIs(t, ErrNoFaces, ErrConfiguration)
	require.ErrorIs(t, ErrBadMesh, ErrConfiguration)
	require.ErrorIs(t, ErrAdjacency, ErrConfiguration)
	require.NotErrorIs(t, ErrNilEvaluator, ErrConvergence)

	custom := WrapConvergence("pkg: solver gave up")
	require.ErrorIs(t, custom, ErrConvergence)
	require.Equal(t, "pkg: solver gave up", custom.Error())
}
