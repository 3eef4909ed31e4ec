package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubEvaluator provides only the topology methods; curvature queries and
// tessellation are unused by adjacency assembly.
type stubEvaluator struct {
	faces     int
	neighbors map[int][]int
	fail      bool
}

func (s *stubEvaluator) FaceCount() int { return s.faces }

func (s *stubEvaluator) CurvatureAt(face int, u, v float64) (CurvatureSample, error) {
	return CurvatureSample{}, nil
}

func (s *stubEvaluator) Tessellate(level int) (*Mesh, error) { return nil, nil }

func (s *stubEvaluator) FaceNeighbors(face int) ([]int, error) {
	if s.fail {
		return nil, errors.New("stub: topology unavailable")
	}

	return s.neighbors[face], nil
}

func TestBuildFaceAdjacency(t *testing.T) {
	ev := &stubEvaluator{
		faces: 4,
		neighbors: map[int][]int{
			0: {1, 2},
			1: {0},
			2: {0, 3},
			3: {2},
		},
	}

	adj, err := BuildFaceAdjacency(ev)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, adj.Neighbors(0))
	require.Equal(t, []int{0}, adj.Neighbors(1))
	require.Equal(t, []int{0, 3}, adj.Neighbors(2))
	require.Equal(t, []int{2}, adj.Neighbors(3))
}

func TestBuildFaceAdjacency_SymmetrizesOneSidedAnswers(t *testing.T) {
	// Face 2 claims nobody, but 0 claims 2: the edge must exist both ways.
	ev := &stubEvaluator{
		faces: 3,
		neighbors: map[int][]int{
			0: {1, 2},
		},
	}

	adj, err := BuildFaceAdjacency(ev)
	require.NoError(t, err)
	require.Equal(t, []int{0}, adj.Neighbors(2))
	require.Equal(t, []int{0}, adj.Neighbors(1))
	require.Equal(t, []int{1, 2}, adj.Neighbors(0))
}

func TestBuildFaceAdjacency_DropsSelfLoops(t *testing.T) {
	ev := &stubEvaluator{
		faces:     2,
		neighbors: map[int][]int{0: {0, 1}},
	}

	adj, err := BuildFaceAdjacency(ev)
	require.NoError(t, err)
	require.Equal(t, []int{1}, adj.Neighbors(0))
}

func TestBuildFaceAdjacency_Errors(t *testing.T) {
	_, err := BuildFaceAdjacency(nil)
	require.ErrorIs(t, err, ErrNilEvaluator)

	_, err = BuildFaceAdjacency(&stubEvaluator{faces: 0})
	require.ErrorIs(t, err, ErrNoFaces)

	_, err = BuildFaceAdjacency(&stubEvaluator{faces: 2, fail: true})
	require.ErrorIs(t, err, ErrAdjacency)

	_, err = BuildFaceAdjacency(&stubEvaluator{
		faces:     2,
		neighbors: map[int][]int{0: {5}},
	})
	require.ErrorIs(t, err, ErrAdjacency)
}

func TestFaceAdjacency_NeighborsOfIsolatedFace(t *testing.T) {
	adj := FaceAdjacency{}
	require.Nil(t, adj.Neighbors(7))
}
