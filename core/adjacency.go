package core

import (
	"fmt"
	"sort"
)

// FaceAdjacency maps a control face to its shared-edge neighbors, sorted
// ascending. It is always symmetric: j ∈ adj[i] ⇔ i ∈ adj[j].
type FaceAdjacency map[int][]int

// Neighbors returns the neighbor list of face, or nil if it has none.
func (a FaceAdjacency) Neighbors(face int) []int { return a[face] }

// BuildFaceAdjacency queries the evaluator for the shared-edge neighbors
// of every control face and assembles a symmetric adjacency graph.
//
// The neighbors must come from true control-surface topology; this is the
// contract an Evaluator implementation signs up to. Self-loops are dropped
// and the relation is symmetrized, so a one-sided answer from the
// evaluator still yields a consistent graph.
//
// Errors: ErrNilEvaluator, ErrNoFaces, or ErrAdjacency (wrapping the
// evaluator's own failure or an out-of-range neighbor index).
func BuildFaceAdjacency(ev Evaluator) (FaceAdjacency, error) {
	if ev == nil {
		return nil, ErrNilEvaluator
	}
	n := ev.FaceCount()
	if n <= 0 {
		return nil, ErrNoFaces
	}

	sets := make([]map[int]struct{}, n)
	for face := 0; face < n; face++ {
		nbrs, err := ev.FaceNeighbors(face)
		if err != nil {
			return nil, fmt.Errorf("%w: face %d: %v", ErrAdjacency, face, err)
		}
		for _, nb := range nbrs {
			if nb < 0 || nb >= n {
				return nil, fmt.Errorf("%w: face %d reports neighbor %d of %d", ErrAdjacency, face, nb, n)
			}
			if nb == face {
				continue // self-loop carries no region-growing information
			}
			if sets[face] == nil {
				sets[face] = make(map[int]struct{}, 4)
			}
			if sets[nb] == nil {
				sets[nb] = make(map[int]struct{}, 4)
			}
			sets[face][nb] = struct{}{}
			sets[nb][face] = struct{}{}
		}
	}

	adj := make(FaceAdjacency, n)
	for face, set := range sets {
		if len(set) == 0 {
			continue
		}
		nbrs := make([]int, 0, len(set))
		for nb := range set {
			nbrs = append(nbrs, nb)
		}
		sort.Ints(nbrs)
		adj[face] = nbrs
	}

	return adj, nil
}
