package differential

import (
	"math"

	"github.com/tkarvinen/surflens/core"
	"github.com/tkarvinen/surflens/curvature"
)

// mergeSmall folds every region below minSize faces into the adjacent
// surviving region whose coherence is closest to its own. A small region
// with no adjacent large region stays standalone. Coherence is recomputed
// for every surviving region after all merges are applied.
func mergeSmall(regions []grown, adjacency core.FaceAdjacency, field curvature.Field, minSize int) []grown {
	var small, large []grown
	for _, r := range regions {
		if len(r.faces) < minSize {
			small = append(small, r)
		} else {
			large = append(large, r)
		}
	}
	if len(small) == 0 {
		return regions
	}

	// face → index into large, maintained as merges land.
	faceToLarge := make(map[int]int, len(field))
	for idx, r := range large {
		for _, f := range r.faces {
			faceToLarge[f] = idx
		}
	}

	for _, sm := range small {
		// Candidate targets: large regions adjacent to any face of sm.
		candidates := make(map[int]bool)
		for _, f := range sm.faces {
			for _, nbr := range adjacency.Neighbors(f) {
				if idx, ok := faceToLarge[nbr]; ok {
					candidates[idx] = true
				}
			}
		}

		if len(candidates) == 0 {
			large = append(large, sm) // isolated small region survives as-is
			continue
		}

		best, bestDelta := -1, math.Inf(1)
		for idx := range candidates {
			delta := math.Abs(large[idx].coherence - sm.coherence)
			if delta < bestDelta || (delta == bestDelta && idx < best) {
				best, bestDelta = idx, delta
			}
		}
		large[best].faces = append(large[best].faces, sm.faces...)
		for _, f := range sm.faces {
			faceToLarge[f] = best
		}
	}

	for i := range large {
		large[i].coherence = Coherence(large[i].faces, field)
	}

	return large
}
