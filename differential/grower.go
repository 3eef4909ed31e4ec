package differential

import (
	"context"
	"math"
	"sort"

	"github.com/tkarvinen/surflens/core"
	"github.com/tkarvinen/surflens/curvature"
)

// nearZeroSum guards the relative-difference denominators during growth.
const nearZeroSum = 1e-6

// grown is one region during the grow/merge phases, before it becomes a
// region.Region.
type grown struct {
	faces     []int
	class     curvature.Class
	coherence float64
	isRidge   bool
	isValley  bool
}

// growRegions seeds from unassigned faces in descending max|κ₁| order
// (ascending face index as tie-break) and breadth-first grows each region
// under the curvature compatibility predicate. Growth is exhaustive: the
// frontier keeps expanding until no compatible neighbor remains. Every
// non-pinned face ends in exactly one region; faces nothing grew over
// become singleton regions.
func growRegions(
	ctx context.Context,
	field curvature.Field,
	classes map[int]curvature.Class,
	adjacency core.FaceAdjacency,
	rv curvature.RidgeValley,
	pinned map[int]bool,
	tolerance float64,
) ([]grown, error) {
	assigned := make(map[int]bool, len(field)+len(pinned))
	for f := range pinned {
		assigned[f] = true
	}

	// Seed order: most distinctive curvature first, index as tie-break.
	type seed struct {
		face     int
		priority float64
	}
	seeds := make([]seed, 0, len(field))
	for face, s := range field {
		if pinned[face] {
			continue
		}
		seeds = append(seeds, seed{face: face, priority: s.MaxAbsKappa1})
	}
	sort.Slice(seeds, func(i, j int) bool {
		if seeds[i].priority != seeds[j].priority {
			return seeds[i].priority > seeds[j].priority
		}

		return seeds[i].face < seeds[j].face
	})

	var regions []grown
	for _, sd := range seeds {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if assigned[sd.face] {
			continue
		}

		faces := growFromSeed(sd.face, field, classes, adjacency, assigned, tolerance)
		regions = append(regions, grown{
			faces:     faces,
			class:     classes[sd.face],
			coherence: Coherence(faces, field),
			isRidge:   rv.Ridges[sd.face],
			isValley:  rv.Valleys[sd.face],
		})
	}

	// Safety net for faces no seed reached (cannot normally happen since
	// every face is its own candidate seed): singletons keep the
	// partition invariant airtight.
	leftovers := make([]int, 0)
	for face := range field {
		if !assigned[face] && !pinned[face] {
			leftovers = append(leftovers, face)
		}
	}
	sort.Ints(leftovers)
	for _, face := range leftovers {
		assigned[face] = true
		regions = append(regions, grown{
			faces:     []int{face},
			class:     classes[face],
			coherence: 1.0,
			isRidge:   rv.Ridges[face],
			isValley:  rv.Valleys[face],
		})
	}

	return regions, nil
}

// growFromSeed runs one BFS from seed, absorbing adjacent unassigned faces
// compatible with the SEED's statistics (not with the frontier face's).
func growFromSeed(
	seedFace int,
	field curvature.Field,
	classes map[int]curvature.Class,
	adjacency core.FaceAdjacency,
	assigned map[int]bool,
	tolerance float64,
) []int {
	seedClass := classes[seedFace]
	seedStats := field[seedFace]

	faces := []int{seedFace}
	queue := []int{seedFace}
	assigned[seedFace] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, nbr := range adjacency.Neighbors(current) {
			if assigned[nbr] {
				continue
			}
			stats, ok := field[nbr]
			if !ok {
				continue // pinned faces are absent from the field
			}
			if !compatible(seedStats, stats, seedClass, classes[nbr], tolerance) {
				continue
			}
			assigned[nbr] = true
			faces = append(faces, nbr)
			queue = append(queue, nbr)
		}
	}

	return faces
}

// compatible reports whether a neighbor may join the seed's region:
// identical shape class, and relative differences of |K| and |H| each
// within tolerance. Relative difference is |a−b|/(a+b); an axis whose sum
// is below 1e-6 auto-passes (both sides are flat on that axis).
func compatible(seed, nbr curvature.FaceStats, seedClass, nbrClass curvature.Class, tolerance float64) bool {
	if seedClass != nbrClass {
		return false
	}

	if !axisCompatible(math.Abs(seed.MeanK), math.Abs(nbr.MeanK), tolerance) {
		return false
	}

	return axisCompatible(math.Abs(seed.MeanH), math.Abs(nbr.MeanH), tolerance)
}

func axisCompatible(a, b, tolerance float64) bool {
	sum := a + b
	if sum < nearZeroSum {
		return true
	}

	return math.Abs(a-b)/sum <= tolerance
}
