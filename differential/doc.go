// Package differential implements the curvature-coherence lens: it grows
// regions of faces whose exact-surface curvature behaves the same way and
// scores how homogeneous each region turned out.
//
// What
//
//   - Lens.DiscoverRegions chains the full pipeline:
//     sample curvature field → classify faces → detect ridges/valleys →
//     build face adjacency → grow regions from curvature extremes →
//     fold undersized regions into their best-matching neighbor.
//   - Coherence scores a region's curvature homogeneity in [0,1] from the
//     coefficient of variation of |K| and |H| across its faces.
//
// Guarantees
//
//   - Partition invariant: every non-pinned face ends in exactly one
//     region; leftovers become singleton regions; regions are pairwise
//     face-disjoint and their union is the full non-pinned face set.
//   - No pinned face is ever sampled, grown over, or returned.
//   - Seeds are processed in descending max|κ₁| order with ascending face
//     index as the tie-break, so discovery is fully reproducible.
//
// Options
//
//   - DefaultOptions(): 3×3 sampling grid, 0.01 curvature thresholds,
//     0.3 growth tolerance, minimum region size 3 faces, ridge/valley
//     detection at the 90th/10th percentiles.
//   - With* options validate eagerly; violations surface as
//     ErrOptionViolation from New before any evaluator work runs.
//
// MinRegionSize counts FACES. The spectral lens's nodal-domain minimum
// counts VERTICES; the two units are intentionally not unified.
package differential
