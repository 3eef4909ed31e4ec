package differential

import (
	"context"
	"fmt"

	"github.com/tkarvinen/surflens/core"
	"github.com/tkarvinen/surflens/curvature"
	"github.com/tkarvinen/surflens/lens"
	"github.com/tkarvinen/surflens/region"
)

// Lens discovers regions through the differential-geometry lens:
// curvature coherence on the exact surface.
type Lens struct {
	ev   core.Evaluator
	opts Options

	// field caches the last sampled curvature statistics for callers that
	// visualize the field; valid for one lens instance only.
	field curvature.Field
}

// New builds a differential lens over the given evaluator.
// Returns core.ErrNilEvaluator or ErrOptionViolation.
func New(ev core.Evaluator, opts ...Option) (*Lens, error) {
	if ev == nil {
		return nil, core.ErrNilEvaluator
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.DetectRidges && o.DetectValleys && o.ValleyPercentile > o.RidgePercentile {
		return nil, fmt.Errorf("%w: ValleyPercentile %g above RidgePercentile %g",
			ErrOptionViolation, o.ValleyPercentile, o.RidgePercentile)
	}

	return &Lens{ev: ev, opts: o}, nil
}

// Type implements lens.Lens.
func (l *Lens) Type() lens.Type { return lens.Differential }

// Analyze implements lens.Lens, reading the Differential request variant.
func (l *Lens) Analyze(ctx context.Context, req lens.Request) ([]*region.Region, error) {
	var pinned map[int]bool
	if req.Differential != nil && len(req.Differential.PinnedFaces) > 0 {
		pinned = make(map[int]bool, len(req.Differential.PinnedFaces))
		for _, f := range req.Differential.PinnedFaces {
			pinned[f] = true
		}
	}

	return l.DiscoverRegions(ctx, pinned)
}

// DiscoverRegions runs the full differential pipeline:
//
//  1. sample exact curvature over every non-pinned face
//  2. classify faces by curvature type
//  3. detect ridge/valley candidates
//  4. build the face adjacency graph from true surface topology
//  5. grow regions from curvature extremes
//  6. fold undersized regions into their closest-coherence neighbor
//
// Pinned faces are excluded from sampling and growth entirely; no pinned
// face ever appears in the output. The returned regions are pairwise
// face-disjoint and cover the full non-pinned face set.
func (l *Lens) DiscoverRegions(ctx context.Context, pinned map[int]bool) ([]*region.Region, error) {
	field, err := curvature.SampleFieldExcluding(l.ev, l.opts.SamplesPerFace, pinned)
	if err != nil {
		return nil, err
	}
	l.field = field

	classes := curvature.ClassifyField(field, l.opts.GaussianThreshold, l.opts.MeanThreshold)

	rv, err := l.detectFeatures(field)
	if err != nil {
		return nil, err
	}

	adjacency, err := core.BuildFaceAdjacency(l.ev)
	if err != nil {
		return nil, err
	}

	grownRegions, err := growRegions(ctx, field, classes, adjacency, rv, pinned, l.opts.CurvatureTolerance)
	if err != nil {
		return nil, err
	}

	if l.opts.MinRegionSize > 1 {
		grownRegions = mergeSmall(grownRegions, adjacency, field, l.opts.MinRegionSize)
	}

	return l.toRegions(grownRegions), nil
}

// CurvatureField exposes the statistics sampled by the last
// DiscoverRegions call, or nil before the first analysis. Intended for
// callers that visualize the field.
func (l *Lens) CurvatureField() curvature.Field { return l.field }

// detectFeatures runs ridge/valley detection honoring the toggles; a
// disabled side is passed as a negative percentile, which the detector
// treats as "off".
func (l *Lens) detectFeatures(field curvature.Field) (curvature.RidgeValley, error) {
	ridgePct, valleyPct := -1.0, -1.0
	if l.opts.DetectRidges {
		ridgePct = l.opts.RidgePercentile
	}
	if l.opts.DetectValleys {
		valleyPct = l.opts.ValleyPercentile
	}
	if ridgePct < 0 && valleyPct < 0 {
		return curvature.RidgeValley{Ridges: map[int]bool{}, Valleys: map[int]bool{}}, nil
	}

	return curvature.DetectRidgeValley(field, ridgePct, valleyPct)
}

// toRegions converts grown regions into the shared region model with
// human-readable unity principles.
func (l *Lens) toRegions(grownRegions []grown) []*region.Region {
	regions := make([]*region.Region, 0, len(grownRegions))
	for _, g := range grownRegions {
		feature := ""
		switch {
		case g.isRidge:
			feature = " [ridge]"
		case g.isValley:
			feature = " [valley]"
		}

		regions = append(regions, &region.Region{
			ID:             region.NewID("diff"),
			Faces:          g.faces,
			UnityPrinciple: fmt.Sprintf("Curvature coherence: %s%s", g.class.Describe(), feature),
			UnityStrength:  g.coherence,
			Metadata: map[string]any{
				"lens":           string(lens.Differential),
				"curvature_type": g.class.String(),
				"is_ridge":       g.isRidge,
				"is_valley":      g.isValley,
				"face_count":     len(g.faces),
			},
			ConstraintsPassed: true,
		})
	}

	return regions
}
