package core

// CurvatureSample is one pointwise curvature measurement on the exact
// surface, produced by the evaluator's curvature query. Ephemeral: the
// sampler aggregates many of these into per-face statistics and drops them.
type CurvatureSample struct {
	// Kappa1 and Kappa2 are the principal curvatures, |Kappa1| >= |Kappa2|.
	Kappa1 float64
	Kappa2 float64

	// Gaussian is K = κ₁·κ₂; its sign separates elliptic from hyperbolic.
	Gaussian float64

	// Mean is H = (κ₁+κ₂)/2; its sign is the local convexity direction.
	Mean float64

	// AbsMean is |H|, carried separately because the evaluator computes it
	// from the exact surface rather than from a possibly rounded Mean.
	AbsMean float64

	// RMS is sqrt((κ₁²+κ₂²)/2).
	RMS float64
}

// Evaluator is the capability surflens requires from the external
// exact-surface evaluator. Implementations own the surface; surflens only
// queries it. All methods must be safe to call repeatedly with the same
// arguments (analysis calls are idempotent and retryable).
type Evaluator interface {
	// FaceCount reports the number of control faces on the surface.
	FaceCount() int

	// CurvatureAt evaluates exact curvature at parametric point (u,v) of
	// the given control face. A non-nil error marks a degenerate sample;
	// the caller skips it rather than aborting the face.
	CurvatureAt(face int, u, v float64) (CurvatureSample, error)

	// Tessellate triangulates the surface at the given subdivision level.
	// The mesh is used for connectivity only — the exact surface stays
	// authoritative for all geometry queries.
	Tessellate(level int) (*Mesh, error)

	// FaceNeighbors reports the control faces sharing an edge with face,
	// from true control-surface topology.
	FaceNeighbors(face int) ([]int, error)
}
