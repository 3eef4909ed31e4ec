package region

// Point is one sample of a parametric curve: a (u,v) coordinate inside a
// specific control face.
type Point struct {
	FaceID int     `json:"face_id"`
	U      float64 `json:"u"`
	V      float64 `json:"v"`
}

// Curve is an ordered polyline in (face, u, v) parameter space, typically
// a region boundary. A closed curve's final segment wraps back to its
// first point.
type Curve struct {
	// Points in traversal order.
	Points []Point `json:"points"`

	// Closed marks a loop; Evaluate wraps the last segment to Points[0].
	Closed bool `json:"is_closed"`

	// LengthParameter is the accumulated arc length, when known.
	LengthParameter *float64 `json:"length_parameter,omitempty"`

	// CurvatureIntegral is the integrated curvature along the curve, when known.
	CurvatureIntegral *float64 `json:"curvature_integral,omitempty"`
}

// segmentCount reports the number of linear segments of the polyline.
func (c *Curve) segmentCount() int {
	n := len(c.Points)
	switch {
	case n < 2:
		return 0
	case c.Closed:
		return n
	default:
		return n - 1
	}
}

// Evaluate interpolates the curve at t ∈ [0,1] piecewise-linearly within
// the enclosing segment. The (u,v) interpolation inherits the face of the
// segment's start point; callers crossing face boundaries should sample
// both endpoints instead.
//
// Errors: ErrEmptyCurve for a curve with no points, ErrCurveRange for t
// outside [0,1]. A single-point curve returns that point for any valid t.
func (c *Curve) Evaluate(t float64) (Point, error) {
	if len(c.Points) == 0 {
		return Point{}, ErrEmptyCurve
	}
	if t < 0 || t > 1 {
		return Point{}, ErrCurveRange
	}
	segs := c.segmentCount()
	if segs == 0 {
		return c.Points[0], nil
	}

	// Locate the enclosing segment; t == 1 lands on the final one.
	scaled := t * float64(segs)
	idx := int(scaled)
	if idx == segs {
		idx = segs - 1
	}
	frac := scaled - float64(idx)

	a := c.Points[idx]
	b := c.Points[(idx+1)%len(c.Points)] // wrap only matters when Closed

	return Point{
		FaceID: a.FaceID,
		U:      a.U + (b.U-a.U)*frac,
		V:      a.V + (b.V-a.V)*frac,
	}, nil
}
