package lens

import (
	"context"
	"time"

	"github.com/tkarvinen/surflens/region"
)

// Type identifies a mathematical lens.
type Type string

// Known lens types. Flow, Morse, and Thermal are reserved names for
// lenses the registry accepts but this module does not ship.
const (
	Differential Type = "differential" // curvature-coherence lens
	Spectral     Type = "spectral"     // Laplace–Beltrami eigenfunction lens
	Flow         Type = "flow"
	Morse        Type = "morse"
	Thermal      Type = "thermal"
)

// Request carries lens-specific parameters as a tagged variant: exactly
// the field matching the dispatched lens type is consulted; a nil variant
// means that lens's defaults. This replaces per-lens call signatures with
// one polymorphic entry point.
type Request struct {
	Differential *DifferentialRequest
	Spectral     *SpectralRequest
}

// DifferentialRequest parameterizes a differential-lens analysis.
type DifferentialRequest struct {
	// PinnedFaces are excluded entirely from sampling and growth.
	PinnedFaces []int
}

// SpectralRequest parameterizes a spectral-lens analysis.
type SpectralRequest struct {
	// NumModes is how many eigenmodes to compute (0 means the default).
	NumModes int

	// ModeIndices picks which modes contribute nodal domains
	// (nil means modes 1, 2, 3).
	ModeIndices []int

	// TessellationLevel picks the connectivity sampling density
	// (0 means the default).
	TessellationLevel int
}

// Lens is the polymorphic interface every mathematical lens implements.
type Lens interface {
	// Type reports which lens this is; the manager keys its registry and
	// cache by it.
	Type() Type

	// Analyze runs the lens's full pipeline and returns the discovered
	// regions. Implementations read only their own Request variant.
	Analyze(ctx context.Context, req Request) ([]*region.Region, error)
}

// Result is one cached analysis outcome, owned and invalidated by the
// Manager's cache.
type Result struct {
	// LensType identifies the producing lens.
	LensType Type

	// Regions as returned by the lens; callers receive this exact slice
	// on cache hits.
	Regions []*region.Region

	// ResonanceScore ∈ [0,1]: mean unity strength over Regions (0.5 when
	// regions exist but none carries a strength, 0 when empty).
	ResonanceScore float64

	// ComputationTime is the wall-clock duration of the analysis call.
	ComputationTime time.Duration

	// Metadata carries dispatch details (region count, request variant).
	Metadata map[string]any
}
