package spectral

import (
	"context"

	"github.com/tkarvinen/surflens/core"
	"github.com/tkarvinen/surflens/lens"
	"github.com/tkarvinen/surflens/region"
)

// defaultModeIndices are the first non-trivial modes — mode 0 is the
// constant function and carries no nodal structure.
var defaultModeIndices = []int{1, 2, 3}

// Lens discovers regions through the spectral lens: nodal domains of
// Laplace–Beltrami eigenfunctions.
type Lens struct {
	dec *Decomposer
}

// New builds a spectral lens over the given evaluator.
// Returns core.ErrNilEvaluator or ErrOptionViolation.
func New(ev core.Evaluator, opts ...Option) (*Lens, error) {
	dec, err := NewDecomposer(ev, opts...)
	if err != nil {
		return nil, err
	}

	return &Lens{dec: dec}, nil
}

// Type implements lens.Lens.
func (l *Lens) Type() lens.Type { return lens.Spectral }

// Analyze implements lens.Lens, reading the Spectral request variant.
// Zero-valued request fields fall back to the defaults (10 modes, modes
// 1–3, tessellation level 3).
func (l *Lens) Analyze(ctx context.Context, req lens.Request) ([]*region.Region, error) {
	numModes := DefaultNumModes
	level := DefaultTessellationLevel
	modeIndices := defaultModeIndices
	if r := req.Spectral; r != nil {
		if r.NumModes > 0 {
			numModes = r.NumModes
		}
		if r.TessellationLevel > 0 {
			level = r.TessellationLevel
		}
		if r.ModeIndices != nil {
			modeIndices = r.ModeIndices
		}
	}

	return l.AnalyzeModes(ctx, numModes, modeIndices, level)
}

// AnalyzeModes computes numModes eigenmodes, extracts nodal domains for
// each requested mode index (silently stopping at indices beyond the
// computed count), and broadcasts ONE resonance score — computed over the
// combined region set — onto every region regardless of source mode.
func (l *Lens) AnalyzeModes(ctx context.Context, numModes int, modeIndices []int, tessellationLevel int) ([]*region.Region, error) {
	if _, err := l.dec.ComputeEigenModes(ctx, numModes, tessellationLevel); err != nil {
		return nil, err
	}

	var all []*region.Region
	for _, idx := range modeIndices {
		if idx >= len(l.dec.Modes()) {
			break // requested more modes than were computed
		}
		regions, err := l.dec.ExtractNodalDomains(idx, false)
		if err != nil {
			return nil, err
		}
		all = append(all, regions...)
	}

	score := l.dec.ResonanceScore(all)
	for _, r := range all {
		r.UnityStrength = score
	}

	return all, nil
}

// Mode returns one computed eigenmode.
// Errors: ErrModesNotComputed before the first analysis, ErrModeOutOfRange.
func (l *Lens) Mode(index int) (EigenMode, error) {
	modes := l.dec.Modes()
	if modes == nil {
		return EigenMode{}, ErrModesNotComputed
	}
	if index < 0 || index >= len(modes) {
		return EigenMode{}, ErrModeOutOfRange
	}

	return modes[index], nil
}

// Decomposer exposes the underlying decomposer for callers that need
// direct access to modes, nodal extraction, or cache control.
func (l *Lens) Decomposer() *Decomposer { return l.dec }
