package lens

import (
	"context"
	"fmt"
	"time"

	"github.com/tkarvinen/surflens/region"
)

// Manager is the single API boundary external callers speak to: a lens
// registry with per-lens-type result caching and comparison.
//
// Cache and registry assume single-threaded access; concurrent callers
// need external locking.
type Manager struct {
	lenses  map[Type]Lens
	results map[Type]*Result
	current Type
}

// NewManager returns an empty Manager; register lenses before analyzing.
func NewManager() *Manager {
	return &Manager{
		lenses:  make(map[Type]Lens),
		results: make(map[Type]*Result),
	}
}

// Register adds a lens under its own Type, replacing any previous
// registration of that type. Returns ErrNilLens for a nil lens.
func (m *Manager) Register(l Lens) error {
	if l == nil {
		return ErrNilLens
	}
	m.lenses[l.Type()] = l

	return nil
}

// RegisteredLenses lists the registered lens types.
func (m *Manager) RegisteredLenses() []Type {
	types := make([]Type, 0, len(m.lenses))
	for t := range m.lenses {
		types = append(types, t)
	}

	return types
}

// AnalyzeWithLens dispatches an analysis to the lens registered under
// lensType, times it, scores it, and caches the Result. A repeat call
// with forceRecompute false returns the cached region list unchanged.
//
// Errors: ErrLensNotRegistered for an unknown type (raised immediately,
// never an empty result), or the lens's own failure — including
// eigensolver non-convergence — propagated unmodified.
func (m *Manager) AnalyzeWithLens(ctx context.Context, lensType Type, req Request, forceRecompute bool) ([]*region.Region, error) {
	if !forceRecompute {
		if cached, ok := m.results[lensType]; ok {
			return cached.Regions, nil
		}
	}

	l, ok := m.lenses[lensType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLensNotRegistered, lensType)
	}

	start := time.Now()
	regions, err := l.Analyze(ctx, req)
	if err != nil {
		return nil, err // never substitute a default for a failed lens
	}
	elapsed := time.Since(start)

	m.results[lensType] = &Result{
		LensType:        lensType,
		Regions:         regions,
		ResonanceScore:  resonanceOf(regions),
		ComputationTime: elapsed,
		Metadata: map[string]any{
			"num_regions": len(regions),
		},
	}
	m.current = lensType

	return regions, nil
}

// resonanceOf derives the cached score from the regions' unity strengths:
// mean strength; 0.5 when regions exist but none carries a strength;
// 0 for an empty result.
func resonanceOf(regions []*region.Region) float64 {
	if len(regions) == 0 {
		return 0
	}
	sum, carried := 0.0, false
	for _, r := range regions {
		sum += r.UnityStrength
		if r.UnityStrength > 0 {
			carried = true
		}
	}
	if !carried {
		return 0.5
	}

	return sum / float64(len(regions))
}

// CompareLenses returns lens → mean unity strength over cached results.
// With no arguments every cached lens is included; otherwise only the
// named types. A lens absent from the output has not been analyzed yet —
// it never means a silent failure.
func (m *Manager) CompareLenses(lensTypes ...Type) map[Type]float64 {
	include := func(Type) bool { return true }
	if len(lensTypes) > 0 {
		wanted := make(map[Type]bool, len(lensTypes))
		for _, t := range lensTypes {
			wanted[t] = true
		}
		include = func(t Type) bool { return wanted[t] }
	}

	scores := make(map[Type]float64)
	for t, res := range m.results {
		if !include(t) || len(res.Regions) == 0 {
			continue
		}
		sum := 0.0
		for _, r := range res.Regions {
			sum += r.UnityStrength
		}
		scores[t] = sum / float64(len(res.Regions))
	}

	return scores
}

// BestLens returns the cached lens with the highest mean unity strength;
// ok is false when nothing has been analyzed.
func (m *Manager) BestLens() (Type, bool) {
	scores := m.CompareLenses()
	var best Type
	bestScore, found := 0.0, false
	for t, s := range scores {
		if !found || s > bestScore || (s == bestScore && t < best) {
			best, bestScore, found = t, s, true
		}
	}

	return best, found
}

// Result returns the cached result for a lens type.
// Errors: ErrNoResult when the lens has not been analyzed.
func (m *Manager) Result(lensType Type) (*Result, error) {
	res, ok := m.results[lensType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoResult, lensType)
	}

	return res, nil
}

// CurrentLens reports the most recently analyzed lens type; ok is false
// before the first analysis (or after ClearCache).
func (m *Manager) CurrentLens() (Type, bool) { return m.current, m.current != "" }

// ClearCache drops every cached analysis result (registrations stay).
// Call when the source geometry changes.
func (m *Manager) ClearCache() {
	m.results = make(map[Type]*Result)
	m.current = ""
}

// Summary is a JSON-compatible digest of everything cached.
type Summary struct {
	NumLensesAnalyzed int                    `json:"num_lenses_analyzed"`
	Lenses            map[string]LensSummary `json:"lenses"`
	BestLens          string                 `json:"best_lens,omitempty"`
	BestScore         float64                `json:"best_score,omitempty"`
}

// LensSummary digests one cached analysis.
type LensSummary struct {
	NumRegions             int            `json:"num_regions"`
	ResonanceScore         float64        `json:"resonance_score"`
	ComputationTimeSeconds float64        `json:"computation_time_seconds"`
	Metadata               map[string]any `json:"metadata,omitempty"`
}

// AnalysisSummary digests all cached analyses: per-lens counts, scores,
// timings, and the best lens so far.
func (m *Manager) AnalysisSummary() Summary {
	s := Summary{
		NumLensesAnalyzed: len(m.results),
		Lenses:            make(map[string]LensSummary, len(m.results)),
	}
	for t, res := range m.results {
		s.Lenses[string(t)] = LensSummary{
			NumRegions:             len(res.Regions),
			ResonanceScore:         res.ResonanceScore,
			ComputationTimeSeconds: res.ComputationTime.Seconds(),
			Metadata:               res.Metadata,
		}
	}
	if best, ok := m.BestLens(); ok {
		s.BestLens = string(best)
		s.BestScore = m.CompareLenses()[best]
	}

	return s
}
