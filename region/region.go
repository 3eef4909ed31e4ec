package region

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Region is a collection of control faces that form one coherent piece of
// the surface according to some mathematical lens. Regions stay defined in
// parameter space so the exact surface remains authoritative downstream.
type Region struct {
	// ID uniquely names the region ("diff_1a2b3c4d", "spectral_mode2_pos_...").
	ID string `json:"id"`

	// Faces are control-face indices; a set (no duplicates, order irrelevant).
	Faces []int `json:"faces"`

	// Boundary curves enclosing the region in parameter space.
	Boundary []Curve `json:"boundary"`

	// UnityPrinciple describes, in human terms, why these faces belong together.
	UnityPrinciple string `json:"unity_principle"`

	// UnityStrength is the lens's resonance/coherence score in [0,1].
	UnityStrength float64 `json:"unity_strength"`

	// Pinned marks a region the caller has approved; pinned faces are
	// excluded from subsequent differential analysis.
	Pinned bool `json:"pinned"`

	// Metadata carries lens-specific annotations.
	Metadata map[string]any `json:"metadata,omitempty"`

	// Modified marks a region that was manually edited after discovery.
	Modified bool `json:"modified"`

	// ConstraintsPassed reports external constraint validation (not
	// performed here; defaults to true at creation).
	ConstraintsPassed bool `json:"constraints_passed"`
}

// NewID returns "<prefix>_<8 hex chars>" from a fresh random UUID.
func NewID(prefix string) string {
	u := uuid.New()

	return fmt.Sprintf("%s_%x", prefix, u[:4])
}

// FaceCount reports the number of faces in the region.
func (r *Region) FaceCount() int { return len(r.Faces) }

// ContainsFace reports whether the region covers face.
func (r *Region) ContainsFace(face int) bool {
	for _, f := range r.Faces {
		if f == face {
			return true
		}
	}

	return false
}

// Info returns a one-line human-readable digest of the region.
func (r *Region) Info() string {
	status := "unpinned"
	if r.Pinned {
		status = "pinned"
	}

	return fmt.Sprintf("Region %s: %d faces, %s, strength=%.2f, %s",
		r.ID, len(r.Faces), r.UnityPrinciple, r.UnityStrength, status)
}

// Merge returns a new region covering Faces = r ∪ other with no
// duplicates, Pinned = r.Pinned ∨ other.Pinned, Modified set, unity
// strength as the face-count-weighted mean, and metadata union (other
// wins on key conflicts). Neither operand is mutated.
func (r *Region) Merge(other *Region) *Region {
	faceSet := make(map[int]struct{}, len(r.Faces)+len(other.Faces))
	for _, f := range r.Faces {
		faceSet[f] = struct{}{}
	}
	for _, f := range other.Faces {
		faceSet[f] = struct{}{}
	}
	faces := make([]int, 0, len(faceSet))
	for f := range faceSet {
		faces = append(faces, f)
	}
	sort.Ints(faces)

	strength := 0.0
	if n := len(r.Faces) + len(other.Faces); n > 0 {
		strength = (r.UnityStrength*float64(len(r.Faces)) +
			other.UnityStrength*float64(len(other.Faces))) / float64(n)
	}

	principle := r.UnityPrinciple
	if other.UnityPrinciple != principle {
		principle = fmt.Sprintf("merged: %s + %s", r.UnityPrinciple, other.UnityPrinciple)
	}

	var meta map[string]any
	if len(r.Metadata)+len(other.Metadata) > 0 {
		meta = make(map[string]any, len(r.Metadata)+len(other.Metadata))
		for k, v := range r.Metadata {
			meta[k] = v
		}
		for k, v := range other.Metadata {
			meta[k] = v
		}
	}

	return &Region{
		ID:                NewID("merged"),
		Faces:             faces,
		Boundary:          nil, // boundary is recomputed by the caller's geometry layer
		UnityPrinciple:    principle,
		UnityStrength:     strength,
		Pinned:            r.Pinned || other.Pinned,
		Metadata:          meta,
		Modified:          true,
		ConstraintsPassed: r.ConstraintsPassed && other.ConstraintsPassed,
	}
}

// MergeRegions folds two or more regions into one, left to right.
// Returns ErrTooFewRegions for fewer than 2 inputs.
func MergeRegions(regions []*Region) (*Region, error) {
	if len(regions) < 2 {
		return nil, ErrTooFewRegions
	}
	merged := regions[0]
	for _, r := range regions[1:] {
		merged = merged.Merge(r)
	}

	return merged, nil
}
