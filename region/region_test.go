package region

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewID_PrefixAndLength(t *testing.T) {
	id := NewID("diff")
	require.True(t, strings.HasPrefix(id, "diff_"))
	require.Len(t, id, len("diff_")+8)
	require.NotEqual(t, id, NewID("diff"))
}

func TestRegion_ContainsFace(t *testing.T) {
	r := &Region{ID: "r1", Faces: []int{2, 5, 9}}
	require.True(t, r.ContainsFace(5))
	require.False(t, r.ContainsFace(4))
	require.Equal(t, 3, r.FaceCount())
}

func TestMerge_UnionAndFlags(t *testing.T) {
	a := &Region{
		ID:                "a",
		Faces:             []int{1, 2, 3},
		UnityPrinciple:    "flat",
		UnityStrength:     0.9,
		Pinned:            true,
		Metadata:          map[string]any{"lens": "differential", "shared": "a"},
		ConstraintsPassed: true,
	}
	b := &Region{
		ID:                "b",
		Faces:             []int{3, 4},
		UnityPrinciple:    "flat",
		UnityStrength:     0.4,
		Metadata:          map[string]any{"shared": "b"},
		ConstraintsPassed: true,
	}

	m := a.Merge(b)

	require.Equal(t, []int{1, 2, 3, 4}, m.Faces)
	require.True(t, m.Pinned, "pinned must survive a merge")
	require.True(t, m.Modified)
	require.True(t, m.ConstraintsPassed)
	require.Equal(t, "flat", m.UnityPrinciple)
	require.Equal(t, "b", m.Metadata["shared"], "right operand wins metadata conflicts")
	require.Equal(t, "differential", m.Metadata["lens"])

	// Face-count-weighted mean over the operands' raw sizes.
	require.InDelta(t, (0.9*3+0.4*2)/5, m.UnityStrength, 1e-12)

	// Operands untouched.
	require.Equal(t, []int{1, 2, 3}, a.Faces)
	require.Equal(t, 0.4, b.UnityStrength)
}

func TestMerge_DifferentPrinciples(t *testing.T) {
	a := &Region{Faces: []int{0}, UnityPrinciple: "bowl"}
	b := &Region{Faces: []int{1}, UnityPrinciple: "saddle"}
	m := a.Merge(b)
	require.Equal(t, "merged: bowl + saddle", m.UnityPrinciple)
}

func TestMergeRegions_RequiresTwo(t *testing.T) {
	_, err := MergeRegions(nil)
	require.ErrorIs(t, err, ErrTooFewRegions)

	_, err = MergeRegions([]*Region{{Faces: []int{0}}})
	require.ErrorIs(t, err, ErrTooFewRegions)

	m, err := MergeRegions([]*Region{
		{Faces: []int{0}, ConstraintsPassed: true},
		{Faces: []int{1}, ConstraintsPassed: true},
		{Faces: []int{2}, ConstraintsPassed: true},
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, m.Faces)
}

func TestRegion_JSONRoundTrip(t *testing.T) {
	length := 2.5
	r := &Region{
		ID:             "diff_deadbeef",
		Faces:          []int{0, 1},
		UnityPrinciple: "Curvature coherence: flat",
		UnityStrength:  0.75,
		Boundary: []Curve{{
			Points:          []Point{{FaceID: 0, U: 0.1, V: 0.1}, {FaceID: 0, U: 0.9, V: 0.1}},
			Closed:          false,
			LengthParameter: &length,
		}},
		Metadata:          map[string]any{"lens": "differential"},
		ConstraintsPassed: true,
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	require.Contains(t, string(data), `"unity_strength":0.75`)

	var back Region
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, r.ID, back.ID)
	require.Equal(t, r.Faces, back.Faces)
	require.Equal(t, r.UnityStrength, back.UnityStrength)
	require.NotNil(t, back.Boundary[0].LengthParameter)
	require.Equal(t, length, *back.Boundary[0].LengthParameter)
	require.Nil(t, back.Boundary[0].CurvatureIntegral)
}
