// Package meshtest provides synthetic geometry for tests: an icosphere
// tessellation with exact face-parent tracking, a constant-curvature
// sphere evaluator, and a configurable flat-grid evaluator whose per-face
// curvature (and per-face sampling failures) the test chooses.
//
// What: deterministic core.Evaluator implementations with analytically
// known curvature, so assertions can target closed-form values instead
// of tolerating an approximation budget.
//
// Why: the analysis packages only consume the Evaluator interface; tests
// should not depend on a CAD kernel to exercise them.
package meshtest
