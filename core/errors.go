package core

import "errors"

// Taxonomy roots. Every sentinel in surflens that belongs to one of these
// classes wraps the root, so errors.Is(err, core.ErrConfiguration) matches
// regardless of which package raised it.
var (
	// ErrConfiguration marks caller misuse that must surface immediately:
	// uninitialized evaluators, unregistered lenses, invalid options.
	ErrConfiguration = errors.New("core: configuration error")

	// ErrConvergence marks an iterative solver exhausting its budget.
	// It is a recoverable failure of one analysis call, not a crash.
	ErrConvergence = errors.New("core: convergence failure")
)

// Sentinel errors for evaluator and mesh handling.
var (
	// ErrNilEvaluator is returned when a nil Evaluator is supplied.
	ErrNilEvaluator = wrapConfig("core: evaluator is nil")

	// ErrNoFaces is returned when the evaluator reports zero faces.
	ErrNoFaces = wrapConfig("core: evaluator has no faces")

	// ErrBadMesh is returned when a tessellation violates its own shape
	// (triangle indices out of range, parent list length mismatch, ...).
	ErrBadMesh = wrapConfig("core: malformed tessellation mesh")

	// ErrAdjacency is returned when the evaluator's face-adjacency query
	// fails or reports a neighbor outside [0, FaceCount).
	ErrAdjacency = wrapConfig("core: face adjacency query failed")
)

// wrapConfig builds a sentinel that is both its own identity and a member
// of the ErrConfiguration class.
func wrapConfig(msg string) error {
	return &classError{msg: msg, class: ErrConfiguration}
}

// WrapConvergence builds a sentinel belonging to the ErrConvergence class.
// Exported for sibling packages defining their own solver sentinels.
func WrapConvergence(msg string) error {
	return &classError{msg: msg, class: ErrConvergence}
}

// WrapConfiguration builds a sentinel belonging to the ErrConfiguration
// class. Exported for sibling packages defining their own sentinels.
func WrapConfiguration(msg string) error {
	return &classError{msg: msg, class: ErrConfiguration}
}

// classError is a sentinel with a taxonomy class; errors.Is matches both
// the sentinel itself (by identity) and its class (via Unwrap).
type classError struct {
	msg   string
	class error
}

func (e *classError) Error() string { return e.msg }

func (e *classError) Unwrap() error { return e.class }
