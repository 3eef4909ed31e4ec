package spectral

import "github.com/tkarvinen/surflens/core"

// Sentinel errors for spectral analysis.
var (
	// ErrNotConverged is returned when the Jacobi eigensolver exhausts
	// its sweep budget. Matches core.ErrConvergence via errors.Is.
	ErrNotConverged = core.WrapConvergence("spectral: eigensolver exhausted its iteration budget")

	// ErrConstantMode is returned when nodal-domain extraction is asked
	// for mode 0 — the constant eigenfunction has no sign structure.
	ErrConstantMode = core.WrapConfiguration("spectral: mode 0 is the constant function, has no nodal domains")

	// ErrModesNotComputed is returned when extraction or mode access runs
	// before ComputeEigenModes.
	ErrModesNotComputed = core.WrapConfiguration("spectral: eigenmodes not computed yet")

	// ErrModeOutOfRange is returned for a mode index outside the computed set.
	ErrModeOutOfRange = core.WrapConfiguration("spectral: mode index outside computed modes")

	// ErrBadModeCount is returned when the requested number of modes is
	// < 1 or exceeds the operator dimension.
	ErrBadModeCount = core.WrapConfiguration("spectral: mode count outside [1, vertex count]")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = core.WrapConfiguration("spectral: invalid option supplied")
)
