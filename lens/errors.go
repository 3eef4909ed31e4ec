package lens

import "github.com/tkarvinen/surflens/core"

// Sentinel errors for lens dispatch.
var (
	// ErrLensNotRegistered is returned when analysis is requested for a
	// lens type nothing was registered under.
	ErrLensNotRegistered = core.WrapConfiguration("lens: lens type not registered")

	// ErrNilLens is returned when registering a nil lens.
	ErrNilLens = core.WrapConfiguration("lens: cannot register nil lens")

	// ErrNoResult is returned by Result for a lens never analyzed.
	ErrNoResult = core.WrapConfiguration("lens: no cached result for lens type")
)
