package differential

import "github.com/tkarvinen/surflens/core"

// Sentinel errors for the differential lens.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = core.WrapConfiguration("differential: invalid option supplied")
)
