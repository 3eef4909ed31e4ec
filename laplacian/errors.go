package laplacian

import "github.com/tkarvinen/surflens/core"

// Sentinel errors for sparse matrix handling and operator construction.
var (
	// ErrInvalidDimensions indicates a requested size <= 0.
	ErrInvalidDimensions = core.WrapConfiguration("laplacian: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = core.WrapConfiguration("laplacian: index out of range")

	// ErrDimensionMismatch indicates an operand of incompatible length.
	ErrDimensionMismatch = core.WrapConfiguration("laplacian: dimension mismatch")

	// ErrBadLevel indicates a negative tessellation level.
	ErrBadLevel = core.WrapConfiguration("laplacian: tessellation level must be >= 0")
)
