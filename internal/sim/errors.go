package sim

import "errors"

// Sentinel errors for grid construction and perturbation arguments. Both are
// caller bugs to fix, not conditions to recover from at runtime.
var (
	// ErrDimensionTooSmall reports a construction dimension below MinDimension.
	ErrDimensionTooSmall = errors.New("sim: grid dimension must be at least 5")
	// ErrSplashWidth reports a splash block width outside [1, dimension/2].
	ErrSplashWidth = errors.New("sim: splash width outside [1, dimension/2]")
)
