package reactive

import "errors"

// MinPoolSize is the smallest pool for which adaptation is meaningful.
const MinPoolSize = 2

// Sentinel errors returned by the reactive package.
var (
	// ErrPoolTooSmall indicates a pool with fewer than MinPoolSize values.
	ErrPoolTooSmall = errors.New("reactive: alpha pool needs at least 2 values")

	// ErrAlphaOutOfRange indicates an α outside [0, 1].
	ErrAlphaOutOfRange = errors.New("reactive: alpha must lie in [0, 1]")

	// ErrDuplicateAlpha indicates the same α value listed twice.
	ErrDuplicateAlpha = errors.New("reactive: duplicate alpha value")
)
