package pinwheel

import "errors"

var (
	// ErrInvalidScalar is returned for animation scalars that are negative,
	// NaN, infinite, or too large to hold a count.
	ErrInvalidScalar = errors.New("pinwheel: invalid animation scalar")

	// ErrInvalidCount is returned for negative element counts.
	ErrInvalidCount = errors.New("pinwheel: invalid element count")

	// ErrInvalidDimension is returned for negative or non-finite sizes.
	ErrInvalidDimension = errors.New("pinwheel: invalid dimension")
)
