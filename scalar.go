package pinwheel

import (
	"fmt"
	"math"
)

// Scalar is the single animated value behind a radial shape. Its integer part
// is the number of fully settled elements and its fractional part is the
// progress of the element currently being born (growing) or removed
// (shrinking). Fraction is always in [0, 1).
//
// Construct one with NewScalar or ScalarFromCount; a zero Scalar is an empty
// shape.
type Scalar struct {
	BaseCount uint32
	Fraction  float64
}

// NewScalar decomposes v into a Scalar. Negative, NaN, infinite, and
// out-of-range values are rejected with ErrInvalidScalar.
func NewScalar(v float64) (Scalar, error) {
	if !finite(v) || v < 0 {
		return Scalar{}, fmt.Errorf("%w: %v", ErrInvalidScalar, v)
	}
	base := math.Floor(v)
	if base > math.MaxUint32 {
		return Scalar{}, fmt.Errorf("%w: %v exceeds max count", ErrInvalidScalar, v)
	}
	return Scalar{BaseCount: uint32(base), Fraction: v - base}, nil
}

// ScalarFromCount returns the settled scalar for n elements.
func ScalarFromCount(n int) (Scalar, error) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return Scalar{}, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	return Scalar{BaseCount: uint32(n)}, nil
}

// validate rejects scalars assembled by hand whose fraction lies outside
// [0, 1).
func (s Scalar) validate() error {
	if !finite(s.Fraction) || s.Fraction < 0 || s.Fraction >= 1 {
		return fmt.Errorf("%w: fraction %v", ErrInvalidScalar, s.Fraction)
	}
	return nil
}

// Value returns the scalar as a single real number (BaseCount + Fraction).
func (s Scalar) Value() float64 {
	return float64(s.BaseCount) + s.Fraction
}

// Decompose returns the settled count, the in-between fraction, and the
// number of elements to render this frame. effectiveCount exceeds baseCount
// by one while an element is mid-transition.
func (s Scalar) Decompose() (baseCount int, fraction float64, effectiveCount int) {
	return int(s.BaseCount), s.Fraction, s.EffectiveCount()
}

// EffectiveCount returns the number of slots rendered for this scalar.
func (s Scalar) EffectiveCount() int {
	if s.Fraction == 0 {
		return int(s.BaseCount)
	}
	return int(s.BaseCount) + 1
}

// Growing reports whether an extra slot is mid-transition.
func (s Scalar) Growing() bool {
	return s.Fraction > 0
}

// Progress returns the fraction to feed into AngleWithProgress and
// BounceScale. A settled scalar reports 1 so that the boundary frame equals
// the fully settled layout of EffectiveCount elements.
func (s Scalar) Progress() float64 {
	if s.Fraction == 0 {
		return 1
	}
	return s.Fraction
}

func (s Scalar) String() string {
	return fmt.Sprintf("%d+%.4f", s.BaseCount, s.Fraction)
}
