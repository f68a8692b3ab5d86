package pinwheel

import "math"

// Bounce envelope breakpoints for the newest blade.
const (
	// GrowEnd is the fraction at which the newest blade reaches full size.
	GrowEnd = 0.4
	// BounceEnd is the fraction at which the overshoot has settled back to 1.
	BounceEnd = 0.8
	// Overshoot is the peak scale reached halfway through the bounce.
	Overshoot = 1.2
)

// BounceScale returns the size multiplier of slot. Only the last slot, the
// one being born, is scaled: it grows linearly to full size by GrowEnd,
// swells to Overshoot and back along half a sine wave by BounceEnd, then
// holds at 1. The envelope is continuous at both breakpoints.
func BounceScale(slot, effective int, fraction float64) float64 {
	if slot != effective-1 {
		return 1
	}
	switch {
	case fraction <= GrowEnd:
		return clamp01(fraction / GrowEnd)
	case fraction <= BounceEnd:
		t := (fraction - GrowEnd) / (BounceEnd - GrowEnd)
		return 1 + (Overshoot-1)*math.Sin(t*math.Pi)
	default:
		return 1
	}
}
