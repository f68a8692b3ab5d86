package pinwheel

import "math"

// SettledAngle returns the angle in degrees of slot when total elements are
// evenly distributed around the pivot. Slot 0 sits at 0° and each following
// slot steps back by 360/total, so the result is
// (total - slot) * 360/total taken modulo 360.
func SettledAngle(slot, total int) float64 {
	if total <= 0 {
		return 0
	}
	// Multiply before dividing so slot 0 lands on exactly 360 and wraps to 0.
	return math.Mod(float64(total-slot)*360/float64(total), 360)
}

// AngleWithProgress returns the angle in degrees of slot while effective
// elements are on screen and the newest one is fraction of the way in.
//
// Slot 0 is the anchor and never moves. The last slot sweeps from 0° to its
// settled angle. Every other slot slides linearly from its position in the
// effective-1 layout to its position in the effective layout.
func AngleWithProgress(slot, effective int, fraction float64) float64 {
	switch {
	case slot == 0:
		return 0
	case slot == effective-1:
		return SettledAngle(slot, effective) * fraction
	default:
		previous := SettledAngle(slot, effective-1)
		next := SettledAngle(slot, effective)
		return previous + (next-previous)*fraction
	}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
