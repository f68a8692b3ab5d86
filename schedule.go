package pinwheel

import (
	"iter"
	"slices"
)

// Kind selects which element variant a schedule is computed for.
type Kind uint8

const (
	KindSpokes Kind = iota // plain line segments, never scaled
	KindBlades             // capsules, newest blade bounces in
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSpokes:
		return "spokes"
	case KindBlades:
		return "blades"
	default:
		return "unknown"
	}
}

// SlotState is the placement of one element for one frame.
type SlotState struct {
	Slot  int
	Angle float64 // degrees
	Scale float64
}

// Slots yields the placement of every slot rendered for s, in slot order.
// It keeps no state between calls: the same scalar always produces the same
// layout, whichever direction the animation is playing.
func Slots(s Scalar, kind Kind) iter.Seq[SlotState] {
	return func(yield func(SlotState) bool) {
		effective := s.EffectiveCount()
		progress := s.Progress()
		for slot := range effective {
			st := SlotState{
				Slot:  slot,
				Angle: AngleWithProgress(slot, effective, progress),
				Scale: 1,
			}
			if kind == KindBlades {
				st.Scale = BounceScale(slot, effective, progress)
			}
			if !yield(st) {
				return
			}
		}
	}
}

// Schedule collects Slots into a slice.
func Schedule(s Scalar, kind Kind) []SlotState {
	return slices.Collect(Slots(s, kind))
}
