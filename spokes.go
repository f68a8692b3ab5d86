package pinwheel

import "fmt"

// Segment is a straight line from From to To.
type Segment struct {
	From, To Vec2
}

// RenderSpokes returns one segment per rendered slot, each running from
// pivot to a point radius away, rotated to the slot's angle. A scalar whose
// fraction is outside [0, 1) is rejected with ErrInvalidScalar.
func RenderSpokes(s Scalar, pivot Vec2, radius float64) ([]Segment, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if !finite(radius) || radius < 0 {
		return nil, fmt.Errorf("%w: spoke radius %v", ErrInvalidDimension, radius)
	}
	if !finite(pivot.X) || !finite(pivot.Y) {
		return nil, fmt.Errorf("%w: pivot %v", ErrInvalidDimension, pivot)
	}
	tip := Vec2{X: pivot.X, Y: pivot.Y - radius}
	segs := make([]Segment, 0, s.EffectiveCount())
	for st := range Slots(s, KindSpokes) {
		m := rotateAbout(Radians(st.Angle), pivot)
		segs = append(segs, Segment{From: pivot, To: transformPoint(m, tip)})
	}
	return segs, nil
}
