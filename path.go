package pinwheel

import "math"

// PathVerb identifies a path construction command.
type PathVerb uint8

const (
	VerbMoveTo PathVerb = iota // start a new contour at Point
	VerbLineTo                 // straight edge to Point
	VerbArc                    // circular arc described by Arc
	VerbClose                  // close the current contour
)

// String returns a human-readable name for the verb.
func (v PathVerb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbArc:
		return "Arc"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Arc is a circular arc. Angles are in radians, measured from +X toward +Y
// (clockwise on screen). A negative SweepAngle runs counter-clockwise.
type Arc struct {
	Center     Vec2
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// PointAt returns the point on the arc at angle theta.
func (a Arc) PointAt(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{X: a.Center.X + a.Radius*cos, Y: a.Center.Y + a.Radius*sin}
}

// Start returns the first point of the arc.
func (a Arc) Start() Vec2 { return a.PointAt(a.StartAngle) }

// End returns the last point of the arc.
func (a Arc) End() Vec2 { return a.PointAt(a.StartAngle + a.SweepAngle) }

// PathElement is one drawing command. Point is used by MoveTo and LineTo,
// Arc by VerbArc.
type PathElement struct {
	Verb  PathVerb
	Point Vec2
	Arc   Arc
}

// Path is a sequence of line and arc commands handed to a draw backend.
// A Path is built once per frame and not mutated after construction.
type Path struct {
	Elements []PathElement
}

// MoveTo starts a new contour at p.
func (p *Path) MoveTo(pt Vec2) {
	p.Elements = append(p.Elements, PathElement{Verb: VerbMoveTo, Point: pt})
}

// LineTo appends a straight edge to pt.
func (p *Path) LineTo(pt Vec2) {
	p.Elements = append(p.Elements, PathElement{Verb: VerbLineTo, Point: pt})
}

// ArcTo appends a circular arc. The pen moves to the arc's end point.
func (p *Path) ArcTo(a Arc) {
	p.Elements = append(p.Elements, PathElement{Verb: VerbArc, Arc: a})
}

// Close closes the current contour.
func (p *Path) Close() {
	p.Elements = append(p.Elements, PathElement{Verb: VerbClose})
}

// Polyline is a flattened contour.
type Polyline struct {
	Points []Vec2
	Closed bool
}

// DefaultTolerance is the maximum distance in pixels between an arc and the
// chords approximating it.
const DefaultTolerance = 0.25

// maxArcSegments caps the subdivision of a single arc.
const maxArcSegments = 256

// Flatten approximates the path with straight segments no further than
// tolerance from the true curve. Each MoveTo starts a new contour.
func (p Path) Flatten(tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	var out []Polyline
	var cur *Polyline
	ensure := func() {
		if cur == nil {
			out = append(out, Polyline{})
			cur = &out[len(out)-1]
		}
	}
	for _, el := range p.Elements {
		switch el.Verb {
		case VerbMoveTo:
			out = append(out, Polyline{Points: []Vec2{el.Point}})
			cur = &out[len(out)-1]
		case VerbLineTo:
			ensure()
			cur.Points = append(cur.Points, el.Point)
		case VerbArc:
			ensure()
			cur.Points = appendArc(cur.Points, el.Arc, tolerance)
		case VerbClose:
			if cur != nil {
				cur.Closed = true
				cur = nil
			}
		}
	}
	return out
}

// appendArc samples a onto pts, skipping the first sample when it coincides
// with the pen position.
func appendArc(pts []Vec2, a Arc, tolerance float64) []Vec2 {
	n := arcSegments(a.Radius, a.SweepAngle, tolerance)
	start := a.Start()
	if len(pts) == 0 || !samePoint(pts[len(pts)-1], start) {
		pts = append(pts, start)
	}
	step := a.SweepAngle / float64(n)
	for i := 1; i <= n; i++ {
		pts = append(pts, a.PointAt(a.StartAngle+step*float64(i)))
	}
	return pts
}

// arcSegments returns how many chords keep the sagitta under tolerance.
func arcSegments(radius, sweep, tolerance float64) int {
	if radius <= tolerance {
		return 1
	}
	maxStep := 2 * math.Acos(1-tolerance/radius)
	n := int(math.Ceil(math.Abs(sweep) / maxStep))
	return max(1, min(n, maxArcSegments))
}

func samePoint(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

// Bounds returns the exact axis-aligned bounding box of the path. An arc
// contributes its end points plus every axis extreme its sweep passes
// through, so the box does not depend on flattening tolerance.
func (p Path) Bounds() Rect {
	var b boundsBuilder
	for _, el := range p.Elements {
		switch el.Verb {
		case VerbMoveTo, VerbLineTo:
			b.add(el.Point)
		case VerbArc:
			a := el.Arc
			b.add(a.Start())
			b.add(a.End())
			lo, hi := a.StartAngle, a.StartAngle+a.SweepAngle
			if lo > hi {
				lo, hi = hi, lo
			}
			hi = math.Min(hi, lo+2*math.Pi)
			for k := math.Ceil(lo / (math.Pi / 2)); k*math.Pi/2 <= hi; k++ {
				b.add(a.PointAt(k * math.Pi / 2))
			}
		}
	}
	return b.rect()
}

// boundsBuilder accumulates the extent of a set of points.
type boundsBuilder struct {
	minX, minY, maxX, maxY float64
	seen                   bool
}

func (b *boundsBuilder) add(pt Vec2) {
	if !b.seen {
		b.minX, b.minY, b.maxX, b.maxY = pt.X, pt.Y, pt.X, pt.Y
		b.seen = true
		return
	}
	b.minX = math.Min(b.minX, pt.X)
	b.minY = math.Min(b.minY, pt.Y)
	b.maxX = math.Max(b.maxX, pt.X)
	b.maxY = math.Max(b.maxY, pt.Y)
}

func (b *boundsBuilder) rect() Rect {
	return Rect{X: b.minX, Y: b.minY, Width: b.maxX - b.minX, Height: b.maxY - b.minY}
}
