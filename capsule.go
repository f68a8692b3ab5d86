package pinwheel

import "math"

// DefaultCenterGap is the distance kept clear between the pivot and the
// inner end of every blade.
const DefaultCenterGap = 5.0

// Capsule describes one pill-shaped blade. Unrotated, the blade stands
// straight above Pivot with its outer edge Height away from it and its inner
// edge CenterGap away from it. Angle (degrees) rotates the whole blade about
// Pivot. Scale shrinks the blade toward the pivot rather than toward its own
// center, so growing blades appear to extend outward.
type Capsule struct {
	Pivot     Vec2
	Angle     float64
	Width     float64
	Height    float64
	CenterGap float64
	Scale     float64
}

// BuildCapsule returns the closed outline of the described capsule.
func BuildCapsule(pivot Vec2, angle, width, height, centerGap, scale float64) Path {
	return Capsule{
		Pivot:     pivot,
		Angle:     angle,
		Width:     width,
		Height:    height,
		CenterGap: centerGap,
		Scale:     scale,
	}.Path()
}

// ArcRadius returns the radius of the end caps before scaling.
func (c Capsule) ArcRadius() float64 {
	return c.Width / 2
}

// SideLength returns the length of the straight edges before scaling.
// Blades too short to fit both caps have no straight edge.
func (c Capsule) SideLength() float64 {
	return math.Max(0, c.Height-c.CenterGap-2*c.ArcRadius())
}

// centers returns the unrotated outer and inner cap centers and the scaled
// cap radius.
func (c Capsule) centers() (outer, inner Vec2, radius float64) {
	r := c.ArcRadius()
	side := c.SideLength()
	radius = c.Scale * r
	scaledSide := c.Scale * side
	yOffset := (r + side) * (1 - c.Scale)

	top := c.Pivot.Y - c.Height
	outer = Vec2{X: c.Pivot.X, Y: top + radius + yOffset}
	inner = Vec2{X: c.Pivot.X, Y: top + radius + scaledSide + yOffset}
	return outer, inner, radius
}

// transform returns the rotation of the capsule about its pivot.
func (c Capsule) transform() [6]float64 {
	return rotateAbout(Radians(c.Angle), c.Pivot)
}

// Path returns the capsule outline: the outer cap, the left edge, the inner
// cap, and the closing right edge. Every point goes through the same
// rotation so the blade turns rigidly as a unit.
func (c Capsule) Path() Path {
	outer, inner, radius := c.centers()
	m := c.transform()
	theta := Radians(c.Angle)

	outerC := transformPoint(m, outer)
	innerC := transformPoint(m, inner)

	var p Path
	p.Elements = make([]PathElement, 0, 5)
	p.MoveTo(transformPoint(m, Vec2{X: outer.X + radius, Y: outer.Y}))
	p.ArcTo(Arc{Center: outerC, Radius: radius, StartAngle: theta, SweepAngle: -math.Pi})
	p.LineTo(transformPoint(m, Vec2{X: inner.X - radius, Y: inner.Y}))
	p.ArcTo(Arc{Center: innerC, Radius: radius, StartAngle: math.Pi + theta, SweepAngle: -math.Pi})
	p.Close()
	return p
}

// Contains reports whether (x, y) lies inside the capsule.
func (c Capsule) Contains(x, y float64) bool {
	outer, inner, radius := c.centers()
	if radius <= 0 {
		return false
	}
	local := transformPoint(invertAffine(c.transform()), Vec2{X: x, Y: y})
	// The spine runs vertically from outer to inner.
	cy := math.Max(outer.Y, math.Min(inner.Y, local.Y))
	dx := local.X - outer.X
	dy := local.Y - cy
	return dx*dx+dy*dy <= radius*radius
}
