package pinwheel

// DefaultPadding is the inset applied to the drawing bounds before blades
// are sized.
const DefaultPadding = 30.0

// Frame holds the layout inputs derived from the host's bounds. Recompute it
// whenever the bounds change.
type Frame struct {
	Bounds      Rect
	Inner       Rect
	Pivot       Vec2
	BladeWidth  float64
	BladeHeight float64
	SpokeRadius float64
}

// NewFrame lays out a shape inside bounds. Blades are a third of the padded
// width wide and half the padded height tall; spokes reach a quarter of the
// full height.
func NewFrame(bounds Rect, padding float64) Frame {
	padX := min(padding, bounds.Width/2)
	padY := min(padding, bounds.Height/2)
	inner := Rect{
		X:      bounds.X + padX,
		Y:      bounds.Y + padY,
		Width:  max(0, bounds.Width-2*padX),
		Height: max(0, bounds.Height-2*padY),
	}
	return Frame{
		Bounds:      bounds,
		Inner:       inner,
		Pivot:       inner.Center(),
		BladeWidth:  inner.Width / 3,
		BladeHeight: inner.Height / 2,
		SpokeRadius: max(0, bounds.Height/4),
	}
}
