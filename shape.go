package pinwheel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Shape is a radial shape hosted by a Game. Update advances its animation;
// Draw queues its geometry for bounds onto the canvas.
type Shape interface {
	Update(dt float32) error
	Draw(c *Canvas, dst *ebiten.Image, bounds Rect) error
}

// Counted is implemented by shapes whose element count can be animated.
// Transition reports the shape's configured duration and easing, used when a
// caller retargets the count without choosing its own.
type Counted interface {
	Animator() *Animator
	Transition() (duration float32, fn ease.TweenFunc)
}

// DefaultDuration is the transition length in seconds used when a config
// leaves Duration unset.
const DefaultDuration float32 = 1

// --- Fan ---

// FanConfig configures a Fan.
type FanConfig struct {
	Name        string
	Blades      int
	Palette     Palette // nil selects DefaultPalette
	Padding     float64 // zero selects DefaultPadding
	CenterGap   float64 // zero selects DefaultCenterGap
	FillOpacity float64 // zero selects DefaultFillOpacity
	StrokeWidth float64 // zero selects DefaultStrokeWidth

	Duration float32
	Ease     ease.TweenFunc // nil selects ease.OutBounce
}

// Fan is a ring of colored capsule blades that adds and removes blades with
// a sweep-and-bounce animation.
type Fan struct {
	config   FanConfig
	animator *Animator
}

// NewFan creates a fan settled at cfg.Blades blades.
func NewFan(cfg FanConfig) (*Fan, error) {
	if cfg.Padding == 0 {
		cfg.Padding = DefaultPadding
	}
	if cfg.Duration == 0 {
		cfg.Duration = DefaultDuration
	}
	if cfg.Ease == nil {
		cfg.Ease = ease.OutBounce
	}
	a, err := NewAnimator(cfg.Name, cfg.Blades)
	if err != nil {
		return nil, err
	}
	return &Fan{config: cfg, animator: a}, nil
}

// Animator returns the animator owning the fan's scalar.
func (f *Fan) Animator() *Animator {
	return f.animator
}

// Transition returns the fan's configured duration and easing.
func (f *Fan) Transition() (float32, ease.TweenFunc) {
	return f.config.Duration, f.config.Ease
}

// SetBlades animates the fan toward n blades.
func (f *Fan) SetBlades(n int) error {
	return f.animator.SetCount(n, f.config.Duration, f.config.Ease)
}

// Update advances the fan's animation by dt seconds.
func (f *Fan) Update(dt float32) error {
	_, err := f.animator.Update(dt)
	return err
}

func (f *Fan) style(frame Frame) BladeStyle {
	return BladeStyle{
		Width:       frame.BladeWidth,
		Height:      frame.BladeHeight,
		CenterGap:   f.config.CenterGap,
		FillOpacity: f.config.FillOpacity,
		Palette:     f.config.Palette,
	}
}

// Blades returns the blades of the current frame laid out in bounds.
func (f *Fan) Blades(bounds Rect) ([]Blade, error) {
	frame := NewFrame(bounds, f.config.Padding)
	return RenderBlades(f.animator.Value(), frame.Pivot, f.style(frame))
}

// Draw queues the current frame's blades onto c.
func (f *Fan) Draw(c *Canvas, dst *ebiten.Image, bounds Rect) error {
	blades, err := f.Blades(bounds)
	if err != nil {
		return err
	}
	c.DrawBlades(dst, blades, f.config.StrokeWidth)
	return nil
}

// BladeAt returns the slot of the topmost blade containing (x, y). Each
// blade's bounding box is checked before the exact capsule test.
func (f *Fan) BladeAt(x, y float64, bounds Rect) (int, bool) {
	blades, err := f.Blades(bounds)
	if err != nil {
		return 0, false
	}
	for i := len(blades) - 1; i >= 0; i-- {
		b := &blades[i]
		if b.Path.Bounds().Contains(x, y) && b.Capsule.Contains(x, y) {
			return b.Slot, true
		}
	}
	return 0, false
}

// --- Lines ---

// LinesConfig configures a Lines shape.
type LinesConfig struct {
	Name  string
	Lines int
	Color Color   // zero selects DefaultPalette[0]
	Width float64 // zero selects DefaultStrokeWidth

	Duration float32
	Ease     ease.TweenFunc // nil selects ease.InOutQuad
}

// Lines is a star of spokes radiating from the center of its bounds.
type Lines struct {
	config   LinesConfig
	animator *Animator
}

// NewLines creates a star settled at cfg.Lines spokes.
func NewLines(cfg LinesConfig) (*Lines, error) {
	if cfg.Color == (Color{}) {
		cfg.Color = DefaultPalette[0]
	}
	if cfg.Duration == 0 {
		cfg.Duration = DefaultDuration
	}
	if cfg.Ease == nil {
		cfg.Ease = ease.InOutQuad
	}
	a, err := NewAnimator(cfg.Name, cfg.Lines)
	if err != nil {
		return nil, err
	}
	return &Lines{config: cfg, animator: a}, nil
}

// Animator returns the animator owning the star's scalar.
func (l *Lines) Animator() *Animator {
	return l.animator
}

// Transition returns the star's configured duration and easing.
func (l *Lines) Transition() (float32, ease.TweenFunc) {
	return l.config.Duration, l.config.Ease
}

// SetLines animates the star toward n spokes.
func (l *Lines) SetLines(n int) error {
	return l.animator.SetCount(n, l.config.Duration, l.config.Ease)
}

// Update advances the star's animation by dt seconds.
func (l *Lines) Update(dt float32) error {
	_, err := l.animator.Update(dt)
	return err
}

// Segments returns the spokes of the current frame laid out in bounds.
func (l *Lines) Segments(bounds Rect) ([]Segment, error) {
	frame := NewFrame(bounds, 0)
	return RenderSpokes(l.animator.Value(), frame.Pivot, frame.SpokeRadius)
}

// Draw queues the current frame's spokes onto c.
func (l *Lines) Draw(c *Canvas, dst *ebiten.Image, bounds Rect) error {
	segs, err := l.Segments(bounds)
	if err != nil {
		return err
	}
	c.DrawSegments(dst, segs, l.config.Width, l.config.Color)
	return nil
}
