package pinwheel

import "fmt"

// DefaultFillOpacity is the fill alpha of a full-size blade relative to its
// stroke.
const DefaultFillOpacity = 0.6

// BladeStyle configures RenderBlades. Zero CenterGap and FillOpacity select
// DefaultCenterGap and DefaultFillOpacity; a nil Palette selects
// DefaultPalette.
type BladeStyle struct {
	Width       float64
	Height      float64
	CenterGap   float64
	FillOpacity float64
	Palette     Palette
}

func (st BladeStyle) withDefaults() BladeStyle {
	if st.CenterGap == 0 {
		st.CenterGap = DefaultCenterGap
	}
	if st.FillOpacity == 0 {
		st.FillOpacity = DefaultFillOpacity
	}
	if st.Palette == nil {
		st.Palette = DefaultPalette
	}
	return st
}

func (st BladeStyle) validate() error {
	for _, d := range []struct {
		name string
		v    float64
	}{
		{"width", st.Width},
		{"height", st.Height},
		{"center gap", st.CenterGap},
		{"fill opacity", st.FillOpacity},
	} {
		if !finite(d.v) || d.v < 0 {
			return fmt.Errorf("%w: blade %s %v", ErrInvalidDimension, d.name, d.v)
		}
	}
	return nil
}

// Blade is one drawable blade for one frame.
type Blade struct {
	Slot        int
	Capsule     Capsule
	Path        Path
	Color       Color
	StrokeAlpha float64
	FillAlpha   float64
}

// RenderBlades returns one capsule per rendered slot. The newest blade's
// opacity follows its scale, so it fades in while it grows.
func RenderBlades(s Scalar, pivot Vec2, style BladeStyle) ([]Blade, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	style = style.withDefaults()
	if err := style.validate(); err != nil {
		return nil, err
	}
	if !finite(pivot.X) || !finite(pivot.Y) {
		return nil, fmt.Errorf("%w: pivot %v", ErrInvalidDimension, pivot)
	}
	blades := make([]Blade, 0, s.EffectiveCount())
	for st := range Slots(s, KindBlades) {
		c := Capsule{
			Pivot:     pivot,
			Angle:     st.Angle,
			Width:     style.Width,
			Height:    style.Height,
			CenterGap: style.CenterGap,
			Scale:     st.Scale,
		}
		alpha := clamp01(st.Scale)
		blades = append(blades, Blade{
			Slot:        st.Slot,
			Capsule:     c,
			Path:        c.Path(),
			Color:       style.Palette.At(st.Slot),
			StrokeAlpha: alpha,
			FillAlpha:   style.FillOpacity * alpha,
		})
	}
	return blades, nil
}
