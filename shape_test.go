package pinwheel

import (
	"errors"
	"testing"

	"github.com/tanema/gween/ease"
)

var squareBounds = Rect{Width: 360, Height: 360}

func TestNewFanDefaults(t *testing.T) {
	f, err := NewFan(FanConfig{Name: "fan", Blades: 3})
	if err != nil {
		t.Fatal(err)
	}
	if f.config.Padding != DefaultPadding || f.config.Duration != DefaultDuration || f.config.Ease == nil {
		t.Errorf("config = %+v", f.config)
	}
	if f.Animator().Name != "fan" || f.Animator().Target() != 3 {
		t.Errorf("animator = %q target %d", f.Animator().Name, f.Animator().Target())
	}
	if _, err := NewFan(FanConfig{Blades: -1}); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("negative blades err = %v", err)
	}
}

func TestFanBladesLayout(t *testing.T) {
	f, err := NewFan(FanConfig{Blades: 3})
	if err != nil {
		t.Fatal(err)
	}
	blades, err := f.Blades(squareBounds)
	if err != nil {
		t.Fatal(err)
	}
	if len(blades) != 3 {
		t.Fatalf("len = %d, want 3", len(blades))
	}
	c := blades[0].Capsule
	diff(t, Vec2{X: 180, Y: 180}, c.Pivot)
	assertNear(t, "width", c.Width, 100)
	assertNear(t, "height", c.Height, 150)
}

func TestFanBladeAt(t *testing.T) {
	f, err := NewFan(FanConfig{Blades: 3})
	if err != nil {
		t.Fatal(err)
	}
	if slot, ok := f.BladeAt(180, 60, squareBounds); !ok || slot != 0 {
		t.Errorf("BladeAt(top) = %d, %v, want slot 0", slot, ok)
	}
	if _, ok := f.BladeAt(180, 178, squareBounds); ok {
		t.Error("point in the center gap hit a blade")
	}
	// Inside the top blade's bounding box but outside its rounded cap.
	if _, ok := f.BladeAt(132, 32, squareBounds); ok {
		t.Error("bounding-box corner hit a blade")
	}
}

func TestFanSetBladesAnimates(t *testing.T) {
	f, err := NewFan(FanConfig{Blades: 2, Duration: 0.5, Ease: ease.Linear})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.SetBlades(3); err != nil {
		t.Fatal(err)
	}
	if err := f.Update(0.25); err != nil {
		t.Fatal(err)
	}
	blades, _ := f.Blades(squareBounds)
	if len(blades) != 3 {
		t.Fatalf("mid-transition blades = %d, want 3", len(blades))
	}
	if s := blades[2].Capsule.Scale; s >= Overshoot || s <= 0 {
		t.Errorf("newest scale = %v", s)
	}
	if err := f.Update(0.25); err != nil {
		t.Fatal(err)
	}
	if !f.Animator().Settled() {
		t.Error("fan did not settle")
	}
}

func TestFanDrawQueuesTriangles(t *testing.T) {
	f, err := NewFan(FanConfig{Blades: 2})
	if err != nil {
		t.Fatal(err)
	}
	c := NewCanvas()
	if err := f.Draw(c, nil, squareBounds); err != nil {
		t.Fatal(err)
	}
	if v, i := c.Pending(); v == 0 || i == 0 {
		t.Errorf("pending = %d/%d, want geometry", v, i)
	}
	if s := c.takeStats(); s.slots != 2 {
		t.Errorf("slots = %d, want 2", s.slots)
	}
}

func TestLinesSegments(t *testing.T) {
	l, err := NewLines(LinesConfig{Lines: 4})
	if err != nil {
		t.Fatal(err)
	}
	if l.config.Color != DefaultPalette[0] || l.config.Ease == nil {
		t.Errorf("config = %+v", l.config)
	}
	segs, err := l.Segments(Rect{Width: 200, Height: 400})
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 4 {
		t.Fatalf("len = %d, want 4", len(segs))
	}
	diff(t, Segment{From: Vec2{X: 100, Y: 200}, To: Vec2{X: 100, Y: 100}}, segs[0], looseApprox)
}

func TestLinesDraw(t *testing.T) {
	l, err := NewLines(LinesConfig{Lines: 4, Width: 3})
	if err != nil {
		t.Fatal(err)
	}
	if err := l.SetLines(5); err != nil {
		t.Fatal(err)
	}
	if err := l.Update(0.1); err != nil {
		t.Fatal(err)
	}
	c := NewCanvas()
	if err := l.Draw(c, nil, squareBounds); err != nil {
		t.Fatal(err)
	}
	// Five spokes mid-transition, four vertices each.
	if v, _ := c.Pending(); v != 20 {
		t.Errorf("pending vertices = %d, want 20", v)
	}
}

func TestShapeTransition(t *testing.T) {
	f, err := NewFan(FanConfig{Duration: 0.4})
	if err != nil {
		t.Fatal(err)
	}
	if d, fn := f.Transition(); d != 0.4 || fn == nil {
		t.Errorf("fan Transition = %v, %v", d, fn != nil)
	}
	l, err := NewLines(LinesConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if d, fn := l.Transition(); d != DefaultDuration || fn == nil {
		t.Errorf("lines Transition = %v, %v", d, fn != nil)
	}
}
