package pinwheel

import (
	"errors"
	"strings"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		target  error
		message string
	}{
		{name: "bad json", json: `{"steps": [`, message: "parse script"},
		{name: "empty", json: `{"steps": []}`, target: ErrEmptyScript},
		{name: "unknown action", json: `{"steps": [{"action": "spin"}]}`, message: `unknown action "spin"`},
		{name: "unknown ease", json: `{"steps": [{"action": "count", "count": 2, "ease": "wobble"}]}`, message: `unknown ease "wobble"`},
		{name: "negative count", json: `{"steps": [{"action": "count", "count": -3}]}`, target: ErrInvalidCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
			if tt.message != "" && !strings.Contains(err.Error(), tt.message) {
				t.Errorf("err = %q, want it to mention %q", err, tt.message)
			}
		})
	}
}

func TestScriptCountSettleScreenshot(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "count", "shape": 0, "count": 3, "duration": 0.5, "ease": "linear"},
		{"action": "settle"},
		{"action": "screenshot", "label": "three"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	f, err := NewFan(FanConfig{Blades: 2})
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(RunConfig{}, f)
	g.SetScript(runner)

	frames := 0
	for !runner.Done() && frames < 20 {
		if err := g.advance(0.25); err != nil {
			t.Fatal(err)
		}
		frames++
	}
	if !runner.Done() {
		t.Fatal("script did not finish")
	}
	// count, two frames of animation, settle, screenshot.
	if frames != 4 {
		t.Errorf("finished after %d frames, want 4", frames)
	}
	if got := f.Animator().Value(); got != (Scalar{BaseCount: 3}) {
		t.Errorf("fan = %v, want 3", got)
	}
	diff(t, []string{"three"}, g.screenshotQueue)
}

func TestScriptWait(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "later"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(RunConfig{})
	g.SetScript(runner)
	for i := range 3 {
		if err := g.advance(0.1); err != nil {
			t.Fatal(err)
		}
		if len(g.screenshotQueue) != 0 {
			t.Fatalf("screenshot taken on frame %d, during the wait", i)
		}
	}
	if err := g.advance(0.1); err != nil {
		t.Fatal(err)
	}
	diff(t, []string{"later"}, g.screenshotQueue)
	if !runner.Done() {
		t.Error("runner not done")
	}
}

func TestScriptCountBadShape(t *testing.T) {
	tests := []struct {
		name   string
		shapes []Shape
	}{
		{"missing shape", nil},
		{"not counted", []Shape{&stubShape{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, err := LoadScript([]byte(`{"steps": [{"action": "count", "shape": 0, "count": 1}]}`))
			if err != nil {
				t.Fatal(err)
			}
			g := NewGame(RunConfig{}, tt.shapes...)
			g.SetScript(runner)
			if err := g.advance(0.1); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptCountInheritsShapeTransition(t *testing.T) {
	tests := []struct {
		name string
		step string
		want float64
	}{
		{"shape ease", `{"action": "count", "shape": 0, "count": 3}`, 2.25},
		{"step ease", `{"action": "count", "shape": 0, "count": 3, "ease": "linear"}`, 2.5},
		{"step duration", `{"action": "count", "shape": 0, "count": 3, "duration": 0.5}`, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, err := LoadScript([]byte(`{"steps": [` + tt.step + `]}`))
			if err != nil {
				t.Fatal(err)
			}
			f, err := NewFan(FanConfig{Blades: 2, Duration: 1, Ease: ease.InQuad})
			if err != nil {
				t.Fatal(err)
			}
			g := NewGame(RunConfig{}, f)
			g.SetScript(runner)
			if err := g.advance(0.5); err != nil {
				t.Fatal(err)
			}
			assertNear(t, "scalar", f.Animator().Value().Value(), tt.want)
		})
	}
}
