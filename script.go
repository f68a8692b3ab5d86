package pinwheel

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyScript is returned by LoadScript for scripts without steps.
var ErrEmptyScript = errors.New("pinwheel: script has no steps")

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	Shape    int     `json:"shape,omitempty"`
	Count    int     `json:"count,omitempty"`
	Duration float32 `json:"duration,omitempty"`
	Ease     string  `json:"ease,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences count changes, waits, and screenshots across frames
// for automated visual testing. Attach to a Game via SetScript.
//
// Supported actions:
//
//	{"action": "count", "shape": 0, "count": 5, "duration": 1, "ease": "outBounce"}
//	{"action": "wait", "frames": 30}
//	{"action": "settle"}
//	{"action": "screenshot", "label": "five-blades"}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script and returns a ScriptRunner ready to be
// attached to a Game via SetScript.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "count":
			if st.Count < 0 {
				return nil, fmt.Errorf("parse script: step %d: %w: %d", i, ErrInvalidCount, st.Count)
			}
			if _, ok := EaseByName(st.Ease); !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown ease %q", i, st.Ease)
			}
		case "wait", "settle", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript attaches a ScriptRunner to the game. The runner's step method is
// called from Game.Update before shapes update each frame.
func (g *Game) SetScript(runner *ScriptRunner) {
	g.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Game.Update.
func (r *ScriptRunner) step(g *Game) error {
	if r.done {
		return nil
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	if st.Action == "settle" && !g.settled() {
		return nil
	}
	r.cursor++

	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "count":
		if err := r.setCount(g, st); err != nil {
			return err
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
	return nil
}

func (r *ScriptRunner) setCount(g *Game, st scriptStep) error {
	if st.Shape < 0 || st.Shape >= len(g.shapes) {
		return fmt.Errorf("script step %d: no shape %d", r.cursor-1, st.Shape)
	}
	c, ok := g.shapes[st.Shape].(Counted)
	if !ok {
		return fmt.Errorf("script step %d: shape %d has no count", r.cursor-1, st.Shape)
	}
	// Steps that leave duration or ease out inherit the shape's own.
	duration, fn := c.Transition()
	if st.Duration > 0 {
		duration = st.Duration
	}
	if st.Ease != "" {
		fn, _ = EaseByName(st.Ease)
	}
	if err := c.Animator().SetCount(st.Count, duration, fn); err != nil {
		return fmt.Errorf("script step %d: %w", r.cursor-1, err)
	}
	return nil
}

// settled reports whether every counted shape has finished animating.
func (g *Game) settled() bool {
	for _, s := range g.shapes {
		if c, ok := s.(Counted); ok && !c.Animator().Settled() {
			return false
		}
	}
	return true
}
