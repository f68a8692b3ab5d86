package pinwheel

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// CountTween animates a Scalar from one value to a target count. Call
// Update(dt) each frame; Done is set once the target is reached.
type CountTween struct {
	tween  *gween.Tween
	target int
	value  Scalar
	Done   bool
}

// NewCountTween creates a tween from the current scalar to to elements over
// duration seconds using the easing function. A non-positive duration jumps
// straight to the target on the first Update.
func NewCountTween(from Scalar, to int, duration float32, fn ease.TweenFunc) (*CountTween, error) {
	if _, err := ScalarFromCount(to); err != nil {
		return nil, err
	}
	if fn == nil {
		fn = ease.Linear
	}
	if duration <= 0 {
		duration = 1e-6
	}
	return &CountTween{
		tween:  gween.New(float32(from.Value()), float32(to), duration, fn),
		target: to,
		value:  from,
	}, nil
}

// Target returns the count the tween is heading for.
func (t *CountTween) Target() int {
	return t.target
}

// Value returns the scalar computed by the last Update.
func (t *CountTween) Value() Scalar {
	return t.value
}

// Update advances the tween by dt seconds and returns the new scalar. Easing
// functions that undershoot below zero are clamped to an empty shape.
func (t *CountTween) Update(dt float32) (Scalar, error) {
	if t.Done {
		return t.value, nil
	}
	v, finished := t.tween.Update(dt)
	if finished {
		t.Done = true
		t.value = Scalar{BaseCount: uint32(t.target)}
		return t.value, nil
	}
	s, err := NewScalar(max(0, float64(v)))
	if err != nil {
		return t.value, fmt.Errorf("count tween: %w", err)
	}
	t.value = s
	return s, nil
}

// TransitionEvent reports that a shape finished animating to a new count.
type TransitionEvent struct {
	Shape string
	From  int
	To    int
}

// EventSink is the interface for optional ECS integration. When set on an
// Animator, settled transitions are forwarded to it.
type EventSink interface {
	EmitTransition(event TransitionEvent)
}

// Animator owns the animation scalar of one shape instance. It is the only
// place the scalar is mutated; geometry is derived from Value every frame.
//
// There is no global animation manager; shapes call Update themselves.
type Animator struct {
	Name string

	value   Scalar
	settled int
	tween   *CountTween
	sink    EventSink
}

// NewAnimator creates an animator settled at count elements.
func NewAnimator(name string, count int) (*Animator, error) {
	s, err := ScalarFromCount(count)
	if err != nil {
		return nil, err
	}
	return &Animator{Name: name, value: s, settled: count}, nil
}

// SetSink sets the optional transition listener.
func (a *Animator) SetSink(sink EventSink) {
	a.sink = sink
}

// SetCount starts animating toward count from wherever the scalar currently
// is, including mid-transition, so retargeting never jumps.
func (a *Animator) SetCount(count int, duration float32, fn ease.TweenFunc) error {
	tw, err := NewCountTween(a.value, count, duration, fn)
	if err != nil {
		return err
	}
	a.tween = tw
	return nil
}

// Update advances the active tween by dt seconds.
func (a *Animator) Update(dt float32) (Scalar, error) {
	if a.tween == nil {
		return a.value, nil
	}
	s, err := a.tween.Update(dt)
	if err != nil {
		a.tween = nil
		return a.value, err
	}
	a.value = s
	if a.tween.Done {
		to := a.tween.Target()
		a.tween = nil
		if to != a.settled {
			from := a.settled
			a.settled = to
			if a.sink != nil {
				a.sink.EmitTransition(TransitionEvent{Shape: a.Name, From: from, To: to})
			}
		}
	}
	return a.value, nil
}

// Value returns the current scalar.
func (a *Animator) Value() Scalar {
	return a.value
}

// Target returns the count being animated toward, or the settled count.
func (a *Animator) Target() int {
	if a.tween != nil {
		return a.tween.Target()
	}
	return a.settled
}

// Settled reports whether no transition is in flight.
func (a *Animator) Settled() bool {
	return a.tween == nil
}

var easeByName = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inOutSine":  ease.InOutSine,
	"outBounce":  ease.OutBounce,
	"outElastic": ease.OutElastic,
}

// EaseByName looks up an easing function by its camel-case name, for
// example "linear" or "outBounce". An empty name selects linear easing.
func EaseByName(name string) (ease.TweenFunc, bool) {
	if name == "" {
		return ease.Linear, true
	}
	fn, ok := easeByName[name]
	return fn, ok
}
