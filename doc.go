// Package pinwheel draws radially symmetric shapes (spokes and capsule
// blades around a shared pivot) and animates them smoothly when their element
// count changes.
//
// # The animation scalar
//
// A shape's entire animation state is one number: the element count plus a
// fraction. Going from 3 to 5 blades the scalar runs 3.0, 3.1, ... 4.0, ...
// 5.0. [Scalar] holds the decomposed value; everything drawn is a pure
// function of it, so frames can be rebuilt in any order and playing an
// animation backwards needs no special case.
//
//	s, _ := pinwheel.NewScalar(2.5) // 2 settled blades, a third half-way in
//	blades, _ := pinwheel.RenderBlades(s, pivot, pinwheel.BladeStyle{
//		Width: 60, Height: 120,
//	})
//
// # Geometry
//
// [SettledAngle] spaces n slots evenly with slot 0 at 0°. [AngleWithProgress]
// keeps slot 0 pinned, sweeps the newest slot in from 0°, and slides every
// other slot between its n-1 and n positions. [BounceScale] grows the newest
// blade, overshoots it to 1.2 and settles it back to 1. [Capsule] turns one
// placement into a closed [Path] of arcs and lines, shrinking toward the
// pivot.
//
// [Schedule] and [Slots] compute placements for either [KindSpokes] or
// [KindBlades]; [RenderSpokes] and [RenderBlades] turn them into drawable
// segments and blades.
//
// # Hosting
//
// [Animator] owns a scalar and drives it with a [gween] tween. [Fan] and
// [Lines] combine an animator with a layout and draw through a [Canvas],
// which tessellates paths into triangles for [Ebitengine]. [Run] opens a
// window for one or more shapes:
//
//	fan, _ := pinwheel.NewFan(pinwheel.FanConfig{Blades: 3})
//	fan.SetBlades(5)
//	pinwheel.Run(pinwheel.RunConfig{Title: "Fan"}, fan)
//
// Settled transitions can be forwarded to a [Donburi] world with the
// adapter in pinwheel/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package pinwheel
