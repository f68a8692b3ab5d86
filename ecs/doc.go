// Package ecs provides ECS adapters for pinwheel's transition events.
//
// The primary adapter is [NewDonburiSink], which publishes settled count
// transitions from a [pinwheel.Animator] into a [Donburi] world as typed
// events. Subscribe to [TransitionEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	fan.Animator().SetSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
