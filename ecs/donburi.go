package ecs

import (
	"github.com/phanxgames/pinwheel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransitionEventType is the Donburi event type for pinwheel transitions.
// Subscribe to this in your ECS systems to learn when a shape settles on a
// new element count.
var TransitionEventType = events.NewEventType[pinwheel.TransitionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Transitions are published to TransitionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) pinwheel.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTransition(event pinwheel.TransitionEvent) {
	TransitionEventType.Publish(s.world, event)
}
