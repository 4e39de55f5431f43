package ecs

import (
	"github.com/phanxgames/tilekit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InvalidationEventType is the Donburi event type for tilemap invalidations.
// A tilemap publishes once per clean to dirty transition.
var InvalidationEventType = events.NewEventType[tilekit.InvalidationEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an InvalidationSink backed by a Donburi world.
// Events are published to InvalidationEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) tilekit.InvalidationSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitInvalidation(event tilekit.InvalidationEvent) {
	InvalidationEventType.Publish(s.world, event)
}
