package ecs

import (
	"github.com/phanxgames/trellis"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WidgetEventType is the Donburi event type for trellis widget events.
var WidgetEventType = events.NewEventType[trellis.WidgetEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Widget events are published to WidgetEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) trellis.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event trellis.WidgetEvent) {
	WidgetEventType.Publish(s.world, event)
}
