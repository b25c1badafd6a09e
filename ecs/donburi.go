// Package ecs provides ECS adapters for radial menus.
package ecs

import (
	"github.com/phanxgames/radial"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MenuEventType is the Donburi event type for radial menu events.
// Subscribe to this in your ECS systems to receive hover, click, and setup
// events.
var MenuEventType = events.NewEventType[radial.MenuEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Menu events are published to MenuEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) radial.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event radial.MenuEvent) {
	MenuEventType.Publish(s.world, event)
}
