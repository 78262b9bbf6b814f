package ecs

import (
	"github.com/phanxgames/glide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TweenEventType is the Donburi event type for glide tween lifecycle events.
var TweenEventType = events.NewEventType[glide.TweenEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events
// are queued on TweenEventType until the world processes them.
func NewDonburiStore(world donburi.World) glide.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event glide.TweenEvent) {
	TweenEventType.Publish(s.world, event)
}
