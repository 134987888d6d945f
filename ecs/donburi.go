package ecs

import (
	"github.com/dotmesh2d/dotmesh"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ContactEventType is the Donburi event type for dotmesh contacts.
// Subscribe to this in your ECS systems to receive pixel-exact overlaps.
var ContactEventType = events.NewEventType[dotmesh.Contact]()

type donburiHub struct {
	world donburi.World
}

// NewDonburiHub creates a ContactSink backed by a Donburi world. Contacts
// are published to ContactEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiHub(world donburi.World) dotmesh.ContactSink {
	return &donburiHub{world: world}
}

func (h *donburiHub) EmitContact(c dotmesh.Contact) {
	ContactEventType.Publish(h.world, c)
}
