package ecs

import (
	"testing"

	"github.com/dotmesh2d/dotmesh"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiHub(t *testing.T) {
	world := donburi.NewWorld()
	hub := NewDonburiHub(world)
	if hub == nil {
		t.Fatal("NewDonburiHub returned nil")
	}
}

func TestDonburiHub_EmitContact(t *testing.T) {
	world := donburi.NewWorld()
	hub := NewDonburiHub(world)

	var received []dotmesh.Contact
	ContactEventType.Subscribe(world, func(w donburi.World, c dotmesh.Contact) {
		received = append(received, c)
	})

	a := dotmesh.NewSprite("a")
	b := dotmesh.NewSprite("b")
	hub.EmitContact(dotmesh.Contact{
		A: a, B: b,
		Region: dotmesh.DotRect{X: 7, Y: 8, W: 1, H: 1},
	})
	hub.EmitContact(dotmesh.Contact{
		A: b, B: a,
		Region: dotmesh.DotRect{X: 19, Y: 19, W: 2, H: 3},
	})

	// Events are queued — process them.
	ContactEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(received))
	}

	c0 := received[0]
	if c0.A != a || c0.B != b {
		t.Errorf("contact 0 sprites: %+v", c0)
	}
	if want := (dotmesh.DotRect{X: 7, Y: 8, W: 1, H: 1}); c0.Region != want {
		t.Errorf("contact 0 region = %+v, want %+v", c0.Region, want)
	}

	c1 := received[1]
	if want := (dotmesh.DotRect{X: 19, Y: 19, W: 2, H: 3}); c1.Region != want {
		t.Errorf("contact 1 region = %+v, want %+v", c1.Region, want)
	}
}

func TestDonburiHub_ImplementsContactSink(t *testing.T) {
	world := donburi.NewWorld()
	var hub dotmesh.ContactSink = NewDonburiHub(world)
	_ = hub // compile-time interface check
}

func TestDonburiHub_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	hub := NewDonburiHub(world)

	var count1, count2 int
	ContactEventType.Subscribe(world, func(w donburi.World, c dotmesh.Contact) {
		count1++
	})
	ContactEventType.Subscribe(world, func(w donburi.World, c dotmesh.Contact) {
		count2++
	})

	hub.EmitContact(dotmesh.Contact{})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
