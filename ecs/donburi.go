package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// donburiBridge publishes entity events onto a Donburi event type.
type donburiBridge[E comparable] struct {
	world donburi.World
	typ   *events.EventType[Event[E]]
}

// NewDonburiBridge creates a Handler that forwards every event it receives to
// typ in world. Donburi queues the events; consume them with
// typ.Subscribe and typ.ProcessEvents in your Donburi systems.
//
//	destroyed := events.NewEventType[ecs.Event[ecs.Entity]]()
//	manager.AddEventHandler(ecs.EventDestroy, ecs.NewDonburiBridge(world, destroyed))
func NewDonburiBridge[E comparable](world donburi.World, typ *events.EventType[Event[E]]) Handler[E] {
	return &donburiBridge[E]{world: world, typ: typ}
}

func (b *donburiBridge[E]) HandleEvent(e Event[E]) {
	b.typ.Publish(b.world, e)
}

// DonburiFactory creates entities inside a Donburi world, so a Manager can
// hand out donburi.Entity identities that carry the given components.
type DonburiFactory struct {
	World      donburi.World
	Components []donburi.IComponentType
}

// Create creates an entity in the world with the factory's components.
func (f DonburiFactory) Create() donburi.Entity {
	return f.World.Create(f.Components...)
}

// donburiReaper removes destroyed entities from a Donburi world.
type donburiReaper struct {
	world donburi.World
}

// NewDonburiReaper creates a Handler that removes each destroyed entity from
// world. Entities already removed from the world are ignored.
func NewDonburiReaper(world donburi.World) Handler[donburi.Entity] {
	return &donburiReaper{world: world}
}

func (r *donburiReaper) HandleEvent(e Event[donburi.Entity]) {
	if e.Kind != EventDestroy || !r.world.Valid(e.Entity) {
		return
	}
	r.world.Remove(e.Entity)
}
