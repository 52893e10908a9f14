package ecs

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// SystemManager keeps an ordered set of systems.
type SystemManager[E comparable] struct {
	systems []Registry[E]
}

// Systems returns the managed systems in the order they were added. The
// returned slice MUST NOT be mutated by the caller.
func (m *SystemManager[E]) Systems() []Registry[E] {
	return m.systems
}

// AddSystem adds s unless it is already present.
func (m *SystemManager[E]) AddSystem(s Registry[E]) {
	if s == nil || slices.Contains(m.systems, s) {
		return
	}
	m.systems = append(m.systems, s)
}

// RemoveSystem removes s. No-op if s was never added.
func (m *SystemManager[E]) RemoveSystem(s Registry[E]) {
	if i := slices.Index(m.systems, s); i >= 0 {
		m.systems = slices.Delete(m.systems, i, i+1)
	}
}

// World couples an entity manager with a set of systems. Whenever the manager
// destroys an entity, the world removes that entity's components from every
// system, so a tree-backed manager cleans up whole subtrees.
type World[E comparable] struct {
	SystemManager[E]
	entities EntityManager[E]
	reaper   Handler[E]
}

// NewWorld creates a world over entities and subscribes to its destroy events.
func NewWorld[E comparable](entities EntityManager[E]) *World[E] {
	w := &World[E]{entities: entities}
	w.reaper = NewHandler(func(e Event[E]) {
		for _, s := range w.systems {
			s.RemoveFrom(e.Entity)
		}
	})
	if err := entities.AddEventHandler(EventDestroy, w.reaper); err != nil {
		panic(errors.Wrap(err, "ecs: entity manager rejected the world's destroy handler"))
	}
	return w
}

// Entities returns the underlying entity manager.
func (w *World[E]) Entities() EntityManager[E] {
	return w.entities
}

// CreateEntity creates an entity through the underlying manager.
func (w *World[E]) CreateEntity() E {
	return w.entities.CreateEntity()
}

// DestroyEntity destroys entity through the underlying manager; its components
// are removed from every system as the destroy event fires.
func (w *World[E]) DestroyEntity(entity E) {
	w.entities.DestroyEntity(entity)
}

// Close stops the world from reacting to the manager's destroy events.
func (w *World[E]) Close() {
	w.entities.RemoveEventHandler(EventDestroy, w.reaper)
}
