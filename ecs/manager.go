package ecs

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/swiss"
)

// EntityManager is the contract shared by Manager and TreeManager.
type EntityManager[E comparable] interface {
	// Entities returns the managed entities in creation order. The returned
	// slice MUST NOT be mutated by the caller.
	Entities() []E
	// CreateEntity creates and registers a fresh entity.
	CreateEntity() E
	// DestroyEntity unregisters entity and fires EventDestroy. No-op for an
	// entity the manager does not hold.
	DestroyEntity(entity E)
	// Has reports whether entity is currently managed.
	Has(entity E) bool
	// AddEventHandler registers h for kind. Fails with ErrDuplicateHandler if
	// h is already registered for kind.
	AddEventHandler(kind EventKind, h Handler[E]) error
	// RemoveEventHandler unregisters h for kind. No-op if h is not registered.
	RemoveEventHandler(kind EventKind, h Handler[E])
}

// Manager creates entities through an EntityFactory and keeps them in creation
// order. It is not safe for concurrent use.
type Manager[E comparable] struct {
	factory  EntityFactory[E]
	entities []E
	index    swiss.Map[E, int] // entity -> position in entities
	handlers handlerRegistry[E]
	logger   *log.Logger
}

var _ EntityManager[Entity] = (*Manager[Entity])(nil)

// NewManager creates an empty manager that draws identities from factory.
func NewManager[E comparable](factory EntityFactory[E]) *Manager[E] {
	m := &Manager[E]{
		factory: factory,
		logger:  log.New(io.Discard),
	}
	m.index.Init(0)
	return m
}

// NewEntityManager creates a Manager of plain Entity values with sequential keys.
func NewEntityManager() *Manager[Entity] {
	return NewManager[Entity](&KeyFactory{})
}

// SetLogger sets the logger used for lifecycle debug records. A nil logger
// silences the manager.
func (m *Manager[E]) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	m.logger = l
}

// Entities returns the managed entities in creation order. The returned slice
// MUST NOT be mutated by the caller.
func (m *Manager[E]) Entities() []E {
	return m.entities
}

// Len returns the number of managed entities.
func (m *Manager[E]) Len() int {
	return len(m.entities)
}

// CreateEntity creates a fresh entity through the factory and registers it.
// Panics if the factory hands out an identity that is already managed.
func (m *Manager[E]) CreateEntity() E {
	e := m.factory.Create()
	if _, ok := m.index.Get(e); ok {
		panic(fmt.Sprintf("ecs: factory returned an entity that is already managed: %v", e))
	}
	m.index.Put(e, len(m.entities))
	m.entities = append(m.entities, e)
	m.logger.Debug("entity created", "entity", e, "count", len(m.entities))
	return e
}

// Has reports whether entity is currently managed.
func (m *Manager[E]) Has(entity E) bool {
	_, ok := m.index.Get(entity)
	return ok
}

// DestroyEntity removes entity and then notifies the EventDestroy handlers in
// registration order. Destroying an entity that is not managed does nothing.
//
// Entities keeps creation order, so removal shifts and re-indexes every later
// entity: O(n) per call, and O(k·n) for a TreeManager cascade over k nodes.
func (m *Manager[E]) DestroyEntity(entity E) {
	i, ok := m.index.Get(entity)
	if !ok {
		return
	}
	m.index.Delete(entity)
	copy(m.entities[i:], m.entities[i+1:])
	var zero E
	m.entities[len(m.entities)-1] = zero
	m.entities = m.entities[:len(m.entities)-1]
	for j := i; j < len(m.entities); j++ {
		m.index.Put(m.entities[j], j)
	}
	m.logger.Debug("entity destroyed", "entity", entity, "count", len(m.entities))

	m.handlers.emit(Event[E]{Kind: EventDestroy, Entity: entity})
}

// AddEventHandler registers h for kind. Handlers run synchronously in the
// order they were added. Fails with ErrDuplicateHandler if h is already
// registered for kind.
func (m *Manager[E]) AddEventHandler(kind EventKind, h Handler[E]) error {
	if err := m.handlers.add(kind, h); err != nil {
		m.logger.Warn("rejected event handler", "event", kind, "err", err)
		return err
	}
	m.logger.Debug("event handler added", "event", kind, "handlers", m.handlers.count(kind))
	return nil
}

// RemoveEventHandler unregisters h for kind. No-op if h is not registered.
func (m *Manager[E]) RemoveEventHandler(kind EventKind, h Handler[E]) {
	if m.handlers.remove(kind, h) {
		m.logger.Debug("event handler removed", "event", kind, "handlers", m.handlers.count(kind))
	}
}
