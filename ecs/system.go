package ecs

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/swiss"
)

// ComponentFactory creates the component a System attaches to an entity.
type ComponentFactory[C any] interface {
	Create() C
}

// ComponentDestroyer is implemented by component factories that need to
// release a component when it is removed from its entity.
type ComponentDestroyer[C any] interface {
	Destroy(component C)
}

// Registration pairs an entity with its component.
type Registration[C any, E comparable] struct {
	Entity    E
	Component C
}

// Registry is the entity-facing side of a system, as used by SystemManager
// and World.
type Registry[E comparable] interface {
	RemoveFrom(entity E)
	Has(entity E) bool
}

// System attaches at most one component of type C to each entity.
type System[C any, E comparable] struct {
	factory ComponentFactory[C]
	regs    []Registration[C, E]
	index   swiss.Map[E, int] // entity -> position in regs
}

var _ Registry[Entity] = (*System[int, Entity])(nil)

// NewSystem creates a system whose components come from factory. If factory
// also implements ComponentDestroyer, Destroy is called on every removed
// component.
func NewSystem[C any, E comparable](factory ComponentFactory[C]) *System[C, E] {
	s := &System[C, E]{factory: factory}
	s.index.Init(0)
	return s
}

// AddTo creates a component for entity and returns it. Fails with
// ErrAlreadyRegistered if entity already has one.
func (s *System[C, E]) AddTo(entity E) (C, error) {
	if _, ok := s.index.Get(entity); ok {
		var zero C
		return zero, errors.Wrapf(ErrAlreadyRegistered, "%v", entity)
	}
	c := s.factory.Create()
	s.index.Put(entity, len(s.regs))
	s.regs = append(s.regs, Registration[C, E]{Entity: entity, Component: c})
	return c, nil
}

// RemoveFrom drops the component of entity, destroying it if the factory
// knows how. No-op if entity has no component. All keeps registration order,
// so this is O(n) in the number of registrations.
func (s *System[C, E]) RemoveFrom(entity E) {
	i, ok := s.index.Get(entity)
	if !ok {
		return
	}
	reg := s.regs[i]
	if d, ok := s.factory.(ComponentDestroyer[C]); ok {
		d.Destroy(reg.Component)
	}
	s.index.Delete(entity)
	copy(s.regs[i:], s.regs[i+1:])
	s.regs[len(s.regs)-1] = Registration[C, E]{}
	s.regs = s.regs[:len(s.regs)-1]
	for j := i; j < len(s.regs); j++ {
		s.index.Put(s.regs[j].Entity, j)
	}
}

// GetBy returns the component of entity and whether it has one.
func (s *System[C, E]) GetBy(entity E) (C, bool) {
	i, ok := s.index.Get(entity)
	if !ok {
		var zero C
		return zero, false
	}
	return s.regs[i].Component, true
}

// Has reports whether entity has a component in this system.
func (s *System[C, E]) Has(entity E) bool {
	_, ok := s.index.Get(entity)
	return ok
}

// All returns the registrations in the order they were added. The returned
// slice MUST NOT be mutated by the caller.
func (s *System[C, E]) All() []Registration[C, E] {
	return s.regs
}

// Len returns the number of registered entities.
func (s *System[C, E]) Len() int {
	return len(s.regs)
}
