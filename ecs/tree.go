package ecs

import (
	"slices"

	"github.com/phanxgames/grove"
)

// NodeFactory wraps each value produced by Values in a detached grove node.
type NodeFactory[T any] struct {
	Values interface{ Create() T }
}

// Create returns a new detached node.
func (f NodeFactory[T]) Create() *grove.Node[T] {
	return grove.NewNode(f.Values.Create())
}

// TreeManager manages entities that are grove nodes. Destroying an entity
// detaches it from its parent and destroys its whole subtree.
type TreeManager[T any] struct {
	inner EntityManager[*grove.Node[T]]
}

var _ EntityManager[*grove.Node[int]] = (*TreeManager[int])(nil)

// NewTreeManager wraps inner, which owns the entity collection and its events.
func NewTreeManager[T any](inner EntityManager[*grove.Node[T]]) *TreeManager[T] {
	return &TreeManager[T]{inner: inner}
}

// NewTree creates a TreeManager backed by a Manager whose entities are nodes
// holding the values produced by values.
func NewTree[T any](values interface{ Create() T }) *TreeManager[T] {
	return NewTreeManager[T](NewManager[*grove.Node[T]](NodeFactory[T]{Values: values}))
}

// Entities returns every managed node, attached or not.
func (t *TreeManager[T]) Entities() []*grove.Node[T] {
	return t.inner.Entities()
}

// CreateEntity creates a new detached node entity.
func (t *TreeManager[T]) CreateEntity() *grove.Node[T] {
	return t.inner.CreateEntity()
}

// Has reports whether node is managed.
func (t *TreeManager[T]) Has(node *grove.Node[T]) bool {
	return t.inner.Has(node)
}

// DestroyEntity detaches node from its parent and then destroys node followed
// by its descendants in depth-first order. The destroyed subtree keeps its
// internal links; only the link to the former parent is cut. A node the
// manager does not hold is left alone, links and descendants included.
// Each removal costs what the inner manager's DestroyEntity costs.
func (t *TreeManager[T]) DestroyEntity(node *grove.Node[T]) {
	if node == nil || !t.inner.Has(node) {
		return
	}
	node.RemoveFromParent()
	doomed := append([]*grove.Node[T]{node}, slices.Collect(node.Descendants(grove.DepthFirst))...)
	for _, n := range doomed {
		t.inner.DestroyEntity(n)
	}
}

// RootNodes returns the managed nodes that have no parent, in creation order.
func (t *TreeManager[T]) RootNodes() []*grove.Node[T] {
	var roots []*grove.Node[T]
	for _, n := range t.inner.Entities() {
		if n.Parent() == nil {
			roots = append(roots, n)
		}
	}
	return roots
}

// AddEventHandler forwards to the wrapped manager.
func (t *TreeManager[T]) AddEventHandler(kind EventKind, h Handler[*grove.Node[T]]) error {
	return t.inner.AddEventHandler(kind, h)
}

// RemoveEventHandler forwards to the wrapped manager.
func (t *TreeManager[T]) RemoveEventHandler(kind EventKind, h Handler[*grove.Node[T]]) {
	t.inner.RemoveEventHandler(kind, h)
}
