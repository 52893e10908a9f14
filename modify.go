package grove

import "github.com/cockroachdb/errors"

// --- Tree manipulation ---

// AddChild appends child as the last child of n.
// See InsertBefore for the failure cases.
func (n *Node[T]) AddChild(child *Node[T]) error {
	return n.InsertBefore(child, nil)
}

// InsertBefore splices child into n's child list immediately before before, or
// at the end when before is nil.
//
// It fails with ErrCycle if child is n or one of n's ancestors, ErrAlreadyChild
// if child already belongs to n, ErrAlreadyHasParent if child belongs to another
// node, and ErrNotAChild if before is not a child of n. A child that already has
// a parent is never detached implicitly. Panics if child is nil.
func (n *Node[T]) InsertBefore(child, before *Node[T]) error {
	if child == nil {
		panic("grove: cannot add nil child")
	}
	if child == n || child.IsAncestorOf(n) {
		return errors.WithStack(ErrCycle)
	}
	if child.parent == n {
		return errors.WithStack(ErrAlreadyChild)
	}
	if child.parent != nil {
		return errors.WithStack(ErrAlreadyHasParent)
	}
	if before != nil && before.parent != n {
		return errors.WithStack(ErrNotAChild)
	}
	n.link(child, before)
	return nil
}

// RemoveChild detaches child from n. The child keeps its own children.
// Fails with ErrNotAChild if child.Parent() != n.
func (n *Node[T]) RemoveChild(child *Node[T]) error {
	if child == nil || child.parent != n {
		return errors.WithStack(ErrNotAChild)
	}
	n.unlink(child)
	return nil
}

// SetParent moves n under parent as its last child, detaching it from its
// current parent first. A nil parent only detaches. Calling SetParent with the
// current parent is a no-op. Fails with ErrCycle, without changing anything, if
// parent is n or one of n's descendants.
func (n *Node[T]) SetParent(parent *Node[T]) error {
	if parent == nil {
		n.RemoveFromParent()
		return nil
	}
	if parent == n || n.IsAncestorOf(parent) {
		return errors.WithStack(ErrCycle)
	}
	if n.parent == parent {
		return nil
	}
	n.RemoveFromParent()
	parent.link(n, nil)
	return nil
}

// RemoveFromParent detaches n from its parent.
// No-op if n has no parent.
func (n *Node[T]) RemoveFromParent() {
	if n.parent == nil {
		return
	}
	n.parent.unlink(n)
}

// RemoveChildren detaches all children of n. Grandchildren stay attached to
// their own parents.
func (n *Node[T]) RemoveChildren() {
	c := n.firstChild
	for c != nil {
		next := c.nextSibling
		c.parent = nil
		c.prevSibling = nil
		c.nextSibling = nil
		c = next
	}
	n.firstChild = nil
	n.lastChild = nil
}

// --- Helpers ---

// link splices an unparented child before before (or at the end when nil).
func (n *Node[T]) link(child, before *Node[T]) {
	child.parent = n
	if before == nil {
		child.prevSibling = n.lastChild
		child.nextSibling = nil
		if n.lastChild != nil {
			n.lastChild.nextSibling = child
		} else {
			n.firstChild = child
		}
		n.lastChild = child
		return
	}
	child.prevSibling = before.prevSibling
	child.nextSibling = before
	if before.prevSibling != nil {
		before.prevSibling.nextSibling = child
	} else {
		n.firstChild = child
	}
	before.prevSibling = child
}

// unlink splices child out of n's child list and clears its parent and
// sibling links.
func (n *Node[T]) unlink(child *Node[T]) {
	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else {
		n.firstChild = child.nextSibling
	}
	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	} else {
		n.lastChild = child.prevSibling
	}
	child.parent = nil
	child.prevSibling = nil
	child.nextSibling = nil
}
