package grove

import "iter"

// Order selects the enumeration order of Descendants.
type Order uint8

const (
	DepthFirst   Order = iota // pre-order: a child's whole subtree before its next sibling
	BreadthFirst              // level by level, siblings in order
)

// String returns the order name.
func (o Order) String() string {
	switch o {
	case DepthFirst:
		return "depth-first"
	case BreadthFirst:
		return "breadth-first"
	default:
		return "unknown"
	}
}

// IsParentOf reports whether n is the direct parent of other.
func (n *Node[T]) IsParentOf(other *Node[T]) bool {
	return other != nil && other.parent == n
}

// IsChildOf reports whether n is a direct child of other.
func (n *Node[T]) IsChildOf(other *Node[T]) bool {
	return other != nil && n.parent == other
}

// IsAncestorOf reports whether n is a transitive parent of other.
// A node is never its own ancestor.
func (n *Node[T]) IsAncestorOf(other *Node[T]) bool {
	if other == nil {
		return false
	}
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// IsDescendantOf reports whether n is a transitive child of other.
// A node is never its own descendant.
func (n *Node[T]) IsDescendantOf(other *Node[T]) bool {
	return other != nil && other.IsAncestorOf(n)
}

// Children returns an iterator over the direct children of n in sibling order.
// The sequence is evaluated lazily and may be ranged over more than once; the
// tree must not be mutated while it is being ranged over.
func (n *Node[T]) Children() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for c := n.firstChild; c != nil; c = c.nextSibling {
			if !yield(c) {
				return
			}
		}
	}
}

// Ancestors returns an iterator from n's parent up to the root, root last.
// n itself is not included.
func (n *Node[T]) Ancestors() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for p := n.parent; p != nil; p = p.parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Descendants returns an iterator over every node below n in the given order.
// n itself is not included.
func (n *Node[T]) Descendants(order Order) iter.Seq[*Node[T]] {
	if order == BreadthFirst {
		return n.breadthFirst
	}
	return n.depthFirst
}

// depthFirst follows the links directly, so it needs no stack: after a node
// comes its first child, otherwise the next sibling of the nearest node on the
// way back up to n.
func (n *Node[T]) depthFirst(yield func(*Node[T]) bool) {
	cur := n.firstChild
	for cur != nil {
		if !yield(cur) {
			return
		}
		if cur.firstChild != nil {
			cur = cur.firstChild
			continue
		}
		for cur != n && cur.nextSibling == nil {
			cur = cur.parent
		}
		if cur == n {
			return
		}
		cur = cur.nextSibling
	}
}

func (n *Node[T]) breadthFirst(yield func(*Node[T]) bool) {
	var queue []*Node[T]
	for c := n.firstChild; c != nil; c = c.nextSibling {
		queue = append(queue, c)
	}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		queue[head] = nil
		if !yield(cur) {
			return
		}
		for c := cur.firstChild; c != nil; c = c.nextSibling {
			queue = append(queue, c)
		}
	}
}

// Bubble calls fn for n and then for each of its ancestors in turn, stopping
// after the root or as soon as fn returns false.
func Bubble[T any](n *Node[T], fn func(*Node[T]) bool) {
	for cur := n; cur != nil; cur = cur.parent {
		if !fn(cur) {
			return
		}
	}
}
