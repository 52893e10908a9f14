package grove

// Node is a tree element carrying a payload of type T. Children are kept as an
// intrusive doubly-linked list: the parent points at its first and last child and
// each child links to its siblings. The link fields are unexported so that only
// the tree operations in this package can change them.
type Node[T any] struct {
	// Value is the caller-owned payload. The tree never reads or frees it.
	Value T

	parent      *Node[T]
	firstChild  *Node[T]
	lastChild   *Node[T]
	prevSibling *Node[T]
	nextSibling *Node[T]
}

// NewNode creates a detached node holding value.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// --- Links ---

// Parent returns the node's parent, or nil for a root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// FirstChild returns the first child, or nil if n has no children.
func (n *Node[T]) FirstChild() *Node[T] {
	return n.firstChild
}

// LastChild returns the last child, or nil if n has no children.
func (n *Node[T]) LastChild() *Node[T] {
	return n.lastChild
}

// PrevSibling returns the sibling immediately before n, or nil.
func (n *Node[T]) PrevSibling() *Node[T] {
	return n.prevSibling
}

// NextSibling returns the sibling immediately after n, or nil.
func (n *Node[T]) NextSibling() *Node[T] {
	return n.nextSibling
}

// HasChildren reports whether n has at least one child.
func (n *Node[T]) HasChildren() bool {
	return n.firstChild != nil
}

// NumChildren counts the direct children. O(children).
func (n *Node[T]) NumChildren() int {
	count := 0
	for c := n.firstChild; c != nil; c = c.nextSibling {
		count++
	}
	return count
}

// Root returns the topmost ancestor of n, or n itself if it has no parent.
func (n *Node[T]) Root() *Node[T] {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Depth returns the number of ancestors of n. A root has depth 0.
func (n *Node[T]) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}
