package grove

// Visitor holds the callbacks driven by Walk. Every field is optional: a nil
// callback does nothing, and a nil CanEnter lets every subtree be expanded.
type Visitor[T any] struct {
	// OnVisit is called exactly once per reached node, before its children.
	OnVisit func(*Node[T])

	// CanEnter decides whether a node's subtree is expanded. It is only asked
	// about nodes that have children.
	CanEnter func(*Node[T]) bool

	// OnEnter is called right after OnVisit for a node whose children are
	// about to be walked. Never called for childless nodes.
	OnEnter func(*Node[T])

	// OnLeave is called once the node's whole subtree has been walked. It is
	// paired with OnEnter: only entered nodes are left.
	OnLeave func(*Node[T])
}

// walkFrame is one pending stack entry: either a node still to be visited or
// an entered node waiting for its OnLeave.
type walkFrame[T any] struct {
	node    *Node[T]
	leaving bool
}

// Walk traverses the given roots depth-first, in order, bracketing every
// expanded subtree with OnEnter and OnLeave. Declining to enter one root does
// not affect the roots after it. Each reachable node is visited once; the tree
// must not be mutated from inside the callbacks.
func Walk[T any](v Visitor[T], roots ...*Node[T]) {
	stack := make([]walkFrame[T], 0, len(roots)+8)
	for i := len(roots) - 1; i >= 0; i-- {
		if roots[i] != nil {
			stack = append(stack, walkFrame[T]{node: roots[i]})
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := top.node

		if top.leaving {
			if v.OnLeave != nil {
				v.OnLeave(node)
			}
			continue
		}

		if v.OnVisit != nil {
			v.OnVisit(node)
		}
		if node.firstChild == nil {
			continue
		}
		if v.CanEnter != nil && !v.CanEnter(node) {
			continue
		}
		if v.OnEnter != nil {
			v.OnEnter(node)
		}

		// The leave frame sits below the children so it pops after the whole
		// subtree. Children go on last-first so the first child pops next.
		stack = append(stack, walkFrame[T]{node: node, leaving: true})
		for c := node.lastChild; c != nil; c = c.prevSibling {
			stack = append(stack, walkFrame[T]{node: c})
		}
	}
}
