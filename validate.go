package grove

import "github.com/cockroachdb/errors"

// Validate checks the link invariants of the subtree rooted at root and returns
// the first violation found, wrapping ErrCorrupt. The tree operations in this
// package never produce a corrupt tree, so a non-nil result means the links
// were changed behind their back.
func Validate[T any](root *Node[T]) error {
	if root == nil {
		return nil
	}
	up := map[*Node[T]]struct{}{root: {}}
	for p := root.parent; p != nil; p = p.parent {
		if _, ok := up[p]; ok {
			return errors.Wrap(ErrCorrupt, "ancestor chain loops")
		}
		up[p] = struct{}{}
	}

	seen := make(map[*Node[T]]struct{})
	stack := []*Node[T]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[n]; ok {
			return errors.Wrap(ErrCorrupt, "node reachable twice")
		}
		seen[n] = struct{}{}
		if err := checkChildList(n); err != nil {
			return err
		}
		for c := n.firstChild; c != nil; c = c.nextSibling {
			stack = append(stack, c)
		}
	}
	return nil
}

// checkChildList verifies the end pointers and sibling chain of n's children.
func checkChildList[T any](n *Node[T]) error {
	if n.parent == n {
		return errors.Wrap(ErrCorrupt, "node is its own parent")
	}
	if (n.firstChild == nil) != (n.lastChild == nil) {
		return errors.Wrap(ErrCorrupt, "first and last child must be set together")
	}
	if n.firstChild == nil {
		return nil
	}
	if n.firstChild.prevSibling != nil {
		return errors.Wrap(ErrCorrupt, "first child has a previous sibling")
	}
	if n.lastChild.nextSibling != nil {
		return errors.Wrap(ErrCorrupt, "last child has a next sibling")
	}
	var prev *Node[T]
	chain := make(map[*Node[T]]struct{})
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if _, ok := chain[c]; ok {
			return errors.Wrap(ErrCorrupt, "sibling chain loops")
		}
		chain[c] = struct{}{}
		if c.parent != n {
			return errors.Wrap(ErrCorrupt, "child does not point back at its parent")
		}
		if c.prevSibling != prev {
			return errors.Wrap(ErrCorrupt, "sibling links disagree")
		}
		prev = c
	}
	if prev != n.lastChild {
		return errors.Wrap(ErrCorrupt, "last child is not the end of the sibling chain")
	}
	return nil
}
