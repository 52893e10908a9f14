// Package grove is the node hierarchy engine behind a scene graph or
// Entity-Component-System: typed tree nodes, the operations that attach and
// detach them, read-only relationship queries, and visitor-driven traversal.
//
// # Nodes
//
// A [Node] carries a caller-owned payload and links to its parent, its first
// and last child, and its previous and next sibling. The child list is
// intrusive, so attaching and detaching are O(1) and sibling order is exactly
// insertion order.
//
//	root := grove.NewNode("root")
//	panel := grove.NewNode("panel")
//	if err := root.AddChild(panel); err != nil {
//		// errors.Is(err, grove.ErrCycle), grove.ErrAlreadyHasParent, ...
//	}
//
// The links can only be changed through [Node.AddChild], [Node.InsertBefore],
// [Node.RemoveChild], [Node.SetParent] and their helpers, which keep the tree
// acyclic and every node under at most one parent. A node that already has a
// parent is never moved implicitly by AddChild; use SetParent to reparent.
//
// # Queries
//
// [Node.Children], [Node.Ancestors] and [Node.Descendants] return lazy
// [iter.Seq] values that can be ranged over repeatedly:
//
//	for n := range root.Descendants(grove.BreadthFirst) {
//		fmt.Println(n.Value)
//	}
//
// # Walking
//
// [Walk] drives a depth-first traversal over one or more roots and calls the
// [Visitor] callbacks. OnEnter and OnLeave bracket every subtree that is
// actually expanded, and CanEnter prunes a subtree without stopping the walk.
//
// Trees are plain in-process data with no locking: confine each tree to one
// goroutine, and do not mutate it while ranging over a query or inside a walk.
package grove
