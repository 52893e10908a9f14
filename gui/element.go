package gui

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/phanxgames/grove"
	"github.com/phanxgames/grove/geom"
)

// PaintFunc draws an element. bounds is the element's rectangle in screen
// coordinates.
type PaintFunc func(p Painter, bounds geom.Rect)

// Fill returns a PaintFunc that fills the element's bounds with c.
func Fill(c Color) PaintFunc {
	return func(p Painter, bounds geom.Rect) {
		p.FillRect(bounds, c)
	}
}

// Element is a rectangle in the GUI tree.
type Element struct {
	Name string

	// Position is relative to the parent's top-left corner.
	Position geom.Vec2
	Size     geom.Vec2

	// Visible elements are painted and hit-tested; hiding an element hides
	// its whole subtree.
	Visible bool

	// ClipChildren restricts descendants to this element's bounds.
	ClipChildren bool

	// Paint is optional. Elements without it only group their children.
	Paint PaintFunc

	// OnClick returns true to stop the click from reaching ancestors.
	OnClick        func(PointerEvent) bool
	OnPointerEnter func(PointerEvent)
	OnPointerLeave func(PointerEvent)

	node *grove.Node[*Element]
}

// NewElement creates a visible, zero-sized element with no parent.
func NewElement(name string) *Element {
	e := &Element{Name: name, Visible: true}
	e.node = grove.NewNode(e)
	return e
}

// Node exposes the underlying grove node for queries and walks.
func (e *Element) Node() *grove.Node[*Element] {
	return e.node
}

// Parent returns the parent element, or nil for a detached element.
func (e *Element) Parent() *Element {
	return valueOf(e.node.Parent())
}

// Children iterates over direct children in paint order.
func (e *Element) Children() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for n := range e.node.Children() {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// NumChildren returns the number of direct children.
func (e *Element) NumChildren() int {
	return e.node.NumChildren()
}

// AddChild makes child the last child of e, moving it from its old parent if
// needed. Adding an existing child leaves the order unchanged. Returns
// grove.ErrCycle if child is e or one of its ancestors.
func (e *Element) AddChild(child *Element) error {
	return child.SetParent(e)
}

// InsertBefore places child immediately before before, which must already be
// a child of e.
func (e *Element) InsertBefore(child, before *Element) error {
	if before == nil {
		return e.AddChild(child)
	}
	if !before.node.IsChildOf(e.node) {
		return errors.WithStack(grove.ErrNotAChild)
	}
	if child == before {
		return nil
	}
	if child == e || child.node.IsAncestorOf(e.node) {
		return errors.WithStack(grove.ErrCycle)
	}
	child.node.RemoveFromParent()
	return e.node.InsertBefore(child.node, before.node)
}

// RemoveChild detaches child from e. Returns grove.ErrNotAChild if child
// belongs elsewhere.
func (e *Element) RemoveChild(child *Element) error {
	if child == nil {
		return errors.WithStack(grove.ErrNotAChild)
	}
	return e.node.RemoveChild(child.node)
}

// SetParent moves e under parent. A nil parent detaches e.
func (e *Element) SetParent(parent *Element) error {
	var pn *grove.Node[*Element]
	if parent != nil {
		pn = parent.node
	}
	return e.node.SetParent(pn)
}

// Remove detaches e from its parent, if any.
func (e *Element) Remove() {
	e.node.RemoveFromParent()
}

// AbsolutePosition sums the relative positions of e and all its ancestors.
func (e *Element) AbsolutePosition() geom.Vec2 {
	var pos geom.Vec2
	grove.Bubble(e.node, func(n *grove.Node[*Element]) bool {
		pos = pos.Add(n.Value.Position)
		return true
	})
	return pos
}

// Bounds returns e's rectangle in screen coordinates.
func (e *Element) Bounds() geom.Rect {
	return geom.RectFrom(e.AbsolutePosition(), e.Size)
}

// Contains reports whether p lies within e's bounds, edges included.
func (e *Element) Contains(p geom.Vec2) bool {
	return e.Bounds().Contains(p.X, p.Y)
}

// Find returns the first descendant named name, searching depth-first, or nil.
func (e *Element) Find(name string) *Element {
	for n := range e.node.Descendants(grove.DepthFirst) {
		if n.Value.Name == name {
			return n.Value
		}
	}
	return nil
}

func valueOf(n *grove.Node[*Element]) *Element {
	if n == nil {
		return nil
	}
	return n.Value
}
