package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/grove"
	"github.com/phanxgames/grove/geom"
)

// PointerEvent describes a pointer interaction. Target is the element under
// the pointer; Current is the element whose handler is running, which differs
// from Target while a click bubbles up the tree.
type PointerEvent struct {
	Pos     geom.Vec2
	Target  *Element
	Current *Element
}

// Local returns the pointer position relative to Current's top-left corner.
func (e PointerEvent) Local() geom.Vec2 {
	if e.Current == nil {
		return e.Pos
	}
	return e.Pos.Sub(e.Current.AbsolutePosition())
}

// pointerState tracks the mouse between frames.
type pointerState struct {
	last    geom.Vec2
	hovered *Element
}

// Hovered returns the element the pointer was last seen over, or nil.
func (s *Scene) Hovered() *Element {
	return s.pointer.hovered
}

// PointerMove updates the hovered element, firing OnPointerLeave on the old
// one and OnPointerEnter on the new one when they differ.
func (s *Scene) PointerMove(pos geom.Vec2) {
	s.pointer.last = pos
	hit := s.HitTest(pos)
	prev := s.pointer.hovered
	if hit == prev {
		return
	}
	s.pointer.hovered = hit
	if prev != nil && prev.OnPointerLeave != nil {
		prev.OnPointerLeave(PointerEvent{Pos: pos, Target: prev, Current: prev})
	}
	if hit != nil && hit.OnPointerEnter != nil {
		hit.OnPointerEnter(PointerEvent{Pos: pos, Target: hit, Current: hit})
	}
}

// Click dispatches a click at pos. OnClick handlers run from the hit element
// up through its ancestors until one returns true. Returns the element that
// handled the click, or nil.
func (s *Scene) Click(pos geom.Vec2) *Element {
	target := s.HitTest(pos)
	if target == nil {
		return nil
	}
	var handledBy *Element
	grove.Bubble(target.node, func(n *grove.Node[*Element]) bool {
		e := n.Value
		if e.OnClick == nil {
			return true
		}
		if e.OnClick(PointerEvent{Pos: pos, Target: target, Current: e}) {
			handledBy = e
			return false
		}
		return true
	})
	if handledBy != nil {
		s.logger.Debug("click handled", "target", target.Name, "by", handledBy.Name)
	}
	return handledBy
}

// ProcessInput reads the mouse from ebiten and feeds PointerMove and Click.
// Call it once per tick from the game's Update.
func (s *Scene) ProcessInput() {
	mx, my := ebiten.CursorPosition()
	pos := geom.Vec2{X: float64(mx), Y: float64(my)}
	if pos != s.pointer.last || s.pointer.hovered == nil {
		s.PointerMove(pos)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.Click(pos)
	}
}
