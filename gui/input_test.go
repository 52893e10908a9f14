package gui

import (
	"slices"
	"testing"

	"github.com/phanxgames/grove/geom"
)

// --- Click ---

func TestClickBubblesToAncestors(t *testing.T) {
	var calls []string
	s, els := buildScene(t, &calls)
	var log []string
	els["a"].OnClick = func(e PointerEvent) bool {
		log = append(log, "a:"+e.Target.Name)
		return false
	}
	els["panel"].OnClick = func(e PointerEvent) bool {
		log = append(log, "panel:"+e.Target.Name)
		return true
	}
	els["root"].OnClick = func(PointerEvent) bool {
		log = append(log, "root")
		return true
	}

	// (20,20) lands on overlay; move it away to reach a.
	els["overlay"].Visible = false
	got := s.Click(geom.Vec2{X: 20, Y: 20})
	if got != els["panel"] {
		t.Errorf("handled by %v, want panel", got)
	}
	if !slices.Equal(log, []string{"a:a", "panel:a"}) {
		t.Errorf("log = %v, want [a:a panel:a]", log)
	}
}

func TestClickUnhandled(t *testing.T) {
	var calls []string
	s, _ := buildScene(t, &calls)
	if got := s.Click(geom.Vec2{X: 20, Y: 20}); got != nil {
		t.Errorf("handled by %v, want nil", got)
	}
	if got := s.Click(geom.Vec2{X: 500, Y: 500}); got != nil {
		t.Errorf("click outside handled by %v", got)
	}
}

func TestPointerEventLocal(t *testing.T) {
	var calls []string
	s, els := buildScene(t, &calls)
	els["overlay"].Visible = false
	var local geom.Vec2
	els["a"].OnClick = func(e PointerEvent) bool {
		local = e.Local()
		return true
	}
	s.Click(geom.Vec2{X: 20, Y: 25})
	if local != (geom.Vec2{X: 5, Y: 10}) {
		t.Errorf("Local = %+v, want {5 10}", local)
	}
}

// --- Hover ---

func TestPointerMoveEnterLeave(t *testing.T) {
	var calls []string
	s, els := buildScene(t, &calls)
	var log []string
	for _, name := range []string{"b", "panel"} {
		e := els[name]
		e.OnPointerEnter = func(PointerEvent) { log = append(log, "enter "+name) }
		e.OnPointerLeave = func(PointerEvent) { log = append(log, "leave "+name) }
	}

	s.PointerMove(geom.Vec2{X: 100, Y: 30})  // panel
	s.PointerMove(geom.Vec2{X: 101, Y: 31})  // still panel
	s.PointerMove(geom.Vec2{X: 70, Y: 70})   // b
	s.PointerMove(geom.Vec2{X: 150, Y: 150}) // root

	want := []string{"enter panel", "leave panel", "enter b", "leave b"}
	if !slices.Equal(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	if s.Hovered() != els["root"] {
		t.Errorf("Hovered = %v, want root", s.Hovered())
	}
}
