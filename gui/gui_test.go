package gui

import (
	"fmt"
	"slices"
	"testing"

	"github.com/phanxgames/grove/geom"
)

// recordingPainter logs every call as a string.
type recordingPainter struct {
	size geom.Vec2
	ops  []string
}

func (p *recordingPainter) Size() geom.Vec2 { return p.size }

func (p *recordingPainter) FillRect(r geom.Rect, c Color) {
	p.ops = append(p.ops, fmt.Sprintf("fill %v,%v %vx%v", r.X, r.Y, r.Width, r.Height))
}

func (p *recordingPainter) StrokeRect(r geom.Rect, width float64, c Color) {
	p.ops = append(p.ops, fmt.Sprintf("stroke %v,%v %vx%v", r.X, r.Y, r.Width, r.Height))
}

func (p *recordingPainter) PushClip(r geom.Rect) {
	p.ops = append(p.ops, fmt.Sprintf("push %v,%v %vx%v", r.X, r.Y, r.Width, r.Height))
}

func (p *recordingPainter) PopClip() {
	p.ops = append(p.ops, "pop")
}

// named returns a PaintFunc that records the element's name.
func named(log *[]string, name string) PaintFunc {
	return func(Painter, geom.Rect) {
		*log = append(*log, name)
	}
}

func newBox(name string, x, y, w, h float64) *Element {
	e := NewElement(name)
	e.Position = geom.Vec2{X: x, Y: y}
	e.Size = geom.Vec2{X: w, Y: h}
	return e
}

func mustAdd(t *testing.T, parent, child *Element) {
	t.Helper()
	if err := parent.AddChild(child); err != nil {
		t.Fatalf("AddChild(%s, %s): %v", parent.Name, child.Name, err)
	}
}

func assertOps(t *testing.T, got, want []string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("ops =\n  %v\nwant\n  %v", got, want)
	}
}
