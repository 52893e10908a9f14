package gui

import (
	"testing"

	"github.com/phanxgames/grove/geom"
)

// nopPainter discards everything.
type nopPainter struct{}

func (nopPainter) Size() geom.Vec2                      { return geom.Vec2{X: 1280, Y: 720} }
func (nopPainter) FillRect(geom.Rect, Color)            {}
func (nopPainter) StrokeRect(geom.Rect, float64, Color) {}
func (nopPainter) PushClip(geom.Rect)                   {}
func (nopPainter) PopClip()                             {}

// setupBenchScene builds panels of 10x10 cells, each panel clipping.
func setupBenchScene(b *testing.B, panels int) *Scene {
	b.Helper()
	s := NewScene(SceneConfig{Width: 1280, Height: 720})
	fill := Fill(ColorWhite)
	for p := 0; p < panels; p++ {
		panel := newBox("panel", float64(p%10)*120, float64(p/10)*70, 110, 60)
		panel.ClipChildren = true
		panel.Paint = fill
		if err := s.Root().AddChild(panel); err != nil {
			b.Fatal(err)
		}
		for i := 0; i < 100; i++ {
			cell := newBox("cell", float64(i%10)*11, float64(i/10)*6, 10, 5)
			cell.Paint = fill
			if err := panel.AddChild(cell); err != nil {
				b.Fatal(err)
			}
		}
	}
	return s
}

func BenchmarkSceneDraw_10kElements(b *testing.B) {
	s := setupBenchScene(b, 100)
	var p nopPainter
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Draw(p)
	}
}

func BenchmarkHitTest_10kElements(b *testing.B) {
	s := setupBenchScene(b, 100)
	pt := geom.Vec2{X: 640, Y: 360}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.HitTest(pt)
	}
}
