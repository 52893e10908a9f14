package gui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/grove/geom"
)

// Painter is the drawing surface a Scene paints onto. All rectangles are in
// screen coordinates. PushClip and PopClip calls are always balanced within
// one Scene.Draw.
type Painter interface {
	// Size returns the drawable area.
	Size() geom.Vec2
	FillRect(r geom.Rect, c Color)
	// StrokeRect outlines r with a border of the given width drawn inside r.
	StrokeRect(r geom.Rect, width float64, c Color)
	// PushClip restricts drawing to r intersected with the current clip.
	PushClip(r geom.Rect)
	PopClip()
}

// EbitenPainter implements Painter on an *ebiten.Image. Solid fills are drawn
// by scaling a 1x1 white image; clipping draws into SubImages of the target.
type EbitenPainter struct {
	screen *ebiten.Image
	white  *ebiten.Image
	clips  []clipEntry
	op     ebiten.DrawImageOptions
}

type clipEntry struct {
	rect   image.Rectangle
	target *ebiten.Image // nil when the clip is empty
}

var _ Painter = (*EbitenPainter)(nil)

// NewEbitenPainter creates a painter drawing onto screen. Reuse it across
// frames with Reset.
func NewEbitenPainter(screen *ebiten.Image) *EbitenPainter {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	p := &EbitenPainter{white: white}
	p.Reset(screen)
	return p
}

// Reset retargets the painter and drops any clips left from a previous frame.
func (p *EbitenPainter) Reset(screen *ebiten.Image) {
	p.screen = screen
	p.clips = p.clips[:0]
}

// Size returns the width and height of the screen image.
func (p *EbitenPainter) Size() geom.Vec2 {
	b := p.screen.Bounds()
	return geom.Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}
}

// target returns the image to draw into, or nil if everything is clipped away.
func (p *EbitenPainter) target() *ebiten.Image {
	if len(p.clips) == 0 {
		return p.screen
	}
	return p.clips[len(p.clips)-1].target
}

// FillRect draws a solid rectangle by scaling the 1x1 white image. Empty
// rectangles, transparent colors and fully clipped draws are skipped.
func (p *EbitenPainter) FillRect(r geom.Rect, c Color) {
	dst := p.target()
	if dst == nil || r.Empty() || c.A <= 0 {
		return
	}
	p.op.GeoM.Reset()
	p.op.GeoM.Scale(r.Width, r.Height)
	p.op.GeoM.Translate(r.X, r.Y)
	p.op.ColorScale.Reset()
	p.op.ColorScale.Scale(c.premultiplied())
	dst.DrawImage(p.white, &p.op)
}

// StrokeRect draws the four edges of r as filled strips. The width is capped
// at half the shorter side so the strips never overlap.
func (p *EbitenPainter) StrokeRect(r geom.Rect, width float64, c Color) {
	if width <= 0 {
		return
	}
	width = math.Min(width, math.Min(r.Width, r.Height)/2)
	p.FillRect(geom.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: width}, c)
	p.FillRect(geom.Rect{X: r.X, Y: r.Y + r.Height - width, Width: r.Width, Height: width}, c)
	inner := r.Height - 2*width
	p.FillRect(geom.Rect{X: r.X, Y: r.Y + width, Width: width, Height: inner}, c)
	p.FillRect(geom.Rect{X: r.X + r.Width - width, Y: r.Y + width, Width: width, Height: inner}, c)
}

// PushClip narrows drawing to r, rounded out to whole pixels and intersected
// with the current clip. A clip with no area suppresses drawing until popped.
func (p *EbitenPainter) PushClip(r geom.Rect) {
	cur := p.screen.Bounds()
	if len(p.clips) > 0 {
		cur = p.clips[len(p.clips)-1].rect
	}
	rect := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	).Intersect(cur)

	e := clipEntry{rect: rect}
	if !rect.Empty() {
		e.target = p.screen.SubImage(rect).(*ebiten.Image)
	}
	p.clips = append(p.clips, e)
}

// PopClip restores the previous clip. Popping an empty stack is a no-op.
func (p *EbitenPainter) PopClip() {
	if len(p.clips) == 0 {
		return
	}
	p.clips[len(p.clips)-1] = clipEntry{}
	p.clips = p.clips[:len(p.clips)-1]
}

// ClipDepth returns the number of clips currently pushed.
func (p *EbitenPainter) ClipDepth() int {
	return len(p.clips)
}
