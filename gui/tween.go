package gui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to two float64 fields of an Element together.
// Create one with TweenPosition or TweenSize and either register it with
// Scene.AddTween or call Update yourself each frame.
type TweenGroup struct {
	tweens [2]*gween.Tween
	fields [2]*float64
	target *Element
	Done   bool
}

// Target returns the element being animated.
func (g *TweenGroup) Target() *Element {
	return g.target
}

// Update advances the tweens by dt seconds and writes the values to the
// target. Once every tween has finished Done is set and later calls do nothing.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Stop ends the animation where it is.
func (g *TweenGroup) Stop() {
	g.Done = true
}

func newTweenGroup(e *Element, x, y *float64, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	g := &TweenGroup{target: e}
	g.tweens[0] = gween.New(float32(*x), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(*y), float32(toY), duration, fn)
	g.fields[0] = x
	g.fields[1] = y
	return g
}

// TweenPosition animates e.Position to (toX, toY) over duration seconds.
// A nil easing function means linear.
func TweenPosition(e *Element, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(e, &e.Position.X, &e.Position.Y, toX, toY, duration, fn)
}

// TweenSize animates e.Size to (toW, toH) over duration seconds.
func TweenSize(e *Element, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(e, &e.Size.X, &e.Size.Y, toW, toH, duration, fn)
}
