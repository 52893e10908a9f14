// Package gui is a small retained-mode GUI layer built on the grove hierarchy.
//
// Every [Element] owns a grove node, so parenting, reparenting and child order
// follow grove's rules. Positions are relative to the parent; a [Scene] walks
// the tree pre-order to paint it through a [Painter], pruning invisible
// subtrees and clipping children of elements with ClipChildren set.
//
// # Quick start
//
//	scene := gui.NewScene(gui.SceneConfig{Width: 640, Height: 480})
//
//	panel := gui.NewElement("panel")
//	panel.Position = geom.Vec2{X: 20, Y: 20}
//	panel.Size = geom.Vec2{X: 200, Y: 120}
//	panel.Paint = gui.Fill(gui.Color{R: 0.2, G: 0.3, B: 0.5, A: 1})
//	_ = scene.Root().AddChild(panel)
//
//	// in ebiten's Draw:
//	painter.Reset(screen)
//	scene.Draw(painter)
//
// [EbitenPainter] draws onto an *ebiten.Image. Tests and headless tools can
// implement [Painter] directly.
//
// # Animation
//
// [TweenPosition] and [TweenSize] build a [TweenGroup] backed by gween. Hand
// it to [Scene.AddTween] and call [Scene.Update] each tick, or drive it
// yourself with [TweenGroup.Update].
//
// # Debug mode
//
// [Scene.SetDebugMode] turns on per-draw statistics and warnings for deep
// trees or very wide nodes. They are written through the scene's
// charmbracelet/log logger, which discards everything until [Scene.SetLogger]
// is called.
package gui
