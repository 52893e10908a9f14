package gui

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/phanxgames/grove"
	"github.com/phanxgames/grove/geom"
)

// SceneConfig configures a new Scene. The zero value is usable.
type SceneConfig struct {
	// Width and Height size the root element.
	Width, Height float64

	// Debug enables draw statistics and tree warnings from the start.
	Debug bool

	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// Scene owns the root element and the running tweens.
type Scene struct {
	root    *Element
	tweens  []*TweenGroup
	frames  []frame
	pointer pointerState
	debug   bool
	logger  *log.Logger
}

// frame is the walk state for one entered element: the absolute origin of its
// children and the clip they are confined to.
type frame struct {
	origin  geom.Vec2
	clip    geom.Rect
	hasClip bool // clip is meaningful
	pushed  bool // a Painter clip was pushed for this frame
}

// NewScene creates a scene with a root element named "root".
func NewScene(cfg SceneConfig) *Scene {
	root := NewElement("root")
	root.Size = geom.Vec2{X: cfg.Width, Y: cfg.Height}
	s := &Scene{root: root, debug: cfg.Debug}
	s.SetLogger(cfg.Logger)
	return s
}

// Root returns the scene's root element.
func (s *Scene) Root() *Element {
	return s.root
}

// SetLogger replaces the scene's logger. Nil discards output.
func (s *Scene) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	s.logger = l
}

// SetDebugMode enables or disables debug mode. When enabled, every Draw logs
// its statistics and warns about trees deeper than 32 levels or elements with
// more than 1000 children.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// AddTween registers g to be advanced by Update. Finished groups are dropped
// automatically.
func (s *Scene) AddTween(g *TweenGroup) {
	if g == nil || g.Done {
		return
	}
	s.tweens = append(s.tweens, g)
}

// Tweens returns the running tween groups. The returned slice MUST NOT be mutated.
func (s *Scene) Tweens() []*TweenGroup {
	return s.tweens
}

// Update advances every registered tween by dt seconds.
func (s *Scene) Update(dt float32) {
	for _, g := range s.tweens {
		g.Update(dt)
	}
	s.tweens = slices.DeleteFunc(s.tweens, func(g *TweenGroup) bool { return g.Done })
}

// walk drives a pre-order traversal of the visible tree. visit receives each
// visible element with its screen bounds and the frame of its parent.
func (s *Scene) walk(visit func(e *Element, bounds geom.Rect, parent *frame), enter func(e *Element, f *frame), leave func(e *Element, f frame)) {
	s.frames = append(s.frames[:0], frame{})
	grove.Walk(grove.Visitor[*Element]{
		OnVisit: func(n *grove.Node[*Element]) {
			e := n.Value
			if !e.Visible {
				return
			}
			top := &s.frames[len(s.frames)-1]
			visit(e, geom.RectFrom(top.origin.Add(e.Position), e.Size), top)
		},
		CanEnter: func(n *grove.Node[*Element]) bool {
			return n.Value.Visible
		},
		OnEnter: func(n *grove.Node[*Element]) {
			e := n.Value
			top := s.frames[len(s.frames)-1]
			f := frame{origin: top.origin.Add(e.Position), clip: top.clip, hasClip: top.hasClip}
			if e.ClipChildren {
				b := geom.RectFrom(f.origin, e.Size)
				if f.hasClip {
					f.clip = f.clip.Intersection(b)
				} else {
					f.clip = b
				}
				f.hasClip = true
			}
			if enter != nil {
				enter(e, &f)
			}
			s.frames = append(s.frames, f)
		},
		OnLeave: func(n *grove.Node[*Element]) {
			f := s.frames[len(s.frames)-1]
			s.frames = s.frames[:len(s.frames)-1]
			if leave != nil {
				leave(n.Value, f)
			}
		},
	}, s.root.node)
}

// Draw paints the tree onto p in pre-order: parents before children, siblings
// in order. Invisible elements and their subtrees are skipped.
func (s *Scene) Draw(p Painter) {
	var stats drawStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.walk(
		func(e *Element, bounds geom.Rect, parent *frame) {
			stats.visited++
			if depth := len(s.frames); depth > stats.maxDepth {
				stats.maxDepth = depth
			}
			if e.Paint == nil {
				return
			}
			if parent.hasClip && parent.clip.Empty() {
				stats.culled++
				return
			}
			e.Paint(p, bounds)
			stats.painted++
		},
		func(e *Element, f *frame) {
			if s.debug {
				s.debugCheckChildCount(e)
			}
			if e.ClipChildren {
				p.PushClip(geom.RectFrom(f.origin, e.Size))
				f.pushed = true
				stats.clips++
			}
		},
		func(_ *Element, f frame) {
			if f.pushed {
				p.PopClip()
			}
		},
	)

	if s.debug {
		stats.elapsed = time.Since(t0)
		s.debugCheckTreeDepth(stats.maxDepth)
		s.debugLog(stats)
	}
}

// HitTest returns the topmost visible element containing point, that is the
// last one Draw would paint there, or nil. Clipped-away parts of an element do
// not count.
func (s *Scene) HitTest(point geom.Vec2) *Element {
	var hit *Element
	s.walk(func(e *Element, bounds geom.Rect, parent *frame) {
		if !bounds.Contains(point.X, point.Y) {
			return
		}
		if parent.hasClip && (parent.clip.Empty() || !parent.clip.Contains(point.X, point.Y)) {
			return
		}
		hit = e
	}, nil, nil)
	return hit
}
