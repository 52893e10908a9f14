package gui

import "time"

// drawStats holds per-draw metrics. Only populated when the scene is in
// debug mode.
type drawStats struct {
	elapsed  time.Duration
	visited  int // visible elements reached
	painted  int
	culled   int // skipped because an ancestor's clip is empty
	clips    int
	maxDepth int
}

func (s *Scene) debugLog(stats drawStats) {
	s.logger.Info("draw",
		"elapsed", stats.elapsed,
		"visited", stats.visited,
		"painted", stats.painted,
		"culled", stats.culled,
		"clips", stats.clips,
		"depth", stats.maxDepth,
	)
}

const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns if the deepest visible element is nested further
// than the threshold. depth counts the root as 1.
func (s *Scene) debugCheckTreeDepth(depth int) {
	if depth > debugMaxTreeDepth {
		s.logger.Warn("tree depth exceeds threshold", "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

const debugMaxChildCount = 1000

func (s *Scene) debugCheckChildCount(e *Element) {
	if n := e.NumChildren(); n > debugMaxChildCount {
		s.logger.Warn("element has too many children",
			"element", e.Name, "children", n, "threshold", debugMaxChildCount)
	}
}
