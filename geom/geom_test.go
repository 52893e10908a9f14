package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func assertVec(t *testing.T, got, want Vec2) {
	t.Helper()
	if !approx(got.X, want.X) || !approx(got.Y, want.Y) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

// --- Vec2 ---

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 5}
	assertVec(t, a.Add(b), Vec2{4, 7})
	assertVec(t, b.Sub(a), Vec2{2, 3})
	assertVec(t, a.Mul(b), Vec2{3, 10})
	assertVec(t, a.Scale(-2), Vec2{-2, -4})
	assertVec(t, Zero(), Vec2{})
	assertVec(t, One(), Vec2{1, 1})
}

func TestVec2Len(t *testing.T) {
	if got := (Vec2{3, 4}).Len(); !approx(got, 5) {
		t.Errorf("Len = %v, want 5", got)
	}
}

func TestVec2Normalized(t *testing.T) {
	assertVec(t, Vec2{0, 10}.Normalized(), Vec2{0, 1})
	assertVec(t, Vec2{3, 4}.Normalized(), Vec2{0.6, 0.8})
	assertVec(t, Vec2{}.Normalized(), Vec2{})
}

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	tests := []struct {
		x, y float64
		want bool
	}{
		{20, 30, true},
		{10, 20, true}, // top-left corner
		{40, 60, true}, // bottom-right corner
		{9.9, 30, false},
		{20, 60.1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	if !r.Intersects(Rect{5, 5, 10, 10}) {
		t.Error("overlapping rects should intersect")
	}
	if !r.Intersects(Rect{10, 0, 5, 5}) {
		t.Error("edge-sharing rects should intersect")
	}
	if r.Intersects(Rect{11, 0, 5, 5}) {
		t.Error("disjoint rects should not intersect")
	}
}

func TestRectIntersection(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	if got := a.Intersection(Rect{5, 2, 10, 4}); got != (Rect{5, 2, 5, 4}) {
		t.Errorf("Intersection = %+v", got)
	}
	if got := a.Intersection(Rect{20, 20, 5, 5}); !got.Empty() {
		t.Errorf("disjoint Intersection = %+v, want empty", got)
	}
	if got := a.Intersection(Rect{10, 0, 5, 5}); !got.Empty() {
		t.Error("edge-only overlap has no area")
	}
}

func TestRectTranslate(t *testing.T) {
	r := Rect{1, 2, 3, 4}.Translate(Vec2{10, 20})
	if r != (Rect{11, 22, 3, 4}) {
		t.Errorf("Translate = %+v", r)
	}
	assertVec(t, r.Min(), Vec2{11, 22})
	assertVec(t, r.Max(), Vec2{14, 26})
}

// --- Quad ---

func TestQuadCornersInAnyOrder(t *testing.T) {
	q := Quad{A: Vec2{10, 0}, B: Vec2{0, 10}}
	assertVec(t, q.Min(), Vec2{0, 0})
	assertVec(t, q.Max(), Vec2{10, 10})
	if !q.Contains(5, 5) || !q.Contains(10, 0) {
		t.Error("Contains should accept interior and edge points")
	}
	if q.Contains(-1, 5) || q.Contains(5, 11) {
		t.Error("Contains should reject outside points")
	}
	if q.Rect() != (Rect{0, 0, 10, 10}) {
		t.Errorf("Rect = %+v", q.Rect())
	}
}

// --- Circle ---

func TestCircleContains(t *testing.T) {
	c := Circle{C: Vec2{5, 5}, R: 2}
	if !c.Contains(5, 5) || !c.Contains(7, 5) {
		t.Error("center and edge should be inside")
	}
	if c.Contains(7, 7) {
		t.Error("(7,7) is outside")
	}
}

// --- Line ---

func TestLineClosestPoint(t *testing.T) {
	l := Line{A: Vec2{0, 0}, B: Vec2{10, 0}}
	assertVec(t, l.ClosestPoint(Vec2{5, 3}), Vec2{5, 0})
	assertVec(t, l.ClosestPoint(Vec2{-4, 3}), Vec2{0, 0})
	assertVec(t, l.ClosestPoint(Vec2{14, -3}), Vec2{10, 0})
}

func TestLineDistanceTo(t *testing.T) {
	l := Line{A: Vec2{0, 0}, B: Vec2{10, 0}}
	if got := l.DistanceTo(Vec2{5, 3}); !approx(got, 3) {
		t.Errorf("DistanceTo = %v, want 3", got)
	}
	if got := l.DistanceTo(Vec2{13, 4}); !approx(got, 5) {
		t.Errorf("DistanceTo past the end = %v, want 5", got)
	}
}

func TestLineDegenerate(t *testing.T) {
	l := Line{A: Vec2{2, 2}, B: Vec2{2, 2}}
	assertVec(t, l.ClosestPoint(Vec2{5, 6}), Vec2{2, 2})
	if got := l.DistanceTo(Vec2{5, 6}); !approx(got, 5) {
		t.Errorf("DistanceTo = %v, want 5", got)
	}
}
