package geom

import "math"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFrom builds a Rect from a position and a size.
func RectFrom(pos, size Vec2) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{r.X + r.Width, r.Y + r.Height} }

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Intersection returns the overlap of r and other. Disjoint rectangles
// yield a zero-size Rect; check with Empty.
func (r Rect) Intersection(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.X+r.Width, other.X+other.Width)
	y1 := math.Min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Quad is a rectangle given by two opposite corners in any order.
type Quad struct {
	A, B Vec2
}

// Min returns the corner with the smallest coordinates.
func (q Quad) Min() Vec2 {
	return Vec2{math.Min(q.A.X, q.B.X), math.Min(q.A.Y, q.B.Y)}
}

// Max returns the corner with the largest coordinates.
func (q Quad) Max() Vec2 {
	return Vec2{math.Max(q.A.X, q.B.X), math.Max(q.A.Y, q.B.Y)}
}

// Rect converts q to its normalized Rect.
func (q Quad) Rect() Rect {
	return RectFrom(q.Min(), q.Max().Sub(q.Min()))
}

// Contains reports whether (x, y) lies inside q, edges included.
func (q Quad) Contains(x, y float64) bool {
	lo, hi := q.Min(), q.Max()
	return x >= lo.X && x <= hi.X && y >= lo.Y && y <= hi.Y
}

// Circle is a disc with center C and radius R.
type Circle struct {
	C Vec2
	R float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c Circle) Contains(x, y float64) bool {
	dx, dy := x-c.C.X, y-c.C.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// Line is the segment between A and B.
type Line struct {
	A, B Vec2
}

// ClosestPoint returns the point on the segment nearest to p.
// A degenerate segment returns A.
func (l Line) ClosestPoint(p Vec2) Vec2 {
	d := l.B.Sub(l.A)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return l.A
	}
	t := ((p.X-l.A.X)*d.X + (p.Y-l.A.Y)*d.Y) / lenSq
	t = max(0, min(1, t))
	return l.A.Add(d.Scale(t))
}

// DistanceTo returns the shortest distance from p to the segment.
func (l Line) DistanceTo(p Vec2) float64 {
	return l.ClosestPoint(p).Sub(p).Len()
}
