package geom

import "math"

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions.
type Vec2 struct {
	X, Y float64
}

// Zero returns the vector (0, 0).
func Zero() Vec2 { return Vec2{} }

// One returns the vector (1, 1).
func One() Vec2 { return Vec2{1, 1} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Scale multiplies both components by m.
func (v Vec2) Scale(m float64) Vec2 {
	return Vec2{v.X * m, v.Y * m}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns a unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec2) Normalized() Vec2 {
	if v.X == 0 && v.Y == 0 {
		return Vec2{}
	}
	l := v.Len()
	return Vec2{v.X / l, v.Y / l}
}
