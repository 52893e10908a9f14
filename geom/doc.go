// Package geom provides the small 2D value types the GUI layer measures with:
// [Vec2] for positions and sizes, [Rect] for element bounds, and [Quad],
// [Circle] and [Line] for hit regions.
//
// The coordinate system has its origin at the top-left, with Y increasing
// downward. All types are plain values; methods never mutate the receiver.
// Points on an edge are considered inside.
package geom
