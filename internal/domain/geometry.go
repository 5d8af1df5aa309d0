package domain

import "math"

// Point is a pointer location in screen coordinates.
type Point struct {
	X, Y float64
}

// Finite reports whether both coordinates are usable numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is an axis-aligned rectangle. The origin is at the top-left, with Y
// increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Empty reports whether the rectangle has no usable area. Layout changes
// transiently produce such rectangles.
func (r Rect) Empty() bool {
	return !(r.Width > 0) || !(r.Height > 0)
}

// Area returns Width*Height, or 0 for an empty rectangle.
func (r Rect) Area() float64 {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside the rectangle. Points on the edge
// are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Relative returns p's position inside r as fractions of the width and
// height, clamped to [0,1].
func (r Rect) Relative(p Point) (rx, ry float64) {
	rx = clamp01((p.X - r.X) / r.Width)
	ry = clamp01((p.Y - r.Y) / r.Height)
	return rx, ry
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
