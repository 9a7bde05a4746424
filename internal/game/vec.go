package game

import "math"

// directionEpsilon is the shortest vector treated as a usable direction.
const directionEpsilon = 1e-6

// Vec2 is a world-space position, velocity or direction.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector along v. The bool is false when v is
// shorter than directionEpsilon or not finite, in which case the zero vector
// is returned.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if !(l >= directionEpsilon) || math.IsInf(l, 0) {
		return Vec2{}, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// DistSq returns the squared distance between a and b.
// Proximity checks compare against radius² to skip the square root.
func DistSq(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Within reports whether a and b are strictly closer than radius.
func Within(a, b Vec2, radius float64) bool {
	return DistSq(a, b) < radius*radius
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// CenteredRect returns a w×h box centred on c.
func CenteredRect(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Intersects reports whether r and o overlap with positive area.
// Boxes that only share an edge do not intersect, and a box with a
// non-positive dimension never intersects anything.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Center returns the middle of r.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
