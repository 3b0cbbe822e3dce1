package vmath

import "math"

// Vec2 is a projected screen-space point
type Vec2 struct {
	X, Y float64
}

// XY implements Planar
func (v Vec2) XY() (float64, float64) { return v.X, v.Y }

// Planar is any point with a position in the XY plane
type Planar interface {
	XY() (x, y float64)
}

// Rotate2D rotates (x, y) counter-clockwise by angle radians about the origin
func Rotate2D(x, y, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}

// IsFinite reports whether v is neither NaN nor ±Inf
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Finite reports whether both coordinates are finite
func (v Vec2) Finite() bool { return IsFinite(v.X) && IsFinite(v.Y) }

// Dist2 returns the Euclidean distance between a and b
func Dist2(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
