package vmath

import "math"

// Simplify reduces a polyline with Douglas–Peucker
// Output is an ordered subset of points; endpoints are always kept
// A point is dropped only when its deviation is <= tolerance, so tolerance 0 removes collinear points only
// Negative or non-finite tolerance is treated as 0
func Simplify[P Planar](points []P, tolerance float64) []P {
	if len(points) < 3 {
		out := make([]P, len(points))
		copy(out, points)
		return out
	}
	if !IsFinite(tolerance) || tolerance < 0 {
		tolerance = 0
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true
	simplifyRange(points, 0, len(points)-1, tolerance, keep)

	out := make([]P, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

// simplifyRange marks the farthest point between first and last and recurses on both halves
func simplifyRange[P Planar](points []P, first, last int, tolerance float64, keep []bool) {
	if last-first < 2 {
		return
	}

	maxDist := -1.0
	index := first
	for i := first + 1; i < last; i++ {
		d := lineDistance(points[i], points[first], points[last])
		if d > maxDist {
			maxDist = d
			index = i
		}
	}

	if maxDist > tolerance {
		keep[index] = true
		simplifyRange(points, first, index, tolerance, keep)
		simplifyRange(points, index, last, tolerance, keep)
	}
}

// lineDistance returns the perpendicular distance from p to the line through a and b
// A degenerate chord falls back to the distance from p to a
func lineDistance[P Planar](p, a, b P) float64 {
	px, py := p.XY()
	ax, ay := a.XY()
	bx, by := b.XY()

	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		return math.Hypot(px-ax, py-ay)
	}
	return math.Abs(dx*(py-ay)-dy*(px-ax)) / length
}
