package vmath

import "math"

// SnapToAngle rounds the direction of (x, y) to the nearest multiple of step, preserving magnitude
// Non-positive or non-finite steps return the vector unchanged
func SnapToAngle(x, y, step float64) (float64, float64) {
	if !IsFinite(step) || step <= 0 {
		return x, y
	}
	mag := math.Hypot(x, y)
	if mag == 0 || !IsFinite(mag) {
		return x, y
	}
	angle := math.Round(math.Atan2(y, x)/step) * step
	sin, cos := math.Sincos(angle)
	return cos * mag, sin * mag
}

// SnapToGrid rounds x and y to the nearest multiple of grid
// Non-positive or non-finite grid falls back to 1; non-finite coordinates snap to 0
func SnapToGrid(x, y, grid float64) (float64, float64) {
	if !IsFinite(grid) || grid <= 0 {
		grid = 1
	}
	return snapAxis(x, grid), snapAxis(y, grid)
}

func snapAxis(v, grid float64) float64 {
	if !IsFinite(v) {
		return 0
	}
	s := math.Round(v/grid) * grid
	if !IsFinite(s) {
		return 0
	}
	return s
}
