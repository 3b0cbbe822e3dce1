package vmath

import "math"

// Clamp limits v to [lo, hi]; NaN maps to lo
func Clamp(v, lo, hi float64) float64 {
	if v >= hi {
		return hi
	}
	if v >= lo {
		return v
	}
	return lo
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseInOutCubic maps linear progress in [0,1] onto a cubic S-curve
func EaseInOutCubic(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

// EaseOutCubic decelerates toward 1
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	f := 1 - t
	return 1 - f*f*f
}

// GCD returns the greatest common divisor of |a| and |b|
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// TwoPi is a full turn in radians
const TwoPi = 2 * math.Pi
