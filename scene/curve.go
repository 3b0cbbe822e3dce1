package scene

import (
	"math"

	"github.com/lixenwraith/aura/vmath"
)

// BasePoint is a normalized curve sample before amplitude scaling
type BasePoint struct {
	X, Y, Z float64
	DX, DY  float64
	T       float64
}

// XY implements vmath.Planar
func (p BasePoint) XY() (float64, float64) { return p.X, p.Y }

// LissajousCurve samples n points of the 3D Lissajous figure over [0, 2π)
func LissajousCurve(p LissajousParams, n int) []BasePoint {
	n = max(n, 2)
	pts := make([]BasePoint, n)
	fx, fy, fz := float64(p.FreqX), float64(p.FreqY), float64(p.FreqZ)
	for i := range pts {
		t := float64(i) / float64(n) * vmath.TwoPi
		pts[i] = BasePoint{
			X:  math.Sin(fx*t + p.PhaseX),
			Y:  math.Sin(fy*t + p.PhaseY),
			Z:  math.Sin(fz*t + p.PhaseZ),
			DX: fx * math.Cos(fx*t+p.PhaseX),
			DY: fy * math.Cos(fy*t+p.PhaseY),
			T:  t,
		}
	}
	return pts
}

// RuneCurve samples n points of the rose-like rune curve over [0, 2π)
func RuneCurve(p RuneParams, n int) []BasePoint {
	n = max(n, 2)
	pts := make([]BasePoint, n)
	a, b := float64(p.FreqA), float64(p.FreqB)
	for i := range pts {
		t := float64(i) / float64(n) * vmath.TwoPi
		su, cu := math.Sincos(a*t + p.Phase)
		sb, cb := math.Sincos(b * t)
		pts[i] = BasePoint{
			X:  su * cb,
			Y:  su * sb,
			Z:  0.5 * math.Cos(a*t),
			DX: a*cu*cb - b*su*sb,
			DY: a*cu*sb + b*su*cb,
			T:  t,
		}
	}
	return pts
}

// scalePoints writes the amplitude-scaled prefix of base into dst
func scalePoints(dst []vmath.Vec3F, base []BasePoint, g Geometry) []vmath.Vec3F {
	dst = dst[:0]
	for _, p := range base {
		dst = append(dst, vmath.Vec3F{X: p.X * g.AmpX, Y: p.Y * g.AmpY, Z: p.Z * g.AmpZ})
	}
	return dst
}
