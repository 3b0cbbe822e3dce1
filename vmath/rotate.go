package vmath

import "math"

// Rotate3D rotates p about the X axis by ax, then about the Y axis by ay
func Rotate3D(p Vec3F, ax, ay float64) Vec3F {
	sinX, cosX := math.Sincos(ax)
	y := p.Y*cosX - p.Z*sinX
	z := p.Y*sinX + p.Z*cosX

	sinY, cosY := math.Sincos(ay)
	x := p.X*cosY + z*sinY
	z = -p.X*sinY + z*cosY

	return Vec3F{X: x, Y: y, Z: z}
}

// Unrotate3D is the inverse of Rotate3D: Y by -ay, then X by -ax
func Unrotate3D(p Vec3F, ax, ay float64) Vec3F {
	sinY, cosY := math.Sincos(-ay)
	x := p.X*cosY + p.Z*sinY
	z := -p.X*sinY + p.Z*cosY

	sinX, cosX := math.Sincos(-ax)
	y := p.Y*cosX - z*sinX
	z = p.Y*sinX + z*cosX

	return Vec3F{X: x, Y: y, Z: z}
}

// minPerspectiveDenom bounds d+z away from zero
const minPerspectiveDenom = 1e-6

// Project applies perspective division: scale = d / (d + z)
// Callers keep |z| < d; the denominator is clamped so a violation never divides by zero
func Project(p Vec3F, perspective float64) Vec2 {
	denom := perspective + p.Z
	if denom < minPerspectiveDenom {
		denom = minPerspectiveDenom
	}
	s := perspective / denom
	return Vec2{X: p.X * s, Y: p.Y * s}
}
