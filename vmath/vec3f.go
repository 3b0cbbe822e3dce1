package vmath

import (
	"math"
)

// Vec3F is a float64 3D point used for curve samples and projected geometry
type Vec3F struct {
	X, Y, Z float64
}

// XY implements Planar
func (v Vec3F) XY() (float64, float64) { return v.X, v.Y }

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FDistXY returns the planar distance between a and b, ignoring Z
func V3FDistXY(a, b Vec3F) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
