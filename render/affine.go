package render

import "math"

// Affine is a 2x3 row-major transform
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Translate returns a translation transform
func Translate(x, y float64) Affine {
	return Affine{A: 1, C: x, E: 1, F: y}
}

// Scale returns a scaling transform
func Scale(x, y float64) Affine {
	return Affine{A: x, E: y}
}

// Multiply returns m * other: other is applied first
func (m Affine) Multiply(other Affine) Affine {
	return Affine{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms a point
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// LinearScale returns the average scale factor, used for widths and dash lengths
func (m Affine) LinearScale() float64 {
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}
