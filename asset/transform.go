package asset

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/aura/vmath"
)

// parseTransform reads an SVG transform list; functions compose left to right
// Supports translate, scale, rotate (degrees, optional centre), matrix, skewX and skewY
func parseTransform(s string) (gg.Matrix, error) {
	m := gg.Identity()
	rest := strings.TrimSpace(s)
	for rest != "" {
		name, after, ok := strings.Cut(rest, "(")
		if !ok {
			return m, fmt.Errorf("missing '(' in %q", rest)
		}
		argText, tail, ok := strings.Cut(after, ")")
		if !ok {
			return m, fmt.Errorf("missing ')' in %q", rest)
		}
		args, err := parseFloatList(argText)
		if err != nil {
			return m, fmt.Errorf("%s arguments: %w", strings.TrimSpace(name), err)
		}
		fn, err := transformFunc(strings.TrimSpace(name), args)
		if err != nil {
			return m, err
		}
		m = m.Multiply(fn)
		rest = strings.TrimLeft(tail, " \t\r\n,")
	}
	return m, nil
}

func transformFunc(name string, args []float64) (gg.Matrix, error) {
	n := len(args)
	switch name {
	case "translate":
		if n == 1 {
			return gg.Translate(args[0], 0), nil
		}
		if n == 2 {
			return gg.Translate(args[0], args[1]), nil
		}
	case "scale":
		if n == 1 {
			return gg.Scale(args[0], args[0]), nil
		}
		if n == 2 {
			return gg.Scale(args[0], args[1]), nil
		}
	case "rotate":
		rad := 0.0
		if n > 0 {
			rad = args[0] * math.Pi / 180
		}
		if n == 1 {
			return gg.Rotate(rad), nil
		}
		if n == 3 {
			return gg.Translate(args[1], args[2]).
				Multiply(gg.Rotate(rad)).
				Multiply(gg.Translate(-args[1], -args[2])), nil
		}
	case "matrix":
		// SVG matrix(a b c d e f): x' = a*x + c*y + e, y' = b*x + d*y + f
		if n == 6 {
			return gg.Matrix{
				A: args[0], B: args[2], C: args[4],
				D: args[1], E: args[3], F: args[5],
			}, nil
		}
	case "skewX":
		if n == 1 {
			return gg.Shear(math.Tan(args[0]*math.Pi/180), 0), nil
		}
	case "skewY":
		if n == 1 {
			return gg.Shear(0, math.Tan(args[0]*math.Pi/180)), nil
		}
	default:
		return gg.Matrix{}, fmt.Errorf("unsupported function %q", name)
	}
	return gg.Matrix{}, fmt.Errorf("%s takes a different number of arguments than %d", name, n)
}

// transformAll maps every point of subpaths through m in place
func transformAll(subpaths [][]vmath.Vec2, m gg.Matrix) {
	if m.IsIdentity() {
		return
	}
	for _, sp := range subpaths {
		for i, p := range sp {
			q := m.TransformPoint(gg.Pt(p.X, p.Y))
			sp[i] = vmath.Vec2{X: q.X, Y: q.Y}
		}
	}
}
