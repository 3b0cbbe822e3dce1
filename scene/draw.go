package scene

import (
	"github.com/lixenwraith/aura/render"
	"github.com/lixenwraith/aura/vmath"
)

// pathStroker stamps one polyline per symmetry transform
type pathStroker struct {
	out []vmath.Vec2
}

// stroke draws pts once for every transform, mirrored, rotated with drift,
// tilted and projected in 3d, and translated to the geometry centre
func (s *pathStroker) stroke(c render.Canvas, pts []vmath.Vec3F, transforms []Transform,
	sym Symmetry, style Style, g Geometry, is3D bool, t float64) {
	if len(pts) < 2 {
		return
	}
	drift := t * sym.RotationSpeed
	tiltX, tiltY := sym.Tilt(t)

	c.SetLineWidth(style.LineWidth)
	for i, tr := range transforms {
		s.out = s.out[:0]
		for _, p := range pts {
			x, y := tr.Apply(p.X, p.Y, drift)
			var q vmath.Vec2
			if is3D {
				q = vmath.Project(vmath.Rotate3D(vmath.Vec3F{X: x, Y: y, Z: p.Z}, tiltX, tiltY), g.Perspective)
			} else {
				q = vmath.Vec2{X: x, Y: y}
			}
			s.out = append(s.out, vmath.Vec2{X: q.X + g.CenterX, Y: q.Y + g.CenterY})
		}
		c.SetStrokeColor(style.Color(i))
		render.Polyline(c, s.out)
		c.Stroke()
	}
}
