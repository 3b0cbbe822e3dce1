package scene

import (
	"github.com/lixenwraith/aura/vmath"
)

// runeUnit is the amplitude in pixels at which rune pixel parameters are defined
const runeUnit = 300.0

// RunicPolyline turns a smooth scaled curve into carved strokes:
// simplify, snap each segment's angle and the vertices to the grid, then merge near-duplicates
// scale multiplies the pixel parameters; non-positive scale means 1
func RunicPolyline(pts []vmath.Vec3F, p RuneParams, scale float64) []vmath.Vec3F {
	if len(pts) < 2 {
		return append([]vmath.Vec3F(nil), pts...)
	}
	if scale <= 0 || !vmath.IsFinite(scale) {
		scale = 1
	}
	tolerance := p.Tolerance * scale
	minSegment := p.MinSegment * scale
	merge := p.MergeDistance * scale
	grid := p.GridSize * scale

	simplified := vmath.Simplify(pts, tolerance)

	snapped := make([]vmath.Vec3F, 0, len(simplified))
	x, y := vmath.SnapToGrid(simplified[0].X, simplified[0].Y, grid)
	snapped = append(snapped, vmath.Vec3F{X: x, Y: y, Z: simplified[0].Z})
	for _, q := range simplified[1:] {
		last := snapped[len(snapped)-1]
		dx, dy := q.X-last.X, q.Y-last.Y
		if dx*dx+dy*dy < minSegment*minSegment {
			continue
		}
		dx, dy = vmath.SnapToAngle(dx, dy, p.AngleStep)
		x, y := vmath.SnapToGrid(last.X+dx, last.Y+dy, grid)
		snapped = append(snapped, vmath.Vec3F{X: x, Y: y, Z: q.Z})
	}

	merged := make([]vmath.Vec3F, 0, len(snapped))
	for _, q := range snapped {
		if n := len(merged); n > 0 && vmath.V3FDistXY(merged[n-1], q) < merge {
			continue
		}
		merged = append(merged, q)
	}

	if len(merged) < 2 {
		// Too short to carve; keep the raw endpoints so the stroke stays visible
		return []vmath.Vec3F{pts[0], pts[len(pts)-1]}
	}
	return merged
}
