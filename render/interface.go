package render

import "github.com/lixenwraith/aura/vmath"

// Canvas is the vector drawing surface scenes emit paths into
// Path methods accumulate a path in user space; Stroke and Fill consume it
type Canvas interface {
	// Size returns the drawing surface in device pixels
	Size() (width, height int)
	// SetTransform maps user space to device pixels for subsequent path points
	SetTransform(m Affine)
	// Clear resets the whole surface to the background
	Clear()

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	SetStrokeColor(c RGBA)
	SetFillColor(c RGBA)
	// SetLineWidth sets the stroke width in user units
	SetLineWidth(w float64)
	// SetLineDash sets a dash pattern in user units; nil or empty means solid
	SetLineDash(pattern []float64, offset float64)

	Stroke()
	Fill()
}

// Polyline appends pts to the current path as one connected run
func Polyline(c Canvas, pts []vmath.Vec2) {
	if len(pts) == 0 {
		return
	}
	c.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.LineTo(p.X, p.Y)
	}
}

// PolylineLength returns the summed segment length of pts
func PolylineLength(pts []vmath.Vec2) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += vmath.Dist2(pts[i-1], pts[i])
	}
	return total
}
