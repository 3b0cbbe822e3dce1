package render

import (
	"math"
	"slices"

	"github.com/lixenwraith/aura/vmath"
)

// DotBuffer is a software raster Canvas with per-pixel alpha blending
// Terminal backends downsample it into braille cells; tests inspect it directly
type DotBuffer struct {
	pix     []RGBA
	touched []bool
	stamped []uint32
	width   int
	height  int
	bg      RGBA

	m      Affine
	scale  float64
	paths  [][]vmath.Vec2
	stroke RGBA
	fill   RGBA
	lineW  float64
	dash   []float64
	dashOf float64

	strokeID uint32
}

// NewDotBuffer creates a buffer with the specified dimensions
func NewDotBuffer(width, height int) *DotBuffer {
	b := &DotBuffer{
		bg:     Black,
		stroke: White,
		fill:   White,
		lineW:  1,
	}
	b.SetTransform(Identity())
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *DotBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.pix) < size {
		b.pix = make([]RGBA, size)
		b.touched = make([]bool, size)
		b.stamped = make([]uint32, size)
	} else {
		b.pix = b.pix[:size]
		b.touched = b.touched[:size]
		b.stamped = b.stamped[:size]
	}
	clear(b.stamped)
	b.width = width
	b.height = height
	b.Clear()
}

// SetBackground sets the color Clear resets to
func (b *DotBuffer) SetBackground(c RGBA) {
	b.bg = c.WithAlpha(1)
}

// Clear resets all pixels to the background using exponential copy
func (b *DotBuffer) Clear() {
	b.paths = b.paths[:0]
	if len(b.pix) == 0 {
		return
	}
	b.pix[0] = b.bg
	b.touched[0] = false
	for filled := 1; filled < len(b.pix); filled *= 2 {
		copy(b.pix[filled:], b.pix[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Size returns buffer dimensions in pixels
func (b *DotBuffer) Size() (int, int) { return b.width, b.height }

// At returns the pixel at (x, y); out of bounds returns the background
func (b *DotBuffer) At(x, y int) RGBA {
	if !b.inBounds(x, y) {
		return b.bg
	}
	return b.pix[y*b.width+x]
}

// Touched reports whether any paint reached (x, y) since the last Clear
func (b *DotBuffer) Touched(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.touched[y*b.width+x]
}

// TouchedCount returns the number of painted pixels
func (b *DotBuffer) TouchedCount() int {
	n := 0
	for _, t := range b.touched {
		if t {
			n++
		}
	}
	return n
}

func (b *DotBuffer) SetTransform(m Affine) {
	b.m = m
	b.scale = m.LinearScale()
}

func (b *DotBuffer) MoveTo(x, y float64) {
	dx, dy := b.m.Apply(x, y)
	b.paths = append(b.paths, []vmath.Vec2{{X: dx, Y: dy}})
}

func (b *DotBuffer) LineTo(x, y float64) {
	if len(b.paths) == 0 {
		b.MoveTo(x, y)
		return
	}
	dx, dy := b.m.Apply(x, y)
	last := len(b.paths) - 1
	b.paths[last] = append(b.paths[last], vmath.Vec2{X: dx, Y: dy})
}

func (b *DotBuffer) ClosePath() {
	if len(b.paths) == 0 {
		return
	}
	last := len(b.paths) - 1
	p := b.paths[last]
	if len(p) > 1 {
		b.paths[last] = append(p, p[0])
	}
}

func (b *DotBuffer) SetStrokeColor(c RGBA) { b.stroke = c }
func (b *DotBuffer) SetFillColor(c RGBA)   { b.fill = c }
func (b *DotBuffer) SetLineWidth(w float64) {
	if w > 0 && !math.IsNaN(w) {
		b.lineW = w
	}
}

func (b *DotBuffer) SetLineDash(pattern []float64, offset float64) {
	b.dash = b.dash[:0]
	total := 0.0
	for _, d := range pattern {
		if d < 0 || math.IsNaN(d) {
			b.dash = b.dash[:0]
			return
		}
		b.dash = append(b.dash, d)
		total += d
	}
	if total == 0 {
		b.dash = b.dash[:0]
	}
	b.dashOf = offset
}

// Stroke rasterizes the current path with the stroke color and consumes it
func (b *DotBuffer) Stroke() {
	defer func() { b.paths = b.paths[:0] }()
	if b.stroke.A <= 0 {
		return
	}
	b.strokeID++
	if b.strokeID == 0 {
		clear(b.stamped)
		b.strokeID = 1
	}
	w := b.lineW * b.scale
	radius := max(w/2, 0.5)
	var dash *dashWalker
	if len(b.dash) > 0 {
		dash = newDashWalker(b.dash, b.dashOf, b.scale)
	}
	for _, p := range b.paths {
		for i := 1; i < len(p); i++ {
			b.strokeSegment(p[i-1], p[i], radius, dash)
		}
	}
}

// Fill rasterizes the current path with even-odd rule and consumes it
func (b *DotBuffer) Fill() {
	defer func() { b.paths = b.paths[:0] }()
	if b.fill.A <= 0 || b.height == 0 {
		return
	}
	var xs []float64
	for y := 0; y < b.height; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for _, p := range b.paths {
			n := len(p)
			if n < 2 {
				continue
			}
			for i := 0; i < n; i++ {
				a, c := p[i], p[(i+1)%n]
				if (a.Y <= sy) == (c.Y <= sy) {
					continue
				}
				t := (sy - a.Y) / (c.Y - a.Y)
				xs = append(xs, a.X+t*(c.X-a.X))
			}
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Floor(xs[i+1] - 0.5))
			for x := max(x0, 0); x <= min(x1, b.width-1); x++ {
				b.plot(x, y, b.fill)
			}
		}
	}
}

// strokeSegment stamps the segment in half-pixel steps, skipping dash gaps
// Only the part within radius of the buffer is stepped; the rest just advances the dash
func (b *DotBuffer) strokeSegment(a, c vmath.Vec2, radius float64, dash *dashWalker) {
	if !a.Finite() || !c.Finite() {
		return
	}
	dx, dy := c.X-a.X, c.Y-a.Y
	length := math.Hypot(dx, dy)
	if !vmath.IsFinite(length) {
		return
	}
	pad := radius + 1
	t0, t1, ok := clipSegment(a, c, -pad, -pad, float64(b.width)+pad, float64(b.height)+pad)
	if !ok {
		if dash != nil {
			dash.skip(length)
		}
		return
	}
	if dash != nil {
		dash.skip(length * t0)
	}

	ox, oy := a.X+dx*t0, a.Y+dy*t0
	span := length * (t1 - t0)
	sx, sy := dx*(t1-t0), dy*(t1-t0)
	steps := int(math.Ceil(span*2)) + 1
	step := 0.0
	if steps > 1 {
		step = span / float64(steps-1)
	}
	for i := 0; i < steps; i++ {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		on := true
		if dash != nil {
			on = dash.on()
			if i < steps-1 {
				dash.advance(step)
			}
		}
		if on {
			b.stamp(ox+sx*t, oy+sy*t, radius)
		}
	}

	if dash != nil {
		dash.skip(length * (1 - t1))
	}
}

// clipSegment returns the parameter range of a->c inside the rectangle (Liang-Barsky)
func clipSegment(a, c vmath.Vec2, minX, minY, maxX, maxY float64) (float64, float64, bool) {
	dx, dy := c.X-a.X, c.Y-a.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X - minX},
		{dx, maxX - a.X},
		{-dy, a.Y - minY},
		{dy, maxY - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, false
			}
			t1 = min(t1, r)
		}
	}
	return t0, t1, true
}

func (b *DotBuffer) stamp(cx, cy, radius float64) {
	x0, x1 := int(math.Floor(cx-radius)), int(math.Ceil(cx+radius))
	y0, y1 := int(math.Floor(cy-radius)), int(math.Ceil(cy+radius))
	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px, py := float64(x)+0.5-cx, float64(y)+0.5-cy
			if px*px+py*py <= r2+0.25 {
				b.plotOnce(x, y, b.stroke)
			}
		}
	}
}

// plot blends c over the pixel
func (b *DotBuffer) plot(x, y int, c RGBA) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.pix[idx] = Blend(b.pix[idx], c, c.A)
	b.touched[idx] = true
}

// plotOnce blends c at most once per stroke so overlapping stamps do not accumulate
func (b *DotBuffer) plotOnce(x, y int, c RGBA) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	if b.stamped[idx] == b.strokeID {
		return
	}
	b.stamped[idx] = b.strokeID
	b.pix[idx] = Blend(b.pix[idx], c, c.A)
	b.touched[idx] = true
}

// inBounds returns true if in buffer bounds
func (b *DotBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// dashWalker tracks position within a dash pattern in device units
type dashWalker struct {
	pattern []float64
	period  float64
	idx     int
	rem     float64
}

func newDashWalker(pattern []float64, offset, scale float64) *dashWalker {
	d := &dashWalker{pattern: make([]float64, len(pattern))}
	total := 0.0
	for i, p := range pattern {
		d.pattern[i] = p * scale
		total += d.pattern[i]
	}
	d.rem = d.pattern[0]
	d.period = total
	if total > 0 {
		off := math.Mod(offset*scale, total)
		if off < 0 {
			off += total
		}
		d.advance(off)
	}
	return d
}

func (d *dashWalker) on() bool { return d.idx%2 == 0 }

func (d *dashWalker) advance(dist float64) {
	for dist > 0 {
		if dist < d.rem {
			d.rem -= dist
			return
		}
		dist -= d.rem
		d.idx = (d.idx + 1) % len(d.pattern)
		d.rem = d.pattern[d.idx]
		if d.rem == 0 && d.allZero() {
			return
		}
	}
}

// skip advances over dist without stamping; whole periods are dropped first
func (d *dashWalker) skip(dist float64) {
	if d.period > 0 && dist > d.period {
		dist = math.Mod(dist, d.period)
	}
	d.advance(dist)
}

func (d *dashWalker) allZero() bool {
	for _, p := range d.pattern {
		if p > 0 {
			return false
		}
	}
	return true
}
