// Package ggcanvas adapts a gg raster context to render.Canvas for PNG export
package ggcanvas

import (
	"errors"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/aura/render"
)

// Canvas draws into a gg.Context
// gg transforms path points when they are added, so widths and dashes are scaled here
type Canvas struct {
	dc     *gg.Context
	width  int
	height int
	bg     render.RGBA

	scale  float64
	lineW  float64
	dash   []float64
	dashOf float64

	err error
}

// New creates a canvas of the given device size with a black background
func New(width, height int) *Canvas {
	c := &Canvas{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
		bg:     render.Black,
		scale:  1,
		lineW:  1,
	}
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.SetLineJoin(gg.LineJoinRound)
	return c
}

// SetBackground sets the color Clear paints
func (c *Canvas) SetBackground(bg render.RGBA) { c.bg = bg }

// Context exposes the underlying gg context
func (c *Canvas) Context() *gg.Context { return c.dc }

func (c *Canvas) Size() (int, int) { return c.width, c.height }

func (c *Canvas) SetTransform(m render.Affine) {
	c.dc.SetTransform(gg.Matrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F})
	c.scale = m.LinearScale()
	c.applyWidth()
	c.applyDash()
}

func (c *Canvas) Clear() {
	c.dc.ClearPath()
	c.dc.ClearWithColor(toGG(c.bg.WithAlpha(1)))
}

func (c *Canvas) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }
func (c *Canvas) LineTo(x, y float64) { c.dc.LineTo(x, y) }
func (c *Canvas) ClosePath()          { c.dc.ClosePath() }

func (c *Canvas) SetStrokeColor(col render.RGBA) {
	c.dc.SetStrokeBrush(gg.Solid(toGG(col)))
}

func (c *Canvas) SetFillColor(col render.RGBA) {
	c.dc.SetFillBrush(gg.Solid(toGG(col)))
}

func (c *Canvas) SetLineWidth(w float64) {
	if w <= 0 || math.IsNaN(w) {
		return
	}
	c.lineW = w
	c.applyWidth()
}

func (c *Canvas) SetLineDash(pattern []float64, offset float64) {
	c.dash = append(c.dash[:0], pattern...)
	c.dashOf = offset
	c.applyDash()
}

func (c *Canvas) Stroke() { c.record(c.dc.Stroke()) }
func (c *Canvas) Fill()   { c.record(c.dc.Fill()) }

// Err returns the accumulated stroke and fill errors since the last call
func (c *Canvas) Err() error {
	err := c.err
	c.err = nil
	return err
}

// Close releases the context state
func (c *Canvas) Close() error {
	return c.dc.Close()
}

// SavePNG writes the current raster to path
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// EncodePNG writes the current raster to w
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *Canvas) record(err error) {
	if err != nil {
		c.err = errors.Join(c.err, err)
	}
}

func (c *Canvas) applyWidth() {
	c.dc.SetLineWidth(c.lineW * c.scale)
}

func (c *Canvas) applyDash() {
	total := 0.0
	for _, d := range c.dash {
		total += d
	}
	if len(c.dash) == 0 || total <= 0 {
		c.dc.ClearDash()
		return
	}
	scaled := make([]float64, len(c.dash))
	for i, d := range c.dash {
		scaled[i] = d * c.scale
	}
	c.dc.SetDash(scaled...)
	c.dc.SetDashOffset(c.dashOf * c.scale)
}

func toGG(col render.RGBA) gg.RGBA {
	r, g, b, a := col.Floats()
	return gg.RGBA{R: r, G: g, B: b, A: a}
}
