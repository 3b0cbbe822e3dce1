// Package termcanvas renders a render.Canvas onto a tcell screen using braille cells
// Each terminal cell carries a 2x4 dot matrix; the cell takes the brightest dot's color
package termcanvas

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/aura/render"
)

const (
	dotsX = 2
	dotsY = 4

	brailleBase = 0x2800
)

// brailleBits maps a dot position inside a cell to its braille bit
var brailleBits = [dotsY][dotsX]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a dot buffer bound to a tcell screen
type Canvas struct {
	*render.DotBuffer
	screen tcell.Screen
	cols   int
	rows   int
	bg     tcell.Color
}

// New creates a canvas sized to the screen's current cell grid
func New(screen tcell.Screen) *Canvas {
	c := &Canvas{
		DotBuffer: render.NewDotBuffer(0, 0),
		screen:    screen,
		bg:        tcell.ColorBlack,
	}
	c.Sync()
	return c
}

// Sync resizes the dot buffer to match the screen; returns true if the size changed
func (c *Canvas) Sync() bool {
	cols, rows := c.screen.Size()
	if cols == c.cols && rows == c.rows {
		return false
	}
	c.cols, c.rows = cols, rows
	c.DotBuffer.Resize(cols*dotsX, rows*dotsY)
	return true
}

// Cells returns the terminal grid size
func (c *Canvas) Cells() (int, int) { return c.cols, c.rows }

// Flush converts the dot buffer into braille cells and shows the screen
func (c *Canvas) Flush() {
	c.Compose()
	c.screen.Show()
}

// Compose writes the dot buffer into screen cells without showing them
// Callers draw overlays on top and call Show themselves
func (c *Canvas) Compose() {
	base := tcell.StyleDefault.Background(c.bg)
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			r, style := c.cell(col, row, base)
			c.screen.SetContent(col, row, r, nil, style)
		}
	}
}

// cell composes one braille glyph from its 2x4 dot block
func (c *Canvas) cell(col, row int, base tcell.Style) (rune, tcell.Style) {
	var bits rune
	var best render.RGBA
	bestLum := -1
	for dy := 0; dy < dotsY; dy++ {
		for dx := 0; dx < dotsX; dx++ {
			x, y := col*dotsX+dx, row*dotsY+dy
			if !c.Touched(x, y) {
				continue
			}
			bits |= brailleBits[dy][dx]
			p := c.At(x, y)
			if lum := int(p.R) + int(p.G) + int(p.B); lum > bestLum {
				bestLum = lum
				best = p
			}
		}
	}
	if bits == 0 {
		return ' ', base
	}
	fg := tcell.NewRGBColor(int32(best.R), int32(best.G), int32(best.B))
	return brailleBase + bits, base.Foreground(fg)
}
