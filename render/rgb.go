package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is an 8-bit color with a float alpha in [0,1]
type RGBA struct {
	R, G, B uint8
	A       float64
}

// Predefined colors
var (
	Black = RGBA{0, 0, 0, 1}
	White = RGBA{255, 255, 255, 1}
)

// ParseHex parses "#rgb" or "#rrggbb" into an opaque color
func ParseHex(hex string) (RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGBA{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGBA{R: r, G: g, B: b, A: 1}, nil
}

// MustHex is ParseHex for compile-time constants; invalid input yields opaque black
func MustHex(hex string) RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// WithAlpha returns c with alpha clamped to [0,1]; NaN becomes 0
func (c RGBA) WithAlpha(alpha float64) RGBA {
	c.A = clampAlpha(alpha)
	return c
}

// CSS formats the color as rgba(r, g, b, a) with three-decimal alpha
func (c RGBA) CSS() string {
	return "rgba(" + strconv.Itoa(int(c.R)) + ", " + strconv.Itoa(int(c.G)) + ", " +
		strconv.Itoa(int(c.B)) + ", " + strconv.FormatFloat(clampAlpha(c.A), 'f', 3, 64) + ")"
}

// Floats returns the channels scaled to [0,1]
func (c RGBA) Floats() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, clampAlpha(c.A)
}

// HexToRGBA converts a hex color plus alpha into a CSS rgba() string
// Alpha is clamped to [0,1]; unparsable hex renders as black
func HexToRGBA(hex string, alpha float64) string {
	return MustHex(hex).WithAlpha(alpha).CSS()
}

func clampAlpha(a float64) float64 {
	if math.IsNaN(a) || a <= 0 {
		return 0
	}
	if a >= 1 {
		return 1
	}
	return a
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend composites src over c with alpha; alpha 1.0 and 0.0 return early
func Blend(c, src RGBA, alpha float64) RGBA {
	if alpha >= 1.0 {
		return RGBA{R: src.R, G: src.G, B: src.B, A: 1}
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha

	return RGBA{
		R: clamp(float64(src.R)*alpha + float64(c.R)*inv),
		G: clamp(float64(src.G)*alpha + float64(c.G)*inv),
		B: clamp(float64(src.B)*alpha + float64(c.B)*inv),
		A: 1,
	}
}
