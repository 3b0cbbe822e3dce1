package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/aura/prng"
	"github.com/lixenwraith/aura/render"
	"github.com/lixenwraith/aura/vmath"
)

// Draw order in the New*Params constructors is part of the reproducibility contract:
// changing the order or arithmetic changes every aura for every seed

// Transform is one rotation + mirror copy of a base path
type Transform struct {
	Angle   float64
	MirrorX bool
	MirrorY bool
}

// BuildTransforms returns n rotations, each with the identity plus the enabled mirror variants
// Order is outer rotation, inner variant (identity, X, Y, XY); n < 1 is treated as 1
func BuildTransforms(n int, mirrorX, mirrorY bool) []Transform {
	n = max(n, 1)
	type variant struct{ x, y bool }
	variants := []variant{{false, false}}
	if mirrorX {
		variants = append(variants, variant{true, false})
	}
	if mirrorY {
		variants = append(variants, variant{false, true})
	}
	if mirrorX && mirrorY {
		variants = append(variants, variant{true, true})
	}

	out := make([]Transform, 0, n*len(variants))
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * vmath.TwoPi
		for _, v := range variants {
			out = append(out, Transform{Angle: angle, MirrorX: v.x, MirrorY: v.y})
		}
	}
	return out
}

// Apply mirrors then rotates (x, y) by the transform angle plus drift
func (t Transform) Apply(x, y, drift float64) (float64, float64) {
	if t.MirrorX {
		x = -x
	}
	if t.MirrorY {
		y = -y
	}
	return vmath.Rotate2D(x, y, t.Angle+drift)
}

// freq draws 1 + floor(r*n)
func freq(src prng.Source, n int) int {
	return 1 + prng.Intn(src, n)
}

// pickCoprime draws up to tries candidates in [1, 8], returning the first one
// that differs from avoid and is coprime with it; the last candidate otherwise
func pickCoprime(src prng.Source, avoid, tries int) int {
	candidate := avoid
	for i := 0; i < max(tries, 1); i++ {
		candidate = freq(src, 8)
		if candidate != avoid && vmath.GCD(candidate, avoid) == 1 {
			return candidate
		}
	}
	return candidate
}

// Palette chroma and lightness in HCL space
const (
	paletteChroma    = 0.55
	paletteLightness = 0.74
)

// newPalette draws a base hue and a spread and returns three harmonious colors
func newPalette(src prng.Source) []render.RGBA {
	hue := src.Next() * 360
	spread := 20 + src.Next()*60
	out := make([]render.RGBA, 3)
	for k := range out {
		h := math.Mod(hue+float64(k-1)*spread+360, 360)
		c := colorful.Hcl(h, paletteChroma, paletteLightness).Clamped()
		r, g, b := c.RGB255()
		out[k] = render.RGBA{R: r, G: g, B: b, A: 1}
	}
	return out
}

// Style is the stroke appearance shared by path scenes
type Style struct {
	Palette   []render.RGBA
	LineWidth float64
	Alpha     float64
}

// Color returns the palette entry for transform i at the style alpha
func (s Style) Color(i int) render.RGBA {
	if len(s.Palette) == 0 {
		return render.White.WithAlpha(s.Alpha)
	}
	return s.Palette[i%len(s.Palette)].WithAlpha(s.Alpha)
}

// Symmetry is the rotation and tilt behavior shared by path scenes
type Symmetry struct {
	Radial        int
	MirrorX       bool
	MirrorY       bool
	RotationSpeed float64 // rad/s
	TiltAmp       float64 // rad
	TiltSpeed     float64 // rad/s
}

// Transforms expands the symmetry into its transform list
func (s Symmetry) Transforms() []Transform {
	return BuildTransforms(s.Radial, s.MirrorX, s.MirrorY)
}

// Tilt returns the two oscillating 3D angles at time t seconds
func (s Symmetry) Tilt(t float64) (float64, float64) {
	return s.TiltAmp * math.Sin(t*s.TiltSpeed), s.TiltAmp * math.Cos(t*s.TiltSpeed*0.7)
}

// LissajousParams is the rolled parameter set of the Lissajous scene
type LissajousParams struct {
	FreqX, FreqY, FreqZ    int
	PhaseX, PhaseY, PhaseZ float64
	AmpRatioY, AmpRatioZ   float64
	Symmetry
	Style
}

// NewLissajousParams rolls Lissajous parameters in contract order
func NewLissajousParams(src prng.Source) LissajousParams {
	var p LissajousParams
	p.FreqX = freq(src, 8)
	p.FreqY = pickCoprime(src, p.FreqX, 6)
	p.FreqZ = freq(src, 5)
	p.PhaseX = src.Next() * vmath.TwoPi
	p.PhaseY = src.Next() * vmath.TwoPi
	p.PhaseZ = src.Next() * vmath.TwoPi
	p.AmpRatioY = 0.7 + src.Next()*0.3
	p.AmpRatioZ = 0.25 + src.Next()*0.3
	p.Radial = freq(src, 6)
	p.MirrorX = src.Next() < 0.5
	p.MirrorY = src.Next() < 0.35
	p.RotationSpeed = (src.Next() - 0.5) * 0.4
	p.TiltAmp = 0.12 + src.Next()*0.2
	p.TiltSpeed = 0.2 + src.Next()*0.4
	p.Palette = newPalette(src)
	p.LineWidth = 1 + src.Next()*1.5
	p.Alpha = 0.55 + src.Next()*0.35
	return p
}

// runeAngleSteps are the snapping angles a rune may be carved with
var runeAngleSteps = []float64{math.Pi / 4, math.Pi / 6, math.Pi / 3}

// RuneParams is the rolled parameter set of the rune scene
// Pixel quantities are given at a unit amplitude of runeUnit pixels
type RuneParams struct {
	FreqA, FreqB  int
	Phase         float64
	Tolerance     float64
	AngleStep     float64
	GridSize      float64
	MinSegment    float64
	MergeDistance float64
	Symmetry
	Style
}

// NewRuneParams rolls rune parameters in contract order
func NewRuneParams(src prng.Source) RuneParams {
	var p RuneParams
	p.FreqA = freq(src, 8)
	p.FreqB = pickCoprime(src, p.FreqA, 8)
	p.Phase = src.Next() * vmath.TwoPi
	p.Tolerance = 2 + src.Next()*4
	p.AngleStep = prng.Pick(src, runeAngleSteps)
	p.GridSize = float64(4 + prng.Intn(src, 5))
	p.MinSegment = 6 + src.Next()*6
	p.MergeDistance = 2 + src.Next()*2
	p.Radial = 2 + prng.Intn(src, 5)
	p.MirrorX = src.Next() < 0.6
	p.MirrorY = src.Next() < 0.3
	p.RotationSpeed = (src.Next() - 0.5) * 0.2
	p.TiltAmp = 0.1 + src.Next()*0.15
	p.TiltSpeed = 0.15 + src.Next()*0.3
	p.Palette = newPalette(src)
	p.LineWidth = 1.5 + src.Next()*2
	p.Alpha = 0.6 + src.Next()*0.3
	return p
}

// ContourParams is the rolled parameter set of the contour scene
type ContourParams struct {
	Palette    []render.RGBA
	WidthScale float64
	TiltAmp    float64
}

// NewContourParams rolls contour parameters in contract order
func NewContourParams(src prng.Source) ContourParams {
	var p ContourParams
	p.Palette = newPalette(src)
	p.WidthScale = 0.8 + src.Next()*0.6
	p.TiltAmp = 0.05 + src.Next()*0.08
	return p
}

// Geometry is the pixel layout derived from the scene size
type Geometry struct {
	CenterX, CenterY float64
	AmpX, AmpY, AmpZ float64
	Perspective      float64
}

// newGeometry sizes amplitudes from the smaller viewport side
func newGeometry(w, h, ratioY, ratioZ float64) Geometry {
	ampX := 0.38 * max(min(w, h), 0)
	return Geometry{
		CenterX:     w / 2,
		CenterY:     h / 2,
		AmpX:        ampX,
		AmpY:        ampX * ratioY,
		AmpZ:        ampX * ratioZ,
		Perspective: 4 * ampX,
	}
}
