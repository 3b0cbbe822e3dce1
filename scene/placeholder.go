package scene

import (
	"math"
	"time"

	"github.com/lixenwraith/aura/prng"
	"github.com/lixenwraith/aura/render"
	"github.com/lixenwraith/aura/vmath"
)

const placeholderSegments = 64

// Placeholder draws a softly pulsing ring; it stands in while content is unavailable
type Placeholder struct {
	Runtime
	ctx   Context
	color render.RGBA
	w, h  float64
	ring  []vmath.Vec2
}

// NewPlaceholder creates a placeholder scene
func NewPlaceholder(opts Options) *Placeholder {
	return &Placeholder{
		Runtime: NewRuntime(opts.IntroDuration, opts.DefaultMode),
		color:   render.White,
	}
}

func (s *Placeholder) Name() string { return "placeholder" }

// Init consumes no randomness; the ring looks the same for every seed
func (s *Placeholder) Init(_ string, _ prng.Source, ctx Context) {
	s.ctx = ctx
	s.Runtime.Reset()
}

func (s *Placeholder) SetSeed(seed string) {
	s.Init(seed, nil, s.ctx)
}

func (s *Placeholder) Resize(w, h float64)   { s.w, s.h = w, h }
func (s *Placeholder) Relayout(w, h float64) { s.Resize(w, h) }

func (s *Placeholder) Update(dt time.Duration, now time.Time) {
	s.Runtime.Advance(dt, now)
}

// SetColor tints the ring
func (s *Placeholder) SetColor(c render.RGBA) { s.color = c }

func (s *Placeholder) Draw(c render.Canvas, _ render.View, _ time.Time) {
	s.drawRing(c, s.w/2, s.h/2, 0.25*min(s.w, s.h))
}

// drawRing strokes the pulsing ring centred at (cx, cy)
func (s *Placeholder) drawRing(c render.Canvas, cx, cy, radius float64) {
	if radius <= 0 {
		return
	}
	t := s.Elapsed()
	pulse := math.Sin(vmath.TwoPi * 0.5 * t)
	r := radius * (1 + 0.05*pulse)

	s.ring = s.ring[:0]
	for i := 0; i <= placeholderSegments; i++ {
		a := float64(i) / placeholderSegments * vmath.TwoPi
		sin, cos := math.Sincos(a)
		s.ring = append(s.ring, vmath.Vec2{X: cx + r*cos, Y: cy + r*sin})
	}
	c.SetLineWidth(1.5)
	c.SetStrokeColor(s.color.WithAlpha(0.3 + 0.2*pulse))
	render.Polyline(c, s.ring)
	c.Stroke()
}
