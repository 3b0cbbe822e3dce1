package scene

import (
	"time"

	"github.com/lixenwraith/aura/core"
	"github.com/lixenwraith/aura/prng"
	"github.com/lixenwraith/aura/render"
	"github.com/lixenwraith/aura/vmath"
)

// Lissajous draws a 3D Lissajous figure stamped around the centre
type Lissajous struct {
	Runtime
	samples int

	seed string
	ctx  Context

	params     LissajousParams
	transforms []Transform
	base       []BasePoint

	w, h    float64
	geom    Geometry
	scaled  []vmath.Vec3F
	stroker pathStroker
}

// NewLissajous creates an uninitialized Lissajous scene
func NewLissajous(opts Options) *Lissajous {
	return &Lissajous{
		Runtime: NewRuntime(opts.IntroDuration, opts.DefaultMode),
		samples: max(opts.LissajousSamples, 2),
	}
}

func (s *Lissajous) Name() string { return "lissajous" }

func (s *Lissajous) Init(seed string, src prng.Source, ctx Context) {
	s.seed = seed
	s.ctx = ctx
	s.params = NewLissajousParams(src)
	s.transforms = s.params.Transforms()
	s.base = LissajousCurve(s.params, s.samples)
	s.Runtime.Reset()
	s.Resize(s.w, s.h)
	core.Logger().Info("scene init", "scene", s.Name(), "seed", seed,
		"freq", [3]int{s.params.FreqX, s.params.FreqY, s.params.FreqZ}, "transforms", len(s.transforms))
}

func (s *Lissajous) SetSeed(seed string) {
	s.Init(seed, prng.FromString(seed), s.ctx)
}

func (s *Lissajous) Resize(w, h float64) {
	s.w, s.h = w, h
	s.geom = newGeometry(w, h, s.params.AmpRatioY, s.params.AmpRatioZ)
}

func (s *Lissajous) Relayout(w, h float64) { s.Resize(w, h) }

func (s *Lissajous) Update(dt time.Duration, now time.Time) {
	s.Runtime.Advance(dt, now)
}

func (s *Lissajous) Draw(c render.Canvas, _ render.View, _ time.Time) {
	if len(s.base) == 0 {
		return
	}
	visible := VisibleCount(len(s.base), s.Progress())
	s.scaled = scalePoints(s.scaled, s.base[:visible], s.geom)
	s.stroker.stroke(c, s.scaled, s.transforms, s.params.Symmetry, s.params.Style, s.geom, s.Is3D(), s.Elapsed())
}

// Params returns the rolled parameters
func (s *Lissajous) Params() LissajousParams { return s.params }

// Transforms returns the symmetry transform list
func (s *Lissajous) Transforms() []Transform { return s.transforms }

// Geometry returns the current pixel layout
func (s *Lissajous) Geometry() Geometry { return s.geom }
