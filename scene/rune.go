package scene

import (
	"time"

	"github.com/lixenwraith/aura/core"
	"github.com/lixenwraith/aura/prng"
	"github.com/lixenwraith/aura/render"
	"github.com/lixenwraith/aura/vmath"
)

// Rune draws a carved, angle-snapped polyline stamped with radial symmetry
type Rune struct {
	Runtime
	samples int

	seed string
	ctx  Context

	params     RuneParams
	transforms []Transform
	base       []BasePoint

	w, h    float64
	geom    Geometry
	scaled  []vmath.Vec3F
	stroker pathStroker

	// steady caches the full runic polyline once the reveal has finished
	steady []vmath.Vec3F
}

// NewRune creates an uninitialized rune scene
func NewRune(opts Options) *Rune {
	return &Rune{
		Runtime: NewRuntime(opts.IntroDuration, opts.DefaultMode),
		samples: max(opts.RuneSamples, 2),
	}
}

func (s *Rune) Name() string { return "rune" }

func (s *Rune) Init(seed string, src prng.Source, ctx Context) {
	s.seed = seed
	s.ctx = ctx
	s.params = NewRuneParams(src)
	s.transforms = s.params.Transforms()
	s.base = RuneCurve(s.params, s.samples)
	s.Runtime.Reset()
	s.Resize(s.w, s.h)
	core.Logger().Info("scene init", "scene", s.Name(), "seed", seed,
		"freq", [2]int{s.params.FreqA, s.params.FreqB}, "transforms", len(s.transforms))
}

func (s *Rune) SetSeed(seed string) {
	s.Init(seed, prng.FromString(seed), s.ctx)
}

func (s *Rune) Resize(w, h float64) {
	s.w, s.h = w, h
	// Rune amplitudes are uniform; the curve is already round
	s.geom = newGeometry(w, h, 1, 1)
	s.steady = nil
}

func (s *Rune) Relayout(w, h float64) { s.Resize(w, h) }

func (s *Rune) Update(dt time.Duration, now time.Time) {
	s.Runtime.Advance(dt, now)
}

func (s *Rune) Draw(c render.Canvas, _ render.View, _ time.Time) {
	poly := s.polyline()
	s.stroker.stroke(c, poly, s.transforms, s.params.Symmetry, s.params.Style, s.geom, s.Is3D(), s.Elapsed())
}

// polyline returns the runic polyline for the current reveal progress
// The intro rebuilds it every frame; afterwards it is built once per layout
func (s *Rune) polyline() []vmath.Vec3F {
	if len(s.base) == 0 {
		return nil
	}
	if s.Phase() == PhaseMain && s.steady != nil {
		return s.steady
	}
	visible := VisibleCount(len(s.base), s.Progress())
	s.scaled = scalePoints(s.scaled, s.base[:visible], s.geom)
	poly := RunicPolyline(s.scaled, s.params, s.geom.AmpX/runeUnit)
	if s.Phase() == PhaseMain {
		s.steady = poly
	}
	return poly
}

// Params returns the rolled parameters
func (s *Rune) Params() RuneParams { return s.params }

// Transforms returns the symmetry transform list
func (s *Rune) Transforms() []Transform { return s.transforms }
