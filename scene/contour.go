package scene

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/aura/asset"
	"github.com/lixenwraith/aura/calendar"
	"github.com/lixenwraith/aura/core"
	"github.com/lixenwraith/aura/prng"
	"github.com/lixenwraith/aura/render"
	"github.com/lixenwraith/aura/vmath"
)

// GlyphLoader fetches a parsed glyph by URL; implementations coalesce and cache
type GlyphLoader interface {
	Load(ctx context.Context, url string) (*asset.Glyph, error)
}

// LoadState is the readiness of the contour scene's glyph
type LoadState uint8

const (
	Loading LoadState = iota
	Ready
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case Ready:
		return "ready"
	case LoadFailed:
		return "load-failed"
	default:
		return "loading"
	}
}

// ErrNoLoader is reported when the contour scene has nothing to load glyphs with
var ErrNoLoader = errors.New("no glyph loader configured")

const (
	contourFit       = 0.7
	contourAlpha     = 0.9
	contourLineWidth = 2.0
)

// loadResult is a finished glyph load tagged with the Init generation that requested it
type loadResult struct {
	gen   uint64
	url   string
	glyph *asset.Glyph
	err   error
}

// Contour animates the day-sign glyph of the birth date as a timed stroke reveal
// Loads run off the frame loop; results are applied in Update and stale generations are dropped
type Contour struct {
	Runtime
	loader  GlyphLoader
	pattern string
	// results receives the single load of the current generation; Init replaces it
	results chan loadResult

	gen   uint64
	state LoadState
	url   string
	err   error

	seed   string
	ctx    Context
	params ContourParams

	glyph    *asset.Glyph
	timeline Timeline
	revealAt float64

	w, h        float64
	placeholder *Placeholder
	pts         []vmath.Vec2
}

// NewContour creates an uninitialized contour scene
func NewContour(opts Options) *Contour {
	pattern := opts.GlyphPattern
	if pattern == "" {
		pattern = asset.DefaultPattern
	}
	return &Contour{
		Runtime:     NewRuntime(opts.IntroDuration, opts.DefaultMode),
		loader:      opts.Loader,
		pattern:     pattern,
		placeholder: NewPlaceholder(opts),
	}
}

func (s *Contour) Name() string { return "contour" }

func (s *Contour) Init(seed string, src prng.Source, ctx Context) {
	s.gen++
	s.seed = seed
	s.ctx = ctx
	s.params = NewContourParams(src)
	s.Runtime.Reset()
	s.placeholder.Init(seed, src, ctx)
	if len(s.params.Palette) > 0 {
		s.placeholder.SetColor(s.params.Palette[0])
	}

	s.state = Loading
	s.err = nil
	s.glyph = nil
	s.timeline = Timeline{}
	s.revealAt = 0
	s.url = GlyphURL(s.pattern, ctx)
	s.results = make(chan loadResult, 1)

	if s.loader == nil {
		s.fail(ErrNoLoader)
		return
	}
	s.request(s.results, s.gen, s.url)
}

// GlyphURL formats the glyph resource for the context's day sign; sign 1 without a birth date
func GlyphURL(pattern string, ctx Context) string {
	sign := 1
	if ctx.HasDOB() {
		sign = calendar.TzolkinFromDate(ctx.DOB).SignIndex
	}
	return fmt.Sprintf(pattern, sign)
}

// request loads url in the background and delivers the result on results
// results has room for the one send, so the goroutine never blocks on an abandoned generation
func (s *Contour) request(results chan<- loadResult, gen uint64, url string) {
	loader := s.loader
	core.Go(func() {
		g, err := loader.Load(context.Background(), url)
		results <- loadResult{gen: gen, url: url, glyph: g, err: err}
	})
}

func (s *Contour) SetSeed(seed string) {
	s.Init(seed, prng.FromString(seed), s.ctx)
}

func (s *Contour) Resize(w, h float64) {
	s.w, s.h = w, h
	s.placeholder.Resize(w, h)
}

func (s *Contour) Relayout(w, h float64) { s.Resize(w, h) }

func (s *Contour) Update(dt time.Duration, now time.Time) {
	s.Runtime.Advance(dt, now)
	s.placeholder.Update(dt, now)
	for {
		select {
		case res := <-s.results:
			s.accept(res)
		default:
			return
		}
	}
}

// accept applies a load result unless a newer Init superseded it
func (s *Contour) accept(res loadResult) {
	if res.gen != s.gen {
		core.Logger().Debug("stale glyph discarded", "url", res.url, "generation", res.gen, "current", s.gen)
		return
	}
	if res.err != nil {
		s.fail(res.err)
		return
	}
	s.glyph = res.glyph
	s.timeline = BuildTimeline(res.glyph, s.ctx.Gender, s.params.Palette)
	s.revealAt = s.Elapsed()
	s.state = Ready
	core.Logger().Debug("glyph ready", "url", res.url, "segments", len(s.timeline.Segments), "total", s.timeline.Total)
}

func (s *Contour) fail(err error) {
	s.state = LoadFailed
	s.err = err
	core.Logger().Warn("glyph load failed", "url", s.url, "error", err)
}

func (s *Contour) Draw(c render.Canvas, v render.View, now time.Time) {
	if s.state != Ready || s.glyph == nil {
		s.placeholder.Draw(c, v, now)
		return
	}

	frame := s.glyph.Frame()
	extent := max(frame.Width(), frame.Height())
	size := contourFit * min(s.w, s.h)
	if extent <= 0 || size <= 0 {
		return
	}
	scale := size / extent
	origin := frame.Center()
	t := s.Elapsed()
	tiltX := s.params.TiltAmp * math.Sin(t*0.6)
	tiltY := s.params.TiltAmp * math.Cos(t*0.42)
	is3D := s.Is3D()

	project := func(p vmath.Vec2) vmath.Vec2 {
		x, y := (p.X-origin.X)*scale, (p.Y-origin.Y)*scale
		if is3D {
			q := vmath.Project(vmath.Rotate3D(vmath.Vec3F{X: x, Y: y}, tiltX, tiltY), 4*size)
			x, y = q.X, q.Y
		}
		return vmath.Vec2{X: x + s.w/2, Y: y + s.h/2}
	}

	elapsed := time.Duration((t - s.revealAt) * float64(time.Second))
	for i := range s.timeline.Segments {
		seg := &s.timeline.Segments[i]
		p := seg.Progress(elapsed)
		if p <= 0 {
			continue
		}
		switch seg.Kind {
		case asset.KindFill:
			c.SetFillColor(seg.Color.WithAlpha(p * contourAlpha))
			for _, sp := range seg.Element.Subpaths {
				s.pts = s.projectAll(s.pts, sp, project)
				render.Polyline(c, s.pts)
				c.ClosePath()
			}
			c.Fill()
		default:
			c.SetStrokeColor(seg.Color.WithAlpha(contourAlpha))
			c.SetLineWidth(contourLineWidth * s.params.WidthScale * seg.WidthFactor)
			for _, sp := range seg.Element.Subpaths {
				s.pts = s.projectAll(s.pts, sp, project)
				if p >= 1 {
					c.SetLineDash(nil, 0)
				} else {
					l := render.PolylineLength(s.pts)
					c.SetLineDash([]float64{l, l}, l*(1-p))
				}
				render.Polyline(c, s.pts)
				c.Stroke()
			}
		}
	}
	c.SetLineDash(nil, 0)
}

func (s *Contour) projectAll(dst, src []vmath.Vec2, fn func(vmath.Vec2) vmath.Vec2) []vmath.Vec2 {
	dst = dst[:0]
	for _, p := range src {
		dst = append(dst, fn(p))
	}
	return dst
}

// State returns the glyph readiness
func (s *Contour) State() LoadState { return s.state }

// Err returns the last load failure, nil unless LoadFailed
func (s *Contour) Err() error { return s.err }

// URL returns the glyph resource of the current run
func (s *Contour) URL() string { return s.url }

// Generation returns the Init counter guarding async loads
func (s *Contour) Generation() uint64 { return s.gen }

// Timeline returns the reveal schedule, empty until Ready
func (s *Contour) Timeline() Timeline { return s.timeline }
