package scene

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aura/prng"
	"github.com/lixenwraith/aura/render"
	"github.com/lixenwraith/aura/vmath"
)

func testOptions() Options {
	return Options{
		IntroDuration:    2 * time.Second,
		DefaultMode:      Mode3D,
		LissajousSamples: 240,
		RuneSamples:      180,
	}
}

// drawFrame runs one update and records the draw
func drawFrame(s Scene, dt time.Duration, now time.Time) *render.Recorder {
	rec := render.NewRecorder(400, 400)
	s.Update(dt, now)
	s.Draw(rec, render.NewView(400, 400, 1, 0, 0), now)
	return rec
}

func TestScenes_ImplementInterface(t *testing.T) {
	opts := testOptions()
	for _, s := range []Scene{NewLissajous(opts), NewRune(opts), NewContour(opts), NewPlaceholder(opts)} {
		assert.NotEmpty(t, s.Name())
	}
}

func TestLissajous_StrokePerTransform(t *testing.T) {
	s := NewLissajous(testOptions())
	s.Resize(400, 400)
	s.Init("1990-04-12", prng.FromString("1990-04-12"), Context{})

	rec := drawFrame(s, 16*time.Millisecond, t0)
	assert.Equal(t, len(s.Transforms()), rec.Count(render.OpStroke))
	assert.Equal(t, len(s.Transforms()), rec.Count(render.OpMoveTo))

	// First intro frame reveals only the minimal prefix
	assert.Equal(t, len(s.Transforms()), rec.Count(render.OpLineTo))
}

func TestLissajous_Deterministic(t *testing.T) {
	run := func() []render.Op {
		s := NewLissajous(testOptions())
		s.Resize(400, 400)
		s.Init("seed", prng.FromString("seed"), Context{})
		var ops []render.Op
		for i := 0; i < 5; i++ {
			rec := drawFrame(s, 500*time.Millisecond, t0.Add(time.Duration(i)*500*time.Millisecond))
			ops = append(ops, rec.Ops...)
		}
		return ops
	}
	assert.Equal(t, run(), run())
}

func TestLissajous_ResizeKeepsParams(t *testing.T) {
	s := NewLissajous(testOptions())
	s.Init("x", prng.FromString("x"), Context{})
	before := s.Params()

	s.Resize(800, 600)
	assert.Equal(t, before, s.Params())
	assert.InDelta(t, 0.38*600, s.Geometry().AmpX, 1e-9)

	s.Relayout(100, 200)
	assert.InDelta(t, 38, s.Geometry().AmpX, 1e-9)
}

func TestLissajous_InitResetsRun(t *testing.T) {
	s := NewLissajous(testOptions())
	s.Resize(400, 400)
	s.Init("a", prng.FromString("a"), Context{})
	s.Update(3*time.Second, t0)
	s.Update(3*time.Second, t0.Add(3*time.Second))
	s.Force2DMode()
	require.Equal(t, PhaseMain, s.Phase())

	s.SetSeed("b")
	assert.Equal(t, PhaseIntro, s.Phase())
	assert.False(t, s.IsModeLockedTo2D())
	assert.Equal(t, Mode3D, s.Mode())
	assert.Equal(t, NewLissajousParams(prng.FromString("b")), s.Params())
}

func TestLissajous_2DSkipsProjection(t *testing.T) {
	s := NewLissajous(testOptions())
	s.Resize(400, 400)
	s.Init("flat", prng.FromString("flat"), Context{})
	s.Force2DMode()

	rec := drawFrame(s, 0, t0)
	// identity transform first, no drift at t=0: the first point is the scaled base sample
	base := LissajousCurve(s.Params(), 240)[0]
	g := s.Geometry()
	// ops: line-width, stroke-color, move
	first := rec.Ops[2]
	require.Equal(t, render.OpMoveTo, first.Kind)
	assert.InDelta(t, base.X*g.AmpX+g.CenterX, first.X, 1e-9)
	assert.InDelta(t, base.Y*g.AmpY+g.CenterY, first.Y, 1e-9)
}

func TestRune_StrokePerTransform(t *testing.T) {
	s := NewRune(testOptions())
	s.Resize(400, 400)
	s.Init("1984-07-01", prng.FromString("1984-07-01"), Context{})

	s.Update(0, t0)
	s.Update(3*time.Second, t0.Add(3*time.Second))
	require.Equal(t, PhaseMain, s.Phase())

	rec := render.NewRecorder(400, 400)
	s.Draw(rec, render.View{}, t0)
	assert.Equal(t, len(s.Transforms()), rec.Count(render.OpStroke))

	// Steady polyline is cached and reused
	first := s.polyline()
	assert.Equal(t, first, s.polyline())
}

func TestRunicPolyline_Properties(t *testing.T) {
	p := NewRuneParams(prng.FromString("runic"))
	g := newGeometry(600, 600, 1, 1)
	scale := g.AmpX / runeUnit
	pts := scalePoints(nil, RuneCurve(p, 360), g)

	poly := RunicPolyline(pts, p, scale)
	require.GreaterOrEqual(t, len(poly), 2)
	assert.LessOrEqual(t, len(poly), len(pts))

	grid := p.GridSize * scale
	for i, q := range poly {
		assert.InDelta(t, 0, math.Remainder(q.X, grid), 1e-6, "x on grid")
		assert.InDelta(t, 0, math.Remainder(q.Y, grid), 1e-6, "y on grid")
		if i > 0 {
			assert.GreaterOrEqual(t, vmath.V3FDistXY(poly[i-1], q), p.MergeDistance*scale)
		}
	}
}

func TestRunicPolyline_Degenerate(t *testing.T) {
	p := NewRuneParams(prng.FromString("tiny"))
	pts := []vmath.Vec3F{{X: 0, Y: 0}, {X: 0.1, Y: 0.1}}
	out := RunicPolyline(pts, p, 1)
	assert.Equal(t, pts, out)

	assert.Len(t, RunicPolyline(pts[:1], p, 1), 1)
}

func TestPlaceholder_DrawsRing(t *testing.T) {
	s := NewPlaceholder(testOptions())
	s.Resize(200, 100)
	s.Init("", nil, Context{})
	rec := drawFrame(s, 0, t0)
	assert.Equal(t, 1, rec.Count(render.OpStroke))
	assert.Equal(t, placeholderSegments, rec.Count(render.OpLineTo))
}
