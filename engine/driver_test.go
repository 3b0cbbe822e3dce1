package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aura/prng"
	"github.com/lixenwraith/aura/render"
	"github.com/lixenwraith/aura/scene"
	"github.com/lixenwraith/aura/status"
)

// probeScene records what the driver hands it
type probeScene struct {
	scene.Runtime
	updates []time.Duration
	nows    []time.Time
	draws   int
	w, h    float64
}

func newProbe(intro time.Duration) *probeScene {
	return &probeScene{Runtime: scene.NewRuntime(intro, scene.Mode3D)}
}

func (p *probeScene) Name() string                            { return "probe" }
func (p *probeScene) Init(string, prng.Source, scene.Context) { p.Runtime.Reset() }
func (p *probeScene) SetSeed(string)                          { p.Runtime.Reset() }
func (p *probeScene) Resize(w, h float64)                     { p.w, p.h = w, h }
func (p *probeScene) Relayout(w, h float64)                   { p.Resize(w, h) }

func (p *probeScene) Draw(c render.Canvas, _ render.View, _ time.Time) {
	p.draws++
	c.MoveTo(0, 0)
	c.LineTo(1, 1)
	c.Stroke()
}

func (p *probeScene) Update(dt time.Duration, now time.Time) {
	p.Runtime.Advance(dt, now)
	p.updates = append(p.updates, dt)
	p.nows = append(p.nows, now)
}

type driverFixture struct {
	mock   *MockTimeProvider
	rec    *render.Recorder
	probe  *probeScene
	stats  *status.Stats
	driver *Driver
}

func newDriverFixture(intro time.Duration, gov *Governor) *driverFixture {
	f := &driverFixture{
		mock:  NewMockTimeProvider(t0),
		rec:   render.NewRecorder(200, 100),
		probe: newProbe(intro),
		stats: status.NewStats(status.NewRegistry()),
	}
	f.driver = NewDriver(f.rec, DriverConfig{
		Interval: 16 * time.Millisecond,
		Clock:    NewPausableClock(f.mock),
		Governor: gov,
		Stats:    f.stats,
	})
	f.driver.SetView(render.NewView(200, 100, 2, 0, 0))
	f.driver.SetScene(f.probe)
	return f
}

// tick advances the mock clock by d and ticks the driver at the new time
func (f *driverFixture) tick(d time.Duration) bool {
	return f.driver.Tick(f.mock.Advance(d))
}

func TestDriver_FixedIntervalWithCarry(t *testing.T) {
	f := newDriverFixture(time.Second, nil)
	assert.Equal(t, 200.0, f.probe.w)

	assert.False(t, f.driver.Tick(f.mock.Now()), "first tick anchors")
	assert.False(t, f.tick(10*time.Millisecond))
	assert.True(t, f.tick(10*time.Millisecond))
	require.Equal(t, []time.Duration{20 * time.Millisecond}, f.probe.updates)

	// last = now - 4ms, so 12ms more is a whole interval
	assert.True(t, f.tick(12*time.Millisecond))
	assert.Equal(t, 16*time.Millisecond, f.probe.updates[1])
	assert.Equal(t, 2, f.probe.draws)
	assert.Equal(t, int64(2), f.stats.Snapshot().Frames)
}

func TestDriver_FrameOrder(t *testing.T) {
	f := newDriverFixture(time.Second, nil)
	f.driver.Tick(f.mock.Now())
	require.True(t, f.tick(16*time.Millisecond))

	require.GreaterOrEqual(t, len(f.rec.Ops), 3)
	assert.Equal(t, render.OpSetTransform, f.rec.Ops[0].Kind)
	assert.Equal(t, render.Scale(2, 2), f.rec.Ops[0].Matrix)
	assert.Equal(t, render.OpClear, f.rec.Ops[1].Kind)
	assert.Equal(t, 1, f.rec.Count(render.OpStroke))
}

func TestDriver_PauseReasons(t *testing.T) {
	f := newDriverFixture(time.Second, nil)
	f.driver.Tick(f.mock.Now())
	require.True(t, f.tick(16*time.Millisecond))
	gameBefore := f.driver.Clock().Now()

	f.driver.Pause(PauseUser)
	f.driver.Pause(PauseHidden)
	assert.Equal(t, []PauseReason{PauseHidden, PauseUser}, f.driver.PauseReasons())
	assert.True(t, f.stats.Snapshot().Paused)
	assert.False(t, f.tick(5*time.Second))

	f.driver.Resume(PauseUser)
	assert.True(t, f.driver.Paused())
	assert.False(t, f.tick(16*time.Millisecond))

	f.driver.Resume(PauseHidden)
	assert.False(t, f.driver.Paused())
	assert.False(t, f.driver.Tick(f.mock.Now()), "resume re-anchors the frame clock")
	require.True(t, f.tick(16*time.Millisecond))

	last := len(f.probe.updates) - 1
	assert.Equal(t, 16*time.Millisecond, f.probe.updates[last], "no dt spike after resume")
	assert.Equal(t, 16*time.Millisecond, f.probe.nows[last].Sub(gameBefore), "game time excludes the pause")
}

func TestDriver_TogglePause(t *testing.T) {
	f := newDriverFixture(time.Second, nil)
	f.driver.TogglePause(PauseUser)
	assert.True(t, f.driver.Paused())
	f.driver.TogglePause(PauseUser)
	assert.False(t, f.driver.Paused())
	f.driver.Resume(PauseResize)
	assert.False(t, f.driver.Paused())
}

func TestDriver_PhaseHook(t *testing.T) {
	f := newDriverFixture(50*time.Millisecond, nil)
	var seen [][2]scene.Phase
	f.driver.OnPhaseChange(func(s scene.Scene, from, to scene.Phase) {
		assert.Equal(t, "probe", s.Name())
		seen = append(seen, [2]scene.Phase{from, to})
	})

	f.driver.Tick(f.mock.Now())
	for range 10 {
		f.tick(16 * time.Millisecond)
	}
	require.Len(t, seen, 1)
	assert.Equal(t, [2]scene.Phase{scene.PhaseIntro, scene.PhaseMain}, seen[0])
	assert.Equal(t, "main", f.stats.Snapshot().Phase)
}

func TestDriver_GovernorForcesSlowFrames(t *testing.T) {
	f := newDriverFixture(time.Second, NewGovernor(20, 2*time.Second, time.Second))
	f.driver.Tick(f.mock.Now())
	for range 30 {
		f.tick(100 * time.Millisecond)
	}
	assert.True(t, f.probe.IsModeLockedTo2D())
	assert.Equal(t, scene.Mode2D, f.probe.Mode())

	snap := f.stats.Snapshot()
	assert.Equal(t, int64(1), snap.Forced)
	assert.True(t, snap.Locked)
	assert.Equal(t, "2d", snap.Mode)
}

func TestDriver_RestartResetsWarmUp(t *testing.T) {
	gov := NewGovernor(20, 2*time.Second, time.Second)
	f := newDriverFixture(time.Second, gov)
	f.driver.Tick(f.mock.Now())
	for range 5 {
		f.tick(100 * time.Millisecond)
	}
	f.probe.Init("x", nil, scene.Context{})
	f.driver.Restart()
	assert.Zero(t, gov.Len())
	for range 9 {
		f.tick(100 * time.Millisecond)
	}
	assert.False(t, f.probe.IsModeLockedTo2D(), "warm-up restarted with the run")
}

func TestDriver_NoSceneNoWork(t *testing.T) {
	d := NewDriver(render.NewRecorder(1, 1), DriverConfig{Interval: time.Millisecond})
	assert.False(t, d.Tick(time.Now()))
	assert.False(t, d.Tick(time.Now().Add(time.Second)))
}

func TestDriver_Run(t *testing.T) {
	rec := render.NewRecorder(10, 10)
	d := NewDriver(rec, DriverConfig{Interval: 2 * time.Millisecond})
	probe := newProbe(time.Second)
	d.SetScene(probe)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	frames := 0
	err := d.Run(ctx, func() {
		frames++
		if frames == 3 {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, frames, 3)
	assert.Equal(t, frames, probe.draws)
}
