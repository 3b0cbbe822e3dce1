package engine

import (
	"context"
	"slices"
	"time"

	"github.com/lixenwraith/aura/core"
	"github.com/lixenwraith/aura/render"
	"github.com/lixenwraith/aura/scene"
	"github.com/lixenwraith/aura/status"
)

// PauseReason names one holder of a driver pause
type PauseReason string

const (
	PauseUser   PauseReason = "user"
	PauseHidden PauseReason = "hidden"
	PauseResize PauseReason = "resize"
)

// PhaseHook observes phase transitions of the active scene
type PhaseHook func(s scene.Scene, from, to scene.Phase)

// DriverConfig wires a Driver's collaborators; nil members are optional
type DriverConfig struct {
	// Interval is the target frame interval
	Interval time.Duration
	// Clock supplies game time to scenes; nil means a wall-clock PausableClock
	Clock    *PausableClock
	Governor *Governor
	Stats    *status.Stats
}

// Driver is the fixed-interval frame pump
// All methods must be called from the frame loop goroutine
type Driver struct {
	interval time.Duration
	clock    *PausableClock
	governor *Governor
	stats    *status.Stats

	canvas render.Canvas
	view   render.View
	scene  scene.Scene
	phase  scene.Phase
	hooks  []PhaseHook

	reasons  map[PauseReason]struct{}
	last     time.Time
	anchored bool
}

// NewDriver creates a driver drawing into canvas
func NewDriver(canvas render.Canvas, cfg DriverConfig) *Driver {
	clock := cfg.Clock
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	return &Driver{
		interval: max(cfg.Interval, 0),
		clock:    clock,
		governor: cfg.Governor,
		stats:    cfg.Stats,
		canvas:   canvas,
		reasons:  make(map[PauseReason]struct{}),
	}
}

// SetScene makes s active, lays it out for the current view and restarts the governor
// s must already be initialized
func (d *Driver) SetScene(s scene.Scene) {
	d.scene = s
	if s == nil {
		return
	}
	w, h := d.view.SceneSize()
	s.Resize(w, h)
	d.Restart()
}

// Restart marks the start of a new run of the active scene
// Call after re-initializing the scene so warm-up and phase tracking begin again
func (d *Driver) Restart() {
	if d.scene == nil {
		return
	}
	d.phase = d.scene.Phase()
	if d.governor != nil {
		d.governor.Reset(d.clock.Now())
	}
	d.publish()
}

// Scene returns the active scene
func (d *Driver) Scene() scene.Scene { return d.scene }

// SetView installs a new render context and relayouts the active scene
func (d *Driver) SetView(v render.View) {
	d.view = v
	if d.scene != nil {
		d.scene.Relayout(v.SceneSize())
	}
}

// View returns the current render context
func (d *Driver) View() render.View { return d.view }

// SetCanvas swaps the drawing surface, e.g. after a terminal resize
func (d *Driver) SetCanvas(c render.Canvas) { d.canvas = c }

// OnPhaseChange registers a hook fired after the frame in which the phase changed
func (d *Driver) OnPhaseChange(fn PhaseHook) {
	d.hooks = append(d.hooks, fn)
}

// Clock returns the game clock handed to scenes
func (d *Driver) Clock() *PausableClock { return d.clock }

// Pause adds reason to the pause set; the first reason freezes game time
func (d *Driver) Pause(reason PauseReason) {
	if _, ok := d.reasons[reason]; ok {
		return
	}
	d.reasons[reason] = struct{}{}
	if len(d.reasons) == 1 {
		d.clock.Pause()
		core.Logger().Debug("driver paused", "reason", reason)
	}
	if d.stats != nil {
		d.stats.SetPaused(true)
	}
}

// Resume removes reason; the last removal resumes game time and re-anchors the frame clock
func (d *Driver) Resume(reason PauseReason) {
	if _, ok := d.reasons[reason]; !ok {
		return
	}
	delete(d.reasons, reason)
	if len(d.reasons) > 0 {
		return
	}
	d.clock.Resume()
	d.last = d.clock.RealTime()
	d.anchored = true
	core.Logger().Debug("driver resumed", "reason", reason)
	if d.stats != nil {
		d.stats.SetPaused(false)
	}
}

// TogglePause flips reason in the pause set
func (d *Driver) TogglePause(reason PauseReason) {
	if _, ok := d.reasons[reason]; ok {
		d.Resume(reason)
		return
	}
	d.Pause(reason)
}

// Paused reports whether any pause reason is held
func (d *Driver) Paused() bool { return len(d.reasons) > 0 }

// PauseReasons returns the held reasons, sorted
func (d *Driver) PauseReasons() []PauseReason {
	out := make([]PauseReason, 0, len(d.reasons))
	for r := range d.reasons {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// Tick renders one frame if at least one interval has passed since the last
// now is wall time; the remainder past a whole interval carries into the next frame
// Returns true when a frame was drawn
func (d *Driver) Tick(now time.Time) bool {
	if d.scene == nil || d.canvas == nil || d.Paused() {
		return false
	}
	if !d.anchored {
		d.last = now
		d.anchored = true
		return false
	}
	delta := now.Sub(d.last)
	if delta < d.interval || delta <= 0 {
		return false
	}
	dt := delta
	if d.interval > 0 {
		d.last = now.Add(-(delta % d.interval))
	} else {
		d.last = now
	}

	gameNow := d.clock.Now()
	d.canvas.SetTransform(d.view.Matrix())
	d.canvas.Clear()
	d.scene.Update(dt, gameNow)
	d.scene.Draw(d.canvas, d.view, gameNow)

	if d.governor != nil && d.governor.Sample(dt, gameNow, d.scene) && d.stats != nil {
		d.stats.RecordForced()
	}
	if d.stats != nil {
		d.stats.RecordFrame(dt)
	}

	if p := d.scene.Phase(); p != d.phase {
		from := d.phase
		d.phase = p
		core.Logger().Info("scene phase changed", "scene", d.scene.Name(), "from", from, "to", p)
		for _, fn := range d.hooks {
			fn(d.scene, from, p)
		}
	}
	d.publish()
	return true
}

func (d *Driver) publish() {
	if d.stats == nil || d.scene == nil {
		return
	}
	d.stats.SetScene(d.scene.Name(), string(d.scene.Mode()), d.scene.Phase().String(), d.scene.IsModeLockedTo2D())
}

// pollPeriod is how often Run samples the clock; finer than the frame interval so frames are not skipped on jitter
func (d *Driver) pollPeriod() time.Duration {
	return max(d.interval/4, time.Millisecond)
}

// Run pumps Tick from a ticker until ctx is done; present runs after every drawn frame
func (d *Driver) Run(ctx context.Context, present func()) error {
	ticker := time.NewTicker(d.pollPeriod())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if d.Tick(d.clock.RealTime()) && present != nil {
				present()
			}
		}
	}
}
