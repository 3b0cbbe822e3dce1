package scene

import (
	"time"

	"github.com/lixenwraith/aura/vmath"
)

// Runtime is the per-run phase and mode state machine shared by all scenes
// Phase only moves forward; mode is locked to 2d until ResetModeLock or Reset
type Runtime struct {
	introDuration time.Duration
	defaultMode   Mode

	phase    Phase
	mode     Mode
	locked   bool
	progress float64

	started bool
	start   time.Time
	// elapsed is scene time accumulated from dt, in seconds
	elapsed float64
}

// NewRuntime creates a runtime in its reset state
func NewRuntime(intro time.Duration, defaultMode Mode) Runtime {
	if defaultMode != Mode2D {
		defaultMode = Mode3D
	}
	r := Runtime{introDuration: max(intro, 0), defaultMode: defaultMode}
	r.Reset()
	return r
}

// Reset returns to intro with the default mode and no lock
func (r *Runtime) Reset() {
	r.phase = PhaseIntro
	r.mode = r.defaultMode
	r.locked = false
	r.progress = 0
	r.started = false
	r.start = time.Time{}
	r.elapsed = 0
}

// Advance moves the state machine to now; the first call anchors the intro clock
func (r *Runtime) Advance(dt time.Duration, now time.Time) {
	if !r.started {
		r.started = true
		r.start = now
	}
	if dt > 0 {
		r.elapsed += dt.Seconds()
	}
	if r.phase == PhaseMain {
		return
	}

	since := now.Sub(r.start)
	if r.introDuration <= 0 || since >= r.introDuration {
		r.phase = PhaseMain
		r.progress = 1
		return
	}
	r.progress = vmath.Clamp01(since.Seconds() / r.introDuration.Seconds())
}

func (r *Runtime) Phase() Phase { return r.phase }
func (r *Runtime) Mode() Mode   { return r.mode }

// Progress is the intro reveal fraction, 1 once in main
func (r *Runtime) Progress() float64 { return r.progress }

// Elapsed returns accumulated scene time in seconds
func (r *Runtime) Elapsed() float64 { return r.elapsed }

// Force2DMode switches to 2d and locks it for the rest of the run
func (r *Runtime) Force2DMode() {
	r.mode = Mode2D
	r.locked = true
}

func (r *Runtime) IsModeLockedTo2D() bool { return r.locked }

// ResetModeLock clears the lock and restores the default mode
func (r *Runtime) ResetModeLock() {
	r.locked = false
	r.mode = r.defaultMode
}

// Is3D reports whether perspective projection applies this frame
func (r *Runtime) Is3D() bool { return r.mode == Mode3D }

// VisibleCount is the intro prefix length: max(2, floor(total*progress)), capped at total
func VisibleCount(total int, progress float64) int {
	if total <= 2 {
		return total
	}
	n := int(float64(total) * vmath.Clamp01(progress))
	return min(max(n, 2), total)
}
