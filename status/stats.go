package status

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Metric keys published by the animation driver
const (
	KeyFrames  = "engine.frames"
	KeyForced  = "engine.forced_2d"
	KeyFPS     = "engine.fps"
	KeyScene   = "scene.name"
	KeyMode    = "scene.mode"
	KeyPhase   = "scene.phase"
	KeyLocked  = "scene.locked_2d"
	KeyPaused  = "engine.paused"
	fpsWeight  = 0.1
	fpsMaxStep = 10 * time.Second
)

// Stats caches the driver's metric pointers from a Registry
// Written by the frame loop, read by the HUD from any goroutine
type Stats struct {
	frames *atomic.Int64
	forced *atomic.Int64
	fps    *AtomicFloat
	scene  *AtomicString
	mode   *AtomicString
	phase  *AtomicString
	locked *atomic.Bool
	paused *atomic.Bool
}

// NewStats registers the driver metrics in r
func NewStats(r *Registry) *Stats {
	return &Stats{
		frames: r.Ints.Get(KeyFrames),
		forced: r.Ints.Get(KeyForced),
		fps:    r.Floats.Get(KeyFPS),
		scene:  r.Strings.Get(KeyScene),
		mode:   r.Strings.Get(KeyMode),
		phase:  r.Strings.Get(KeyPhase),
		locked: r.Bools.Get(KeyLocked),
		paused: r.Bools.Get(KeyPaused),
	}
}

// RecordFrame counts a rendered frame and folds 1/dt into the FPS average
func (s *Stats) RecordFrame(dt time.Duration) {
	s.frames.Add(1)
	if dt > 0 && dt < fpsMaxStep {
		s.fps.Smooth(float64(time.Second)/float64(dt), fpsWeight)
	}
}

// RecordForced counts an automatic switch to 2D
func (s *Stats) RecordForced() { s.forced.Add(1) }

// SetScene publishes the active scene state
func (s *Stats) SetScene(name, mode, phase string, locked bool) {
	s.scene.Store(name)
	s.mode.Store(mode)
	s.phase.Store(phase)
	s.locked.Store(locked)
}

// SetPaused publishes the pause flag
func (s *Stats) SetPaused(paused bool) { s.paused.Store(paused) }

// Snapshot is a consistent-enough copy of Stats for display
type Snapshot struct {
	Frames int64
	Forced int64
	FPS    float64
	Scene  string
	Mode   string
	Phase  string
	Locked bool
	Paused bool
}

// Snapshot reads every metric once
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Frames: s.frames.Load(),
		Forced: s.forced.Load(),
		FPS:    s.fps.Get(),
		Scene:  s.scene.Load(),
		Mode:   s.mode.Load(),
		Phase:  s.phase.Load(),
		Locked: s.locked.Load(),
		Paused: s.paused.Load(),
	}
}

// String formats the snapshot as a single HUD line
func (s Snapshot) String() string {
	line := fmt.Sprintf("%s %s/%s %5.1f fps #%d", s.Scene, s.Phase, s.Mode, s.FPS, s.Frames)
	if s.Locked {
		line += " [2d lock]"
	}
	if s.Paused {
		line += " [paused]"
	}
	return line
}
