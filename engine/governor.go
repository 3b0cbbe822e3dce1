package engine

import (
	"time"

	"github.com/lixenwraith/aura/core"
)

// ModeTarget is what the governor downgrades; every scene satisfies it
type ModeTarget interface {
	Force2DMode()
	IsModeLockedTo2D() bool
}

type fpsSample struct {
	at  time.Time
	fps float64
}

// Governor watches a rolling wall-clock window of instantaneous FPS and forces 2D when it sags
// The downgrade is one-way; only the scene's ResetModeLock brings 3D back
type Governor struct {
	threshold float64
	window    time.Duration
	warmUp    time.Duration

	samples []fpsSample
	start   time.Time
	started bool
	forced  int
}

// NewGovernor creates a governor forcing 2D below threshold mean FPS
func NewGovernor(threshold float64, window, warmUp time.Duration) *Governor {
	return &Governor{
		threshold: threshold,
		window:    window,
		warmUp:    warmUp,
		samples:   make([]fpsSample, 0, 256),
	}
}

// Reset drops all samples and restarts the warm-up at now
func (g *Governor) Reset(now time.Time) {
	g.samples = g.samples[:0]
	g.start = now
	g.started = true
}

// Sample records one frame and downgrades target if the windowed mean is below threshold
// Returns true when this call forced 2D
func (g *Governor) Sample(dt time.Duration, now time.Time, target ModeTarget) bool {
	if !g.started {
		g.Reset(now)
	}
	if dt > 0 {
		g.samples = append(g.samples, fpsSample{at: now, fps: float64(time.Second) / float64(dt)})
	}
	g.evict(now)

	if now.Sub(g.start) < g.warmUp || target == nil || target.IsModeLockedTo2D() {
		return false
	}
	mean, ok := g.Mean()
	if !ok || mean >= g.threshold {
		return false
	}
	target.Force2DMode()
	g.forced++
	core.Logger().Info("low frame rate, forcing 2d", "fps", mean, "threshold", g.threshold, "samples", len(g.samples))
	return true
}

// evict drops samples older than the window, oldest first
func (g *Governor) evict(now time.Time) {
	cut := 0
	for cut < len(g.samples) && now.Sub(g.samples[cut].at) > g.window {
		cut++
	}
	if cut > 0 {
		g.samples = append(g.samples[:0], g.samples[cut:]...)
	}
}

// Mean returns the arithmetic mean FPS of the window; false when empty
func (g *Governor) Mean() (float64, bool) {
	if len(g.samples) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, s := range g.samples {
		sum += s.fps
	}
	return sum / float64(len(g.samples)), true
}

// Len returns the number of samples in the window
func (g *Governor) Len() int { return len(g.samples) }

// Forced returns how many times this governor has forced 2D
func (g *Governor) Forced() int { return g.forced }
