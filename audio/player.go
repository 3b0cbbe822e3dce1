package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/aura/core"
)

// Player owns the speaker and a mixer that chimes are queued on
// The speaker is opened on the first Play so a disabled or silent run never touches the audio device
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	failed      error

	// device hooks, replaced in tests
	open   func(rate beep.SampleRate, bufferSize int) error
	play   func(s ...beep.Streamer)
	lock   func()
	unlock func()
}

// NewPlayer creates a player for cfg
func NewPlayer(cfg Config) *Player {
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		open:   speaker.Init,
		play:   speaker.Play,
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
}

// Enabled reports whether the player will produce sound
func (p *Player) Enabled() bool { return p.cfg.Enabled }

// initialize opens the speaker once; a failure disables the player for the rest of the run
func (p *Player) initialize() error {
	if p.initialized {
		return nil
	}
	if p.failed != nil {
		return p.failed
	}
	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := p.open(rate, rate.N(100*time.Millisecond)); err != nil {
		p.failed = fmt.Errorf("speaker init: %w", err)
		return p.failed
	}
	p.play(p.mixer)
	p.initialized = true
	return nil
}

// PlayTone queues the chime for a Tzolkin tone; no-op when disabled
func (p *Player) PlayTone(tone int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.cfg.Enabled {
		return nil
	}
	if err := p.initialize(); err != nil {
		core.Logger().Warn("audio unavailable", "error", err)
		return err
	}
	p.lock()
	p.mixer.Add(ToneChime(tone, p.cfg))
	p.unlock()
	core.Logger().Debug("chime queued", "tone", tone, "frequency", ToneFrequency(tone))
	return nil
}

// Pending returns the number of chimes still sounding
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

// Close silences queued chimes
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	p.lock()
	p.mixer.Clear()
	p.unlock()
}
