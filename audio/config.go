package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/aura/parameter"
)

// Config controls the intro chime
type Config struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

// DefaultConfig returns audio settings with sound off
func DefaultConfig() Config {
	return Config{
		Enabled:    parameter.AudioEnabled,
		Volume:     parameter.AudioVolume,
		SampleRate: parameter.AudioSampleRate,
	}
}

// ApplyEnv overlays AURA_AUDIO_* variables read through lookup; nil means os.LookupEnv
// Unparseable values are ignored
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup("AURA_AUDIO_ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Enabled = b
		}
	}

	// Volume is given as 0-100
	if v, ok := lookup("AURA_AUDIO_VOLUME"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Volume = min(max(float64(n)/100, 0), 1)
		}
	}

	if v, ok := lookup("AURA_AUDIO_SAMPLE_RATE"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.SampleRate = n
		}
	}
}
