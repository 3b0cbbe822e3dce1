// Package config assembles runtime settings from defaults, an optional YAML file and AURA_* environment variables
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/aura/audio"
	"github.com/lixenwraith/aura/engine"
	"github.com/lixenwraith/aura/parameter"
	"github.com/lixenwraith/aura/scene"
)

// ErrInvalid marks a configuration value outside its allowed range
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete runtime configuration
type Config struct {
	Engine   EngineConfig   `yaml:"engine"`
	Scene    SceneConfig    `yaml:"scene"`
	Governor GovernorConfig `yaml:"governor"`
	Audio    audio.Config   `yaml:"audio"`
	Glyph    GlyphConfig    `yaml:"glyph"`
}

// EngineConfig sets frame pacing and the design space
type EngineConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	DesignWidth   float64       `yaml:"design_width"`
	DesignHeight  float64       `yaml:"design_height"`
	DPR           float64       `yaml:"dpr"`
}

// SceneConfig selects and shapes the scene
type SceneConfig struct {
	Name             string        `yaml:"name"`
	IntroDuration    time.Duration `yaml:"intro_duration"`
	DefaultMode      string        `yaml:"default_mode"`
	LissajousSamples int           `yaml:"lissajous_samples"`
	RuneSamples      int           `yaml:"rune_samples"`
}

// GovernorConfig tunes the automatic 2D fallback
type GovernorConfig struct {
	Threshold float64       `yaml:"threshold"`
	Recover   float64       `yaml:"recover"`
	Window    time.Duration `yaml:"window"`
	WarmUp    time.Duration `yaml:"warm_up"`
}

// GlyphConfig locates contour glyphs
// An empty Dir uses the embedded set
type GlyphConfig struct {
	Pattern       string `yaml:"pattern"`
	CacheCapacity int    `yaml:"cache_capacity"`
	Dir           string `yaml:"dir"`
}

// Default returns the documented defaults
func Default() Config {
	return Config{
		Engine: EngineConfig{
			FrameInterval: parameter.FrameInterval,
			DesignWidth:   parameter.DesignWidth,
			DesignHeight:  parameter.DesignHeight,
			DPR:           parameter.DevicePixelRatio,
		},
		Scene: SceneConfig{
			Name:             parameter.DefaultScene,
			IntroDuration:    parameter.IntroDuration,
			DefaultMode:      parameter.DefaultMode,
			LissajousSamples: parameter.LissajousSamples,
			RuneSamples:      parameter.RuneSamples,
		},
		Governor: GovernorConfig{
			Threshold: parameter.GovernorThreshold,
			Recover:   parameter.GovernorRecover,
			Window:    parameter.GovernorWindow,
			WarmUp:    parameter.GovernorWarmUp,
		},
		Audio: audio.DefaultConfig(),
		Glyph: GlyphConfig{
			Pattern:       parameter.GlyphPattern,
			CacheCapacity: parameter.GlyphCacheCapacity,
		},
	}
}

// Load returns defaults overlaid with the YAML file at path
// Durations are Go duration strings; unknown keys are rejected
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.Decode(data); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays YAML data onto c; an empty document changes nothing
func (c *Config) Decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overlays AURA_* variables read through lookup; nil means os.LookupEnv
// Unparseable values are ignored, range checks are left to Validate
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup("AURA_SCENE"); ok && v != "" {
		c.Scene.Name = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup("AURA_MODE"); ok && v != "" {
		c.Scene.DefaultMode = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup("AURA_INTRO"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			c.Scene.IntroDuration = d
		}
	}
	if v, ok := lookup("AURA_FRAME_INTERVAL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			c.Engine.FrameInterval = d
		}
	}
	if v, ok := lookup("AURA_FPS_THRESHOLD"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Governor.Threshold = f
		}
	}
	if v, ok := lookup("AURA_GLYPH_DIR"); ok {
		c.Glyph.Dir = v
	}

	c.Audio.ApplyEnv(lookup)
}

// Validate reports every out-of-range value, each wrapping ErrInvalid
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Engine.FrameInterval > 0, "engine.frame_interval %v must be positive", c.Engine.FrameInterval)
	check(c.Engine.DesignWidth >= 0 && c.Engine.DesignHeight >= 0, "engine design size %vx%v is negative", c.Engine.DesignWidth, c.Engine.DesignHeight)
	check(c.Engine.DPR > 0, "engine.dpr %v must be positive", c.Engine.DPR)

	check(c.Scene.IntroDuration >= 0, "scene.intro_duration %v is negative", c.Scene.IntroDuration)
	check(c.Scene.DefaultMode == string(scene.Mode2D) || c.Scene.DefaultMode == string(scene.Mode3D),
		"scene.default_mode %q is not 2d or 3d", c.Scene.DefaultMode)
	check(c.Scene.LissajousSamples >= 2, "scene.lissajous_samples %d is below 2", c.Scene.LissajousSamples)
	check(c.Scene.RuneSamples >= 2, "scene.rune_samples %d is below 2", c.Scene.RuneSamples)

	check(c.Governor.Threshold > 0, "governor.threshold %v must be positive", c.Governor.Threshold)
	check(c.Governor.Recover >= c.Governor.Threshold, "governor.recover %v is below threshold %v", c.Governor.Recover, c.Governor.Threshold)
	check(c.Governor.Window > 0, "governor.window %v must be positive", c.Governor.Window)
	check(c.Governor.WarmUp >= 0, "governor.warm_up %v is negative", c.Governor.WarmUp)

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume %v is outside [0,1]", c.Audio.Volume)
	check(c.Audio.SampleRate > 0, "audio.sample_rate %d must be positive", c.Audio.SampleRate)

	check(strings.Contains(c.Glyph.Pattern, "%"), "glyph.pattern %q has no sign placeholder", c.Glyph.Pattern)
	check(c.Glyph.CacheCapacity > 0, "glyph.cache_capacity %d must be positive", c.Glyph.CacheCapacity)

	return errors.Join(errs...)
}

// SceneOptions converts the scene section; the caller supplies the glyph loader
func (c *Config) SceneOptions(loader scene.GlyphLoader) scene.Options {
	return scene.Options{
		IntroDuration:    c.Scene.IntroDuration,
		DefaultMode:      scene.ParseMode(c.Scene.DefaultMode),
		LissajousSamples: c.Scene.LissajousSamples,
		RuneSamples:      c.Scene.RuneSamples,
		Loader:           loader,
		GlyphPattern:     c.Glyph.Pattern,
	}
}

// NewGovernor builds the governor described by the governor section
func (c *Config) NewGovernor() *engine.Governor {
	return engine.NewGovernor(c.Governor.Threshold, c.Governor.Window, c.Governor.WarmUp)
}
