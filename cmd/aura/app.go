package main

import (
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/text/language"

	"github.com/lixenwraith/aura/asset"
	"github.com/lixenwraith/aura/audio"
	"github.com/lixenwraith/aura/calendar"
	"github.com/lixenwraith/aura/config"
	"github.com/lixenwraith/aura/core"
	"github.com/lixenwraith/aura/engine"
	"github.com/lixenwraith/aura/prng"
	"github.com/lixenwraith/aura/registry"
	"github.com/lixenwraith/aura/render"
	"github.com/lixenwraith/aura/scene"
	"github.com/lixenwraith/aura/status"
)

// app holds everything shared by the interactive and headless runs
type app struct {
	cfg      config.Config
	registry *registry.Registry
	loader   *asset.Loader
	stats    *status.Stats
	player   *audio.Player

	seed string
	ctx  scene.Context
	day  calendar.Tzolkin
	lang language.Tag
	name string
}

// loadConfig builds the configuration: defaults, file, environment, then flags
func loadConfig(o options) (config.Config, error) {
	cfg := config.Default()
	if o.config != "" {
		var err error
		if cfg, err = config.Load(o.config); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyEnv(nil)

	if o.scene != "" {
		cfg.Scene.Name = o.scene
	}
	if o.mode != "" {
		cfg.Scene.DefaultMode = o.mode
	}
	if o.audio {
		cfg.Audio.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newApp wires the registry, glyph loader, stats and audio for cfg
func newApp(cfg config.Config, o options) *app {
	var glyphs fs.FS = asset.Embedded()
	if cfg.Glyph.Dir != "" {
		glyphs = os.DirFS(cfg.Glyph.Dir)
	}

	a := &app{
		cfg:      cfg,
		registry: registry.Default(),
		loader:   asset.NewLoader(glyphs, cfg.Glyph.CacheCapacity),
		stats:    status.NewStats(status.NewRegistry()),
		player:   audio.NewPlayer(cfg.Audio),
		seed:     o.seedText(),
		ctx:      o.sceneContext(),
		lang:     calendar.ParseLanguage(o.lang),
	}
	a.day = calendar.Tzolkin{Tone: 1, SignIndex: 1, SignName: calendar.SignName(1)}
	if a.ctx.HasDOB() {
		a.day = calendar.TzolkinFromDate(a.ctx.DOB)
	}
	return a
}

// build creates and initializes the named scene, falling back to the placeholder
func (a *app) build(name string) scene.Scene {
	opts := a.cfg.SceneOptions(a.loader)
	s, err := a.registry.Create(name, opts)
	if err != nil {
		core.Logger().Warn("scene unavailable, using placeholder", "error", err)
		name = registry.Placeholder
		s = scene.NewPlaceholder(opts)
	}
	a.name = name
	s.Init(a.seed, prng.FromString(a.seed), a.ctx)
	core.Logger().Info("scene started", "scene", name, "seed", a.seed, "day", a.day.String())
	return s
}

// newDriver creates a frame driver over canvas with the configured governor and chime hook
func (a *app) newDriver(c render.Canvas, clock *engine.PausableClock) *engine.Driver {
	d := engine.NewDriver(c, engine.DriverConfig{
		Interval: a.cfg.Engine.FrameInterval,
		Clock:    clock,
		Governor: a.cfg.NewGovernor(),
		Stats:    a.stats,
	})
	d.OnPhaseChange(func(_ scene.Scene, _, to scene.Phase) {
		if to == scene.PhaseMain {
			a.player.PlayTone(a.day.Tone)
		}
	})
	return d
}

// view fits the design space into a device surface of w x h pixels at dpr
func (a *app) view(w, h int, dpr float64) render.View {
	if dpr <= 0 {
		dpr = 1
	}
	return render.NewView(float64(w)/dpr, float64(h)/dpr, dpr, a.cfg.Engine.DesignWidth, a.cfg.Engine.DesignHeight)
}

// title is the HUD heading: the day sign in the chosen language
func (a *app) title() string {
	return fmt.Sprintf("%d %s", a.day.Tone, calendar.SignName(a.day.SignIndex, a.lang))
}
