package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/aura/engine"
	"github.com/lixenwraith/aura/render"
	"github.com/lixenwraith/aura/render/ggcanvas"
	"github.com/lixenwraith/aura/scene"
)

// exportEpoch anchors the mock clock so exports are reproducible
var exportEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// glyphWait bounds how long a headless run waits for the contour glyph
const glyphWait = 5 * time.Second

var errGlyphTimeout = errors.New("glyph load timed out")

// loadStater is implemented by scenes that load resources asynchronously
type loadStater interface {
	State() scene.LoadState
}

// awaitReady pumps s with zero-length updates until its resources settle
func awaitReady(s scene.Scene, now time.Time, timeout time.Duration) error {
	ls, ok := s.(loadStater)
	if !ok {
		return nil
	}
	deadline := time.Now().Add(timeout)
	for ls.State() == scene.Loading {
		if time.Now().After(deadline) {
			return errGlyphTimeout
		}
		time.Sleep(2 * time.Millisecond)
		s.Update(0, now)
	}
	return nil
}

// runHeadless renders o.frames frames on a mock clock, one frame interval apart
// PNGs go to o.export when set; -dump prints draw counts per frame to out
func runHeadless(a *app, o options, out io.Writer) error {
	clock := engine.NewMockTimeProvider(exportEpoch)

	var (
		canvases []render.Canvas
		png      *ggcanvas.Canvas
		rec      *render.Recorder
	)
	if o.export != "" {
		if err := os.MkdirAll(o.export, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
		png = ggcanvas.New(o.width, o.height)
		defer png.Close()
		canvases = append(canvases, png)
	}
	if o.dump {
		rec = render.NewRecorder(o.width, o.height)
		canvases = append(canvases, rec)
	}

	d := a.newDriver(render.Tee(canvases...), engine.NewPausableClock(clock))
	d.SetView(a.view(o.width, o.height, a.cfg.Engine.DPR))

	s := a.build(a.cfg.Scene.Name)
	if err := awaitReady(s, clock.Now(), glyphWait); err != nil {
		return fmt.Errorf("scene %s: %w", a.name, err)
	}
	d.SetScene(s)
	d.Tick(clock.Now())

	for i := range o.frames {
		if !d.Tick(clock.Advance(a.cfg.Engine.FrameInterval)) {
			return fmt.Errorf("frame %d was not rendered", i)
		}
		if png != nil {
			if err := png.Err(); err != nil {
				return fmt.Errorf("render frame %d: %w", i, err)
			}
			path := filepath.Join(o.export, fmt.Sprintf("frame-%04d.png", i))
			if err := png.SavePNG(path); err != nil {
				return fmt.Errorf("save frame %d: %w", i, err)
			}
		}
		if rec != nil {
			fmt.Fprintf(out, "frame %04d %-5s %s strokes=%d fills=%d\n",
				i, s.Phase(), s.Mode(), rec.Count(render.OpStroke), rec.Count(render.OpFill))
			rec.Reset()
		}
	}

	if o.dump {
		fmt.Fprintf(out, "%s: %s\n", a.title(), a.stats.Snapshot())
	}
	return nil
}
