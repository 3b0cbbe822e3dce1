package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/aura/core"
	"github.com/lixenwraith/aura/engine"
	"github.com/lixenwraith/aura/parameter"
	"github.com/lixenwraith/aura/render/termcanvas"
)

// hudStyle draws the status line over the animation
var hudStyle = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)

// viewer is the interactive terminal session
type viewer struct {
	app    *app
	screen tcell.Screen
	canvas *termcanvas.Canvas
	driver *engine.Driver
	hud    bool
}

func newViewer(a *app, screen tcell.Screen) *viewer {
	v := &viewer{app: a, screen: screen, hud: true}
	v.canvas = termcanvas.New(screen)
	v.driver = a.newDriver(v.canvas, engine.NewPausableClock(nil))
	v.relayout()
	v.driver.SetScene(a.build(a.cfg.Scene.Name))
	return v
}

// relayout matches the view to the braille dot grid
func (v *viewer) relayout() {
	w, h := v.canvas.Size()
	v.driver.SetView(v.app.view(w, h, 1))
}

// handle applies one terminal event; returns false to quit
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		if v.canvas.Sync() {
			v.relayout()
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	}
	return true
}

func (v *viewer) handleRune(r rune) bool {
	d := v.driver
	switch r {
	case 'q':
		return false
	case ' ':
		d.TogglePause(engine.PauseUser)
	case 'n':
		d.SetScene(v.app.build(v.app.registry.Next(v.app.name)))
	case '2':
		d.Scene().Force2DMode()
	case 'r':
		d.Scene().ResetModeLock()
		d.Restart()
	case 'h':
		v.hud = !v.hud
	}
	return true
}

// present shows the last drawn frame with the HUD on top
func (v *viewer) present() {
	v.canvas.Compose()
	if v.hud {
		v.drawHUD()
	}
	v.screen.Show()
}

func (v *viewer) drawHUD() {
	cols, rows := v.canvas.Cells()
	if rows == 0 {
		return
	}
	line := v.app.title() + "  " + v.app.stats.Snapshot().String()
	col := 0
	for _, r := range line {
		if col >= cols {
			break
		}
		v.screen.SetContent(col, rows-1, r, nil, hudStyle)
		col++
	}
}

// run is the frame loop: terminal events and frame ticks share one goroutine
func (v *viewer) run() {
	events := make(chan tcell.Event, parameter.EventQueueSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(max(v.app.cfg.Engine.FrameInterval/4, time.Millisecond))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return
			}
		case now := <-ticker.C:
			if v.driver.Tick(now) {
				v.present()
			} else if v.driver.Paused() && v.hud {
				v.drawHUD()
				v.screen.Show()
			}
		}
	}
}

// runInteractive opens the terminal and runs until the user quits
func runInteractive(a *app) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		core.SetCrashCleanup(nil)
		screen.Fini()
	}()
	screen.HideCursor()
	screen.Clear()

	v := newViewer(a, screen)
	v.run()
	a.player.Close()
	return nil
}
