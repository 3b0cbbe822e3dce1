package main

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aura/config"
	"github.com/lixenwraith/aura/registry"
	"github.com/lixenwraith/aura/scene"
)

// testApp builds an app with a short intro and the given scene
func testApp(t *testing.T, name string, args ...string) (*app, options) {
	t.Helper()
	o, err := parseFlags(append([]string{"-scene", name, "-size", "64x48", "-frames", "6"}, args...), io.Discard)
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Scene.Name = name
	cfg.Scene.IntroDuration = 50 * time.Millisecond
	cfg.Governor.WarmUp = time.Hour
	require.NoError(t, cfg.Validate())
	return newApp(cfg, o), o
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	t.Setenv("AURA_SCENE", "contour")
	o, err := parseFlags([]string{"-mode", "2d", "-audio"}, io.Discard)
	require.NoError(t, err)
	cfg, err := loadConfig(o)
	require.NoError(t, err)
	assert.Equal(t, "contour", cfg.Scene.Name, "environment applies when no flag is given")
	assert.Equal(t, "2d", cfg.Scene.DefaultMode)
	assert.True(t, cfg.Audio.Enabled)

	o, err = parseFlags([]string{"-scene", "rune"}, io.Discard)
	require.NoError(t, err)
	cfg, err = loadConfig(o)
	require.NoError(t, err)
	assert.Equal(t, "rune", cfg.Scene.Name)
}

func TestLoadConfig_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  frame_interval: 0s\n"), 0o644))
	o, err := parseFlags([]string{"-config", path}, io.Discard)
	require.NoError(t, err)
	_, err = loadConfig(o)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestApp_BuildFallsBackToPlaceholder(t *testing.T) {
	a, _ := testApp(t, "spiral")
	s := a.build("spiral")
	assert.Equal(t, "placeholder", s.Name())
	assert.Equal(t, registry.Placeholder, a.name)
}

func TestApp_DayFromBirthDate(t *testing.T) {
	a, _ := testApp(t, "rune", "-date", "2012-12-21", "-lang", "en")
	assert.Equal(t, 4, a.day.Tone)
	assert.Equal(t, 20, a.day.SignIndex)
	assert.True(t, strings.HasPrefix(a.title(), "4 "))

	b, _ := testApp(t, "rune")
	assert.Equal(t, 1, b.day.Tone)
	assert.Equal(t, 1, b.day.SignIndex)
}

func TestRunHeadless_Dump(t *testing.T) {
	a, o := testApp(t, "lissajous", "-dump")
	var out bytes.Buffer
	require.NoError(t, runHeadless(a, o, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, o.frames+1)
	assert.True(t, strings.HasPrefix(lines[0], "frame 0000 intro"))
	assert.Contains(t, lines[len(lines)-2], "main")
	assert.Contains(t, lines[len(lines)-1], "#6")
}

func TestRunHeadless_Deterministic(t *testing.T) {
	run := func() string {
		a, o := testApp(t, "rune", "-dump", "-seed", "fixed")
		var out bytes.Buffer
		require.NoError(t, runHeadless(a, o, &out))
		return out.String()
	}
	assert.Equal(t, run(), run())
}

func TestRunHeadless_ExportPNG(t *testing.T) {
	dir := t.TempDir()
	a, o := testApp(t, "contour", "-export", dir, "-date", "2012-12-22", "-frames", "3")
	require.NoError(t, runHeadless(a, o, io.Discard))

	for i := range 3 {
		f, err := os.Open(filepath.Join(dir, fmt.Sprintf("frame-%04d.png", i)))
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 64, img.Bounds().Dx())
		assert.Equal(t, 48, img.Bounds().Dy())
	}
}

func newTestViewer(t *testing.T, name string) (*viewer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 12)
	t.Cleanup(screen.Fini)
	a, _ := testApp(t, name)
	return newViewer(a, screen), screen
}

func TestViewer_Keys(t *testing.T) {
	v, _ := newTestViewer(t, "lissajous")
	require.Equal(t, "lissajous", v.driver.Scene().Name())

	assert.True(t, v.handleRune('n'))
	assert.Equal(t, "rune", v.driver.Scene().Name())

	assert.True(t, v.handleRune(' '))
	assert.True(t, v.driver.Paused())
	assert.True(t, v.handleRune(' '))
	assert.False(t, v.driver.Paused())

	assert.True(t, v.handleRune('2'))
	assert.True(t, v.driver.Scene().IsModeLockedTo2D())
	assert.True(t, v.handleRune('r'))
	assert.False(t, v.driver.Scene().IsModeLockedTo2D())
	assert.Equal(t, scene.Mode3D, v.driver.Scene().Mode())

	assert.False(t, v.handleRune('q'))
}

func TestViewer_ResizeRelayouts(t *testing.T) {
	v, screen := newTestViewer(t, "placeholder")
	w, h := v.driver.View().SceneSize()
	assert.Equal(t, 80.0, w)
	assert.Equal(t, 48.0, h)

	screen.SetSize(20, 5)
	assert.True(t, v.handle(tcell.NewEventResize(20, 5)))
	w, h = v.driver.View().SceneSize()
	assert.Equal(t, 40.0, w)
	assert.Equal(t, 20.0, h)
}

func TestViewer_PresentDrawsHUD(t *testing.T) {
	v, screen := newTestViewer(t, "placeholder")
	clock := v.driver.Clock()
	now := clock.RealTime()
	v.driver.Tick(now)
	require.True(t, v.driver.Tick(now.Add(time.Second)))
	v.present()

	cols, rows := screen.Size()
	var line strings.Builder
	for col := 0; col < cols; col++ {
		r, _, _, _ := screen.GetContent(col, rows-1)
		line.WriteRune(r)
	}
	assert.True(t, strings.HasPrefix(line.String(), v.app.title()), line.String())

	// the ring leaves braille dots somewhere above the HUD
	found := false
	for row := 0; row < rows-1 && !found; row++ {
		for col := 0; col < cols; col++ {
			if r, _, _, _ := screen.GetContent(col, row); r >= 0x2800 && r <= 0x28FF {
				found = true
				break
			}
		}
	}
	assert.True(t, found)
}
