package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/aura/scene"
)

// defaultSeed is used when neither a seed nor a birth date is given
const defaultSeed = "aura"

// options holds parsed command-line flags
type options struct {
	date   string
	clock  string
	seed   string
	gender string
	scene  string
	mode   string
	config string
	lang   string

	export string
	frames int
	size   string
	width  int
	height int

	debug bool
	audio bool
	dump  bool

	dob time.Time
}

// parseFlags parses args (without the program name)
func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("aura", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.date, "date", "", "birth date YYYY-MM-DD")
	fs.StringVar(&o.clock, "time", "", "birth time HH:MM (requires -date)")
	fs.StringVar(&o.seed, "seed", "", "seed text (default: date and time, else \""+defaultSeed+"\")")
	fs.StringVar(&o.gender, "gender", "neutral", "pacing: male, female, neutral")
	fs.StringVar(&o.scene, "scene", "", "scene: lissajous, rune, contour, placeholder (default from config)")
	fs.StringVar(&o.mode, "mode", "", "start mode: 2d or 3d (default from config)")
	fs.StringVar(&o.config, "config", "", "YAML configuration file")
	fs.StringVar(&o.lang, "lang", "", "language for day-sign names (e.g. en, es, ru)")
	fs.StringVar(&o.export, "export", "", "write PNG frames to this directory instead of opening the terminal")
	fs.IntVar(&o.frames, "frames", 120, "number of frames to export or dump")
	fs.StringVar(&o.size, "size", "800x800", "export size WxH in pixels")
	fs.BoolVar(&o.debug, "debug", false, "write debug logs to logs/aura.log")
	fs.BoolVar(&o.audio, "audio", false, "chime when the intro completes")
	fs.BoolVar(&o.dump, "dump", false, "print per-frame draw counts (headless)")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	var err error
	if o.width, o.height, err = parseSize(o.size); err != nil {
		return o, err
	}
	if o.frames < 1 {
		return o, fmt.Errorf("-frames must be at least 1, got %d", o.frames)
	}
	if o.dob, err = parseBirth(o.date, o.clock); err != nil {
		return o, err
	}
	if o.mode != "" && o.mode != string(scene.Mode2D) && o.mode != string(scene.Mode3D) {
		return o, fmt.Errorf("-mode must be 2d or 3d, got %q", o.mode)
	}
	return o, nil
}

// parseSize reads "WxH"
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("-size %q is not WxH", s)
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if err := errors.Join(errW, errH); err != nil {
		return 0, 0, fmt.Errorf("-size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("-size %q must be positive", s)
	}
	return w, h, nil
}

// parseBirth combines -date and -time into a UTC instant; zero when no date
func parseBirth(date, clock string) (time.Time, error) {
	if date == "" {
		if clock != "" {
			return time.Time{}, errors.New("-time requires -date")
		}
		return time.Time{}, nil
	}
	if clock == "" {
		d, err := time.Parse(time.DateOnly, date)
		if err != nil {
			return time.Time{}, fmt.Errorf("-date: %w", err)
		}
		return d, nil
	}
	d, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("-date/-time: %w", err)
	}
	return d, nil
}

// seedText is the explicit seed, else the birth date (and time), else defaultSeed
func (o options) seedText() string {
	switch {
	case o.seed != "":
		return o.seed
	case o.date != "" && o.clock != "":
		return o.date + "T" + o.clock
	case o.date != "":
		return o.date
	default:
		return defaultSeed
	}
}

// sceneContext is the person-specific input handed to scenes
func (o options) sceneContext() scene.Context {
	return scene.Context{DOB: o.dob, Gender: scene.ParseGender(o.gender)}
}

// headless reports whether the run renders off-screen
func (o options) headless() bool { return o.export != "" || o.dump }
