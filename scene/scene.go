// Package scene holds the animated aura scenes and the state machine they share
//
// Scenes are driven from a single frame loop: Init rolls every random parameter
// from a prng.Source, Resize recomputes pixel geometry without touching the
// generator, and Update/Draw run once per frame.
package scene

import (
	"strings"
	"time"

	"github.com/lixenwraith/aura/parameter"
	"github.com/lixenwraith/aura/prng"
	"github.com/lixenwraith/aura/render"
)

// Phase is the reveal stage of a run
type Phase uint8

const (
	PhaseIntro Phase = iota
	PhaseMain
)

func (p Phase) String() string {
	if p == PhaseMain {
		return "main"
	}
	return "intro"
}

// Mode selects planar or perspective rendering
type Mode string

const (
	Mode2D Mode = "2d"
	Mode3D Mode = "3d"
)

// ParseMode returns the mode named by s, falling back to 3d
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(Mode2D)) {
		return Mode2D
	}
	return Mode3D
}

// Gender steers pacing and ordering of the contour reveal
type Gender string

const (
	GenderNeutral Gender = "neutral"
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
)

// ParseGender normalizes user input; anything unrecognized is neutral
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return GenderMale
	case "female", "f":
		return GenderFemale
	default:
		return GenderNeutral
	}
}

// Context carries the person-specific inputs of a run
type Context struct {
	// DOB is the birth date; the zero time means unknown
	DOB    time.Time
	Gender Gender
}

// HasDOB reports whether a birth date was supplied
func (c Context) HasDOB() bool { return !c.DOB.IsZero() }

// Scene is the contract every aura variant implements
type Scene interface {
	Name() string

	// Init resets all per-run state and rolls parameters from src
	Init(seed string, src prng.Source, ctx Context)
	// SetSeed re-initializes with a fresh generator for seed and the last context
	SetSeed(seed string)

	// Resize recomputes geometry for a w x h scene without consuming randomness
	Resize(w, h float64)
	// Relayout is an alias of Resize
	Relayout(w, h float64)

	Update(dt time.Duration, now time.Time)
	Draw(c render.Canvas, v render.View, now time.Time)

	Force2DMode()
	IsModeLockedTo2D() bool
	ResetModeLock()

	Phase() Phase
	Mode() Mode
	Progress() float64
}

// Options configures scene construction
type Options struct {
	IntroDuration    time.Duration
	DefaultMode      Mode
	LissajousSamples int
	RuneSamples      int

	// Loader and GlyphPattern feed the contour scene
	Loader       GlyphLoader
	GlyphPattern string
}

// DefaultOptions returns the documented defaults; the glyph loader is left unset
func DefaultOptions() Options {
	return Options{
		IntroDuration:    parameter.IntroDuration,
		DefaultMode:      ParseMode(parameter.DefaultMode),
		LissajousSamples: parameter.LissajousSamples,
		RuneSamples:      parameter.RuneSamples,
		GlyphPattern:     parameter.GlyphPattern,
	}
}
