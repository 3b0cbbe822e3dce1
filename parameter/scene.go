package parameter

import "time"

// Scene Defaults
const (
	// IntroDuration is the length of the progressive reveal
	IntroDuration = 6 * time.Second

	// DefaultMode is the rendering mode scenes start in
	DefaultMode = "3d"

	// DefaultScene is shown when none is requested
	DefaultScene = "lissajous"

	// LissajousSamples is the base curve resolution
	LissajousSamples = 720

	// RuneSamples is the rune curve resolution before simplification
	RuneSamples = 360
)

// Glyph Assets
const (
	// GlyphPattern formats a day-sign index into a glyph resource path
	GlyphPattern = "glyphs/sign-%02d.svg"

	// GlyphCacheCapacity is the number of parsed glyphs kept
	GlyphCacheCapacity = 64
)
