package asset

import (
	"embed"
	"io/fs"

	"github.com/lixenwraith/aura/parameter"
)

//go:embed glyphs/*.svg
var embedded embed.FS

// DefaultPattern formats a day-sign index into a glyph URL
const DefaultPattern = parameter.GlyphPattern

// Embedded returns the built-in glyph set, one SVG per day sign
func Embedded() fs.FS { return embedded }
