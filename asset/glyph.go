package asset

import (
	"errors"
	"math"

	"github.com/lixenwraith/aura/vmath"
)

var (
	// ErrNotFound is returned when a glyph resource does not exist
	ErrNotFound = errors.New("glyph not found")
	// ErrMalformed is returned when a glyph resource cannot be parsed or has nothing to draw
	ErrMalformed = errors.New("malformed glyph")
)

// Known glyph groups in draw priority order
const (
	GroupOutline = "outline"
	GroupDetails = "details"
	GroupFills   = "fills"
)

// GroupRank orders groups for reveal: outline, details, fills, then everything else
func GroupRank(group string) int {
	switch group {
	case GroupOutline:
		return 0
	case GroupDetails:
		return 1
	case GroupFills:
		return 2
	default:
		return 3
	}
}

// Kind selects how an element is revealed
type Kind uint8

const (
	KindStroke Kind = iota
	KindFill
)

func (k Kind) String() string {
	if k == KindFill {
		return "fill"
	}
	return "stroke"
}

// Rect is an axis-aligned bounding box
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// emptyRect is the identity for Extend
func emptyRect() Rect {
	return Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

// Extend grows r to include p
func (r Rect) Extend(p vmath.Vec2) Rect {
	r.MinX = min(r.MinX, p.X)
	r.MinY = min(r.MinY, p.Y)
	r.MaxX = max(r.MaxX, p.X)
	r.MaxY = max(r.MaxY, p.Y)
	return r
}

// Empty reports whether r contains no points
func (r Rect) Empty() bool { return r.MinX > r.MaxX || r.MinY > r.MaxY }

// Center returns the box centre
func (r Rect) Center() vmath.Vec2 {
	return vmath.Vec2{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Width returns the horizontal extent
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Element is one drawable SVG element flattened into polylines
type Element struct {
	Group    string
	Kind     Kind
	Subpaths [][]vmath.Vec2
	// Lengths holds per-subpath polyline length, Length their sum
	Lengths []float64
	Length  float64
	Bounds  Rect
	// Order is the position in document order
	Order int
}

// Glyph is a parsed vector sign
type Glyph struct {
	ViewBox  Rect
	Bounds   Rect
	Elements []Element
}

// Center returns the centre of the drawn content, falling back to the viewBox
func (g *Glyph) Center() vmath.Vec2 {
	if !g.Bounds.Empty() {
		return g.Bounds.Center()
	}
	return g.ViewBox.Center()
}

// Frame returns the box used to fit the glyph into a viewport
func (g *Glyph) Frame() Rect {
	if g.ViewBox.Width() > 0 && g.ViewBox.Height() > 0 {
		return g.ViewBox
	}
	return g.Bounds
}

// newElement measures subpaths and fills in derived fields
func newElement(group string, kind Kind, subpaths [][]vmath.Vec2, order int) (Element, bool) {
	e := Element{Group: group, Kind: kind, Order: order, Bounds: emptyRect()}
	for _, sp := range subpaths {
		if len(sp) < 2 {
			continue
		}
		l := 0.0
		for i, p := range sp {
			if !p.Finite() {
				return Element{}, false
			}
			e.Bounds = e.Bounds.Extend(p)
			if i > 0 {
				l += vmath.Dist2(sp[i-1], p)
			}
		}
		e.Subpaths = append(e.Subpaths, sp)
		e.Lengths = append(e.Lengths, l)
		e.Length += l
	}
	return e, len(e.Subpaths) > 0
}
