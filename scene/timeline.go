package scene

import (
	"cmp"
	"slices"
	"time"

	"github.com/lixenwraith/aura/asset"
	"github.com/lixenwraith/aura/render"
	"github.com/lixenwraith/aura/vmath"
)

// Reveal duration bounds for a whole glyph
const (
	minRevealDuration = 3 * time.Second
	maxRevealDuration = 12 * time.Second
)

// Pacing returns the base duration and the per-segment increment for g
func Pacing(g Gender) (base, perSegment time.Duration) {
	switch g {
	case GenderMale:
		return 1800 * time.Millisecond, 120 * time.Millisecond
	case GenderFemale:
		return 2600 * time.Millisecond, 160 * time.Millisecond
	default:
		return 2200 * time.Millisecond, 140 * time.Millisecond
	}
}

// TotalDuration is the clamped reveal length for n segments
func TotalDuration(g Gender, n int) time.Duration {
	base, per := Pacing(g)
	return min(max(base+per*time.Duration(max(n, 0)), minRevealDuration), maxRevealDuration)
}

// groupBudget is the share of the total reveal given to each group rank
var groupBudget = [...]float64{0.45, 0.35, 0.20, 0.15}

// groupWidth scales line width per group rank
var groupWidth = [...]float64{1.6, 1.0, 1.0, 0.8}

// Segment is one timed element of a contour reveal
type Segment struct {
	Element     *asset.Element
	Start       time.Duration
	Duration    time.Duration
	Kind        asset.Kind
	Color       render.RGBA
	WidthFactor float64
	Group       string
}

// Progress returns the eased reveal fraction of the segment at elapsed
func (s Segment) Progress(elapsed time.Duration) float64 {
	if s.Duration <= 0 {
		if elapsed >= s.Start {
			return 1
		}
		return 0
	}
	return vmath.EaseInOutCubic(vmath.Clamp01(float64(elapsed-s.Start) / float64(s.Duration)))
}

// Timeline is the ordered reveal schedule of a glyph
type Timeline struct {
	Segments []Segment
	Total    time.Duration
}

// OrderElements returns element indices sorted by group rank, then the gender's spatial key
// Male: bounding-box centre left to right, then top to bottom
// Female: top to bottom, then distance from the glyph centre
// Neutral: document order
func OrderElements(elems []asset.Element, g Gender, center vmath.Vec2) []int {
	idx := make([]int, len(elems))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		ea, eb := &elems[a], &elems[b]
		if c := cmp.Compare(asset.GroupRank(ea.Group), asset.GroupRank(eb.Group)); c != 0 {
			return c
		}
		ca, cb := ea.Bounds.Center(), eb.Bounds.Center()
		switch g {
		case GenderMale:
			if c := cmp.Compare(ca.X, cb.X); c != 0 {
				return c
			}
			return cmp.Compare(ca.Y, cb.Y)
		case GenderFemale:
			if c := cmp.Compare(ca.Y, cb.Y); c != 0 {
				return c
			}
			return cmp.Compare(vmath.Dist2(ca, center), vmath.Dist2(cb, center))
		default:
			return cmp.Compare(ea.Order, eb.Order)
		}
	})
	return idx
}

// BuildTimeline schedules every element of glyph
// Groups play one after another; each gets its budget share of the total,
// renormalized over the groups present, split inside the group by path length
func BuildTimeline(glyph *asset.Glyph, g Gender, palette []render.RGBA) Timeline {
	if glyph == nil || len(glyph.Elements) == 0 {
		return Timeline{}
	}
	order := OrderElements(glyph.Elements, g, glyph.Center())
	total := TotalDuration(g, len(order))

	// Per-rank totals; unknown groups share the last rank
	var rankLen [len(groupBudget)]float64
	var rankCount [len(groupBudget)]int
	for _, i := range order {
		r := asset.GroupRank(glyph.Elements[i].Group)
		rankLen[r] += glyph.Elements[i].Length
		rankCount[r]++
	}
	budgetSum := 0.0
	for r, n := range rankCount {
		if n > 0 {
			budgetSum += groupBudget[r]
		}
	}

	tl := Timeline{Segments: make([]Segment, 0, len(order)), Total: total}
	var cursor time.Duration
	for _, i := range order {
		e := &glyph.Elements[i]
		r := asset.GroupRank(e.Group)
		groupDur := float64(total) * groupBudget[r] / budgetSum

		share := 1 / float64(rankCount[r])
		if rankLen[r] > 0 {
			share = e.Length / rankLen[r]
		}
		d := time.Duration(groupDur * share)

		col := render.White
		if len(palette) > 0 {
			col = palette[min(r, len(palette)-1)]
		}
		tl.Segments = append(tl.Segments, Segment{
			Element:     e,
			Start:       cursor,
			Duration:    d,
			Kind:        e.Kind,
			Color:       col,
			WidthFactor: groupWidth[r],
			Group:       e.Group,
		})
		cursor += d
	}
	return tl
}
