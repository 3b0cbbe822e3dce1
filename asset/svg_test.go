package asset

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aura/vmath"
)

func TestParsePathData_CompactNumbers(t *testing.T) {
	sp, err := parsePathData("M1.5.5L-4-5l2e1,0")
	require.NoError(t, err)
	require.Len(t, sp, 1)
	pts := sp[0]
	require.Len(t, pts, 3)
	assert.Equal(t, vmath.Vec2{X: 1.5, Y: 0.5}, pts[0])
	assert.Equal(t, vmath.Vec2{X: -4, Y: -5}, pts[1])
	assert.InDelta(t, 16, pts[2].X, 1e-9)
}

func TestParsePathData_ArcFlagsWithoutSeparators(t *testing.T) {
	// large-arc=1, sweep=0, then the endpoint 10,0
	sp, err := parsePathData("M0 0 A5 5 0 1010 0")
	require.NoError(t, err)
	require.Len(t, sp, 1)
	pts := sp[0]
	assert.Greater(t, len(pts), 2, "arc is flattened into several points")
	last := pts[len(pts)-1]
	assert.InDelta(t, 10, last.X, 1e-6)
	assert.InDelta(t, 0, last.Y, 1e-6)

	spaced, err := parsePathData("M0 0 A5 5 0 1 0 10 0")
	require.NoError(t, err)
	assert.Equal(t, spaced, sp)
}

func TestParsePathData_Lines(t *testing.T) {
	sp, err := parsePathData("M0 0 L10 0 L10 10 Z")
	require.NoError(t, err)
	require.Len(t, sp, 1)
	require.Len(t, sp[0], 4)
	assert.Equal(t, sp[0][0], sp[0][3], "closed subpath returns to start")
}

func TestParsePathData_RelativeAndImplicit(t *testing.T) {
	sp, err := parsePathData("m5 5 10 0 0 10 h-10 v-10")
	require.NoError(t, err)
	require.Len(t, sp, 1)
	pts := sp[0]
	require.Len(t, pts, 5)
	assert.InDelta(t, 15, pts[1].X, 1e-9)
	assert.InDelta(t, 15, pts[2].Y, 1e-9)
	assert.InDelta(t, 5, pts[4].X, 1e-9)
	assert.InDelta(t, 5, pts[4].Y, 1e-9)
}

func TestParsePathData_SubpathsAfterClose(t *testing.T) {
	sp, err := parsePathData("M0 0 L4 0 Z L0 4 M10 10 L12 12")
	require.NoError(t, err)
	require.Len(t, sp, 3)
	// after Z drawing resumes from the subpath start
	assert.Equal(t, 0.0, sp[1][0].X)
	assert.Equal(t, 4.0, sp[1][1].Y)
}

func TestParsePathData_CurvesFlatten(t *testing.T) {
	sp, err := parsePathData("M0 0 C0 50 100 50 100 0 S200 -50 200 0 Q250 50 300 0 T400 0 A50 50 0 0 1 500 0")
	require.NoError(t, err)
	require.Len(t, sp, 1)
	pts := sp[0]
	assert.Greater(t, len(pts), 10)
	last := pts[len(pts)-1]
	assert.InDelta(t, 500, last.X, 1e-6)
	assert.InDelta(t, 0, last.Y, 1e-6)
	for _, p := range pts {
		assert.True(t, p.Finite())
	}
}

func TestParsePathData_Errors(t *testing.T) {
	for _, d := range []string{"10 10", "M 1", "M0 0 Z 5 5", "M0 0 X1 1", "M0 0 Lfoo 1"} {
		t.Run(d, func(t *testing.T) {
			_, err := parsePathData(d)
			assert.Error(t, err)
		})
	}
}

func TestParse_GroupsAndKinds(t *testing.T) {
	data, err := fs.ReadFile(Embedded(), fmt.Sprintf(DefaultPattern, 2))
	require.NoError(t, err)

	g, err := Parse(data)
	require.NoError(t, err)

	counts := map[string]int{}
	for i, e := range g.Elements {
		counts[e.Group]++
		assert.Equal(t, i, e.Order)
		assert.Greater(t, e.Length, 0.0)
		if e.Group == GroupFills {
			assert.Equal(t, KindFill, e.Kind)
		} else {
			assert.Equal(t, KindStroke, e.Kind)
		}
	}
	assert.Equal(t, map[string]int{GroupOutline: 2, GroupDetails: 5, GroupFills: 3}, counts)
	assert.Equal(t, Rect{MaxX: 100, MaxY: 100}, g.ViewBox)
	assert.InDelta(t, 50, g.Center().X, 1)
}

func TestParse_KindFromPaint(t *testing.T) {
	doc := `<svg viewBox="0 0 10 10">
	  <g id="art">
	    <path d="M0 0 L5 5" style="fill:none;stroke:#000"/>
	    <rect x="1" y="1" width="3" height="3" fill="#fff"/>
	    <g class="glyph details"><line x1="0" y1="0" x2="3" y2="0"/></g>
	  </g>
	</svg>`
	g, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, g.Elements, 3)

	assert.Equal(t, KindStroke, g.Elements[0].Kind)
	assert.Equal(t, "art", g.Elements[0].Group)
	assert.Equal(t, KindFill, g.Elements[1].Kind)
	assert.Equal(t, GroupDetails, g.Elements[2].Group)
}

func TestParse_Malformed(t *testing.T) {
	tests := map[string]string{
		"broken xml": `<svg><path d="M0 0 L1 1"`,
		"no root":    `<g><path d="M0 0 L1 1"/></g>`,
		"nothing":    `<svg viewBox="0 0 1 1"></svg>`,
		"bad path":   `<svg><path d="M0 0 L1"/></svg>`,
		"bad number": `<svg><circle cx="a" cy="0" r="1"/></svg>`,
		"bad points": `<svg><polyline points="0,0 x,1"/></svg>`,
		"bad transform": `<svg><g transform="warp(2)"><line x2="1"/></g></svg>`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParse_Transforms(t *testing.T) {
	doc := `<svg viewBox="0 0 100 100">
	  <g id="outline" transform="translate(10 20)">
	    <line x1="0" y1="0" x2="5" y2="0" transform="scale(2)"/>
	    <g transform="rotate(90)"><line x1="0" y1="0" x2="5" y2="0"/></g>
	  </g>
	  <line x1="1" y1="1" x2="2" y2="1" transform="matrix(1 0 0 1 3 4)"/>
	</svg>`
	g, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, g.Elements, 3)

	near := func(want vmath.Vec2, got vmath.Vec2) {
		t.Helper()
		assert.InDelta(t, want.X, got.X, 1e-9)
		assert.InDelta(t, want.Y, got.Y, 1e-9)
	}
	// outer translate applies after the element's own scale
	scaled := g.Elements[0].Subpaths[0]
	near(vmath.Vec2{X: 10, Y: 20}, scaled[0])
	near(vmath.Vec2{X: 20, Y: 20}, scaled[1])
	assert.InDelta(t, 10, g.Elements[0].Length, 1e-9)

	rotated := g.Elements[1].Subpaths[0]
	near(vmath.Vec2{X: 10, Y: 20}, rotated[0])
	near(vmath.Vec2{X: 10, Y: 25}, rotated[1])
	assert.Equal(t, GroupOutline, g.Elements[1].Group)

	near(vmath.Vec2{X: 4, Y: 5}, g.Elements[2].Subpaths[0][0])
	assert.InDelta(t, 25, g.Bounds.MaxY, 1e-9)
}

func TestParseTransform(t *testing.T) {
	m, err := parseTransform("rotate(180, 5, 5) translate(1)")
	require.NoError(t, err)
	p := m.TransformPoint(gg.Pt(0, 0))
	assert.InDelta(t, 9, p.X, 1e-9)
	assert.InDelta(t, 10, p.Y, 1e-9)

	m, err = parseTransform("skewX(45)")
	require.NoError(t, err)
	p = m.TransformPoint(gg.Pt(0, 2))
	assert.InDelta(t, 2, p.X, 1e-9)

	for _, bad := range []string{"spin(3)", "translate(1 2 3)", "scale(", "matrix(1 0 0 1)", "rotate(a)"} {
		_, err := parseTransform(bad)
		assert.Error(t, err, bad)
	}
}

func TestEmbedded_AllSignsParse(t *testing.T) {
	for i := 1; i <= 20; i++ {
		data, err := fs.ReadFile(Embedded(), fmt.Sprintf(DefaultPattern, i))
		require.NoError(t, err, "sign %d", i)
		g, err := Parse(data)
		require.NoError(t, err, "sign %d", i)
		assert.NotEmpty(t, g.Elements)
	}
}

func TestGroupRank(t *testing.T) {
	assert.Less(t, GroupRank(GroupOutline), GroupRank(GroupDetails))
	assert.Less(t, GroupRank(GroupDetails), GroupRank(GroupFills))
	assert.Less(t, GroupRank(GroupFills), GroupRank("misc"))
}
