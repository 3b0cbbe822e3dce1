package asset

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/aura/vmath"
)

// flattenTolerance is the maximum curve deviation in glyph units
const flattenTolerance = 0.25

// paintState is the inherited presentation state of one <g> level
type paintState struct {
	group  string
	fill   string
	stroke string
	// xf maps element coordinates to glyph coordinates
	xf gg.Matrix
}

// Parse decodes an SVG document into a glyph of flattened elements
func Parse(data []byte) (*Glyph, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	g := &Glyph{Bounds: emptyRect()}
	stack := []paintState{{xf: gg.Identity()}}
	order := 0
	sawRoot := false

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			attrs := attrMap(t.Attr)
			top := stack[len(stack)-1]
			st, err := inherit(top, attrs)
			if err != nil {
				return nil, fmt.Errorf("%w: <%s>: %v", ErrMalformed, t.Name.Local, err)
			}

			switch t.Name.Local {
			case "svg":
				sawRoot = true
				g.ViewBox = rootBox(attrs)
				stack = append(stack, st)
			case "g":
				st.group = groupName(top.group, attrs)
				stack = append(stack, st)
			default:
				subpaths, ok, err := elementPaths(t.Name.Local, attrs)
				if err != nil {
					return nil, fmt.Errorf("%w: <%s>: %v", ErrMalformed, t.Name.Local, err)
				}
				if ok {
					transformAll(subpaths, st.xf)
					if e, ok := newElement(st.group, kindOf(st), subpaths, order); ok {
						g.Elements = append(g.Elements, e)
						g.Bounds = g.Bounds.Extend(vmath.Vec2{X: e.Bounds.MinX, Y: e.Bounds.MinY})
						g.Bounds = g.Bounds.Extend(vmath.Vec2{X: e.Bounds.MaxX, Y: e.Bounds.MaxY})
						order++
					}
				}
				// Push so the matching EndElement pops symmetrically
				stack = append(stack, st)
			}

		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if !sawRoot {
		return nil, fmt.Errorf("%w: missing <svg> root", ErrMalformed)
	}
	if len(g.Elements) == 0 {
		return nil, fmt.Errorf("%w: no drawable elements", ErrMalformed)
	}
	return g, nil
}

func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name.Local] = strings.TrimSpace(a.Value)
	}
	// Inline style wins over presentation attributes
	for _, decl := range strings.Split(m["style"], ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "fill" || k == "stroke" {
			m[k] = strings.TrimSpace(v)
		}
	}
	return m
}

// inherit applies an element's paint and transform attributes on top of its parent's state
func inherit(parent paintState, attrs map[string]string) (paintState, error) {
	st := parent
	if v, ok := attrs["fill"]; ok {
		st.fill = v
	}
	if v, ok := attrs["stroke"]; ok {
		st.stroke = v
	}
	if v := attrs["transform"]; v != "" {
		m, err := parseTransform(v)
		if err != nil {
			return st, fmt.Errorf("transform: %w", err)
		}
		st.xf = parent.xf.Multiply(m)
	}
	return st, nil
}

// groupName resolves the reveal group: a known id or class wins, otherwise the parent's group, otherwise the id
func groupName(parent string, attrs map[string]string) string {
	candidates := append([]string{attrs["id"]}, strings.Fields(attrs["class"])...)
	for _, c := range candidates {
		switch strings.ToLower(c) {
		case GroupOutline, GroupDetails, GroupFills:
			return strings.ToLower(c)
		}
	}
	if parent != "" {
		return parent
	}
	return attrs["id"]
}

func kindOf(st paintState) Kind {
	if st.group == GroupFills {
		return KindFill
	}
	if painted(st.fill) && !painted(st.stroke) {
		return KindFill
	}
	return KindStroke
}

func painted(v string) bool {
	return v != "" && !strings.EqualFold(v, "none") && !strings.EqualFold(v, "transparent")
}

func rootBox(attrs map[string]string) Rect {
	if vb, err := parseFloatList(attrs["viewBox"]); err == nil && len(vb) == 4 && vb[2] > 0 && vb[3] > 0 {
		return Rect{MinX: vb[0], MinY: vb[1], MaxX: vb[0] + vb[2], MaxY: vb[1] + vb[3]}
	}
	w, _ := strconv.ParseFloat(strings.TrimSuffix(attrs["width"], "px"), 64)
	h, _ := strconv.ParseFloat(strings.TrimSuffix(attrs["height"], "px"), 64)
	return Rect{MaxX: w, MaxY: h}
}

// elementPaths flattens a shape element; ok is false for non-drawable elements
func elementPaths(name string, a map[string]string) ([][]vmath.Vec2, bool, error) {
	switch name {
	case "path":
		if a["d"] == "" {
			return nil, false, nil
		}
		sp, err := parsePathData(a["d"])
		return sp, true, err

	case "polyline", "polygon":
		nums, err := parseFloatList(a["points"])
		if err != nil {
			return nil, false, err
		}
		if len(nums) < 4 {
			return nil, false, nil
		}
		p := gg.NewPath()
		p.MoveTo(nums[0], nums[1])
		for i := 2; i+1 < len(nums); i += 2 {
			p.LineTo(nums[i], nums[i+1])
		}
		if name == "polygon" {
			p.Close()
		}
		return [][]vmath.Vec2{flatten(p)}, true, nil

	case "line":
		n, err := numbers(a, "x1", "y1", "x2", "y2")
		if err != nil {
			return nil, false, err
		}
		p := gg.NewPath()
		p.MoveTo(n[0], n[1])
		p.LineTo(n[2], n[3])
		return [][]vmath.Vec2{flatten(p)}, true, nil

	case "circle":
		n, err := numbers(a, "cx", "cy", "r")
		if err != nil {
			return nil, false, err
		}
		if n[2] <= 0 {
			return nil, false, nil
		}
		p := gg.NewPath()
		p.Circle(n[0], n[1], n[2])
		return [][]vmath.Vec2{flatten(p)}, true, nil

	case "ellipse":
		n, err := numbers(a, "cx", "cy", "rx", "ry")
		if err != nil {
			return nil, false, err
		}
		if n[2] <= 0 || n[3] <= 0 {
			return nil, false, nil
		}
		p := gg.NewPath()
		p.Ellipse(n[0], n[1], n[2], n[3])
		return [][]vmath.Vec2{flatten(p)}, true, nil

	case "rect":
		n, err := numbers(a, "x", "y", "width", "height")
		if err != nil {
			return nil, false, err
		}
		if n[2] <= 0 || n[3] <= 0 {
			return nil, false, nil
		}
		p := gg.NewPath()
		p.Rectangle(n[0], n[1], n[2], n[3])
		return [][]vmath.Vec2{flatten(p)}, true, nil
	}
	return nil, false, nil
}

// numbers reads named numeric attributes; missing ones default to 0
func numbers(a map[string]string, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, n := range names {
		v, ok := a[n]
		if !ok || v == "" {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", n, err)
		}
		out[i] = f
	}
	return out, nil
}

func parseFloatList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func flatten(p *gg.Path) []vmath.Vec2 {
	pts := p.Flatten(flattenTolerance)
	out := make([]vmath.Vec2, len(pts))
	for i, pt := range pts {
		out[i] = vmath.Vec2{X: pt.X, Y: pt.Y}
	}
	return out
}

// parsePathData parses an SVG path "d" attribute with gg and flattens each subpath
// Drawing after Z without a new M starts a subpath at the closed subpath's start
func parsePathData(d string) ([][]vmath.Vec2, error) {
	path, err := gg.ParseSVGPath(d)
	if err != nil {
		return nil, err
	}

	var (
		out   [][]vmath.Vec2
		cur   *gg.Path
		start gg.Point
		at    gg.Point
	)
	flush := func() {
		if cur != nil {
			if pts := flatten(cur); len(pts) >= 2 {
				out = append(out, pts)
			}
			cur = nil
		}
	}
	ensure := func() {
		if cur == nil {
			cur = gg.NewPath()
			cur.MoveTo(at.X, at.Y)
			start = at
		}
	}

	path.Iterate(func(verb gg.PathVerb, c []float64) {
		switch verb {
		case gg.MoveTo:
			flush()
			at = gg.Pt(c[0], c[1])
			ensure()
		case gg.LineTo:
			ensure()
			cur.LineTo(c[0], c[1])
			at = gg.Pt(c[0], c[1])
		case gg.QuadTo:
			ensure()
			cur.QuadraticTo(c[0], c[1], c[2], c[3])
			at = gg.Pt(c[2], c[3])
		case gg.CubicTo:
			ensure()
			cur.CubicTo(c[0], c[1], c[2], c[3], c[4], c[5])
			at = gg.Pt(c[4], c[5])
		case gg.Close:
			if cur != nil {
				cur.Close()
			}
			flush()
			at = start
		}
	})
	flush()
	return out, nil
}
