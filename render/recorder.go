package render

import (
	"fmt"
	"io"
	"strings"
)

// OpKind identifies a recorded canvas call
type OpKind uint8

const (
	OpClear OpKind = iota
	OpSetTransform
	OpMoveTo
	OpLineTo
	OpClosePath
	OpStrokeColor
	OpFillColor
	OpLineWidth
	OpLineDash
	OpStroke
	OpFill
)

var opNames = [...]string{
	OpClear:        "clear",
	OpSetTransform: "transform",
	OpMoveTo:       "move",
	OpLineTo:       "line",
	OpClosePath:    "close",
	OpStrokeColor:  "stroke-color",
	OpFillColor:    "fill-color",
	OpLineWidth:    "line-width",
	OpLineDash:     "line-dash",
	OpStroke:       "stroke",
	OpFill:         "fill",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("op(%d)", k)
}

// Op is one recorded canvas call
type Op struct {
	Kind   OpKind
	X, Y   float64
	Width  float64
	Color  RGBA
	Dash   []float64
	Offset float64
	Matrix Affine
}

// Recorder is a Canvas that logs every call for inspection and dumping
type Recorder struct {
	Width, Height int
	Ops           []Op
}

// NewRecorder creates a recorder reporting the given surface size
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) SetTransform(m Affine) {
	r.Ops = append(r.Ops, Op{Kind: OpSetTransform, Matrix: m})
}
func (r *Recorder) Clear()              { r.Ops = append(r.Ops, Op{Kind: OpClear}) }
func (r *Recorder) MoveTo(x, y float64) { r.Ops = append(r.Ops, Op{Kind: OpMoveTo, X: x, Y: y}) }
func (r *Recorder) LineTo(x, y float64) { r.Ops = append(r.Ops, Op{Kind: OpLineTo, X: x, Y: y}) }
func (r *Recorder) ClosePath()          { r.Ops = append(r.Ops, Op{Kind: OpClosePath}) }
func (r *Recorder) SetStrokeColor(c RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeColor, Color: c})
}
func (r *Recorder) SetFillColor(c RGBA) { r.Ops = append(r.Ops, Op{Kind: OpFillColor, Color: c}) }
func (r *Recorder) SetLineWidth(w float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLineWidth, Width: w})
}
func (r *Recorder) SetLineDash(pattern []float64, offset float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLineDash, Dash: append([]float64(nil), pattern...), Offset: offset})
}
func (r *Recorder) Stroke() { r.Ops = append(r.Ops, Op{Kind: OpStroke}) }
func (r *Recorder) Fill()   { r.Ops = append(r.Ops, Op{Kind: OpFill}) }

// Reset drops all recorded ops
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Count returns how many ops of kind were recorded
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Strokes returns the stroke color in effect at each Stroke call
func (r *Recorder) Strokes() []RGBA {
	var out []RGBA
	cur := White
	for _, op := range r.Ops {
		switch op.Kind {
		case OpStrokeColor:
			cur = op.Color
		case OpStroke:
			out = append(out, cur)
		}
	}
	return out
}

// Dump writes one line per op
func (r *Recorder) Dump(w io.Writer) error {
	var sb strings.Builder
	for _, op := range r.Ops {
		sb.WriteString(op.Kind.String())
		switch op.Kind {
		case OpMoveTo, OpLineTo:
			fmt.Fprintf(&sb, " %.3f %.3f", op.X, op.Y)
		case OpStrokeColor, OpFillColor:
			sb.WriteByte(' ')
			sb.WriteString(op.Color.CSS())
		case OpLineWidth:
			fmt.Fprintf(&sb, " %.3f", op.Width)
		case OpLineDash:
			fmt.Fprintf(&sb, " %v %.3f", op.Dash, op.Offset)
		case OpSetTransform:
			m := op.Matrix
			fmt.Fprintf(&sb, " %.3f %.3f %.3f %.3f %.3f %.3f", m.A, m.B, m.C, m.D, m.E, m.F)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
