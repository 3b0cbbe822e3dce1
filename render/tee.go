package render

// tee forwards every command to each canvas in order
type tee []Canvas

// Tee returns a Canvas that duplicates drawing onto all of cs; Size reports the first
func Tee(cs ...Canvas) Canvas { return tee(cs) }

func (t tee) Size() (int, int) {
	if len(t) == 0 {
		return 0, 0
	}
	return t[0].Size()
}

func (t tee) SetTransform(m Affine) {
	for _, c := range t {
		c.SetTransform(m)
	}
}

func (t tee) Clear() {
	for _, c := range t {
		c.Clear()
	}
}

func (t tee) MoveTo(x, y float64) {
	for _, c := range t {
		c.MoveTo(x, y)
	}
}

func (t tee) LineTo(x, y float64) {
	for _, c := range t {
		c.LineTo(x, y)
	}
}

func (t tee) ClosePath() {
	for _, c := range t {
		c.ClosePath()
	}
}

func (t tee) SetStrokeColor(col RGBA) {
	for _, c := range t {
		c.SetStrokeColor(col)
	}
}

func (t tee) SetFillColor(col RGBA) {
	for _, c := range t {
		c.SetFillColor(col)
	}
}

func (t tee) SetLineWidth(w float64) {
	for _, c := range t {
		c.SetLineWidth(w)
	}
}

func (t tee) SetLineDash(pattern []float64, offset float64) {
	for _, c := range t {
		c.SetLineDash(pattern, offset)
	}
}

func (t tee) Stroke() {
	for _, c := range t {
		c.Stroke()
	}
}

func (t tee) Fill() {
	for _, c := range t {
		c.Fill()
	}
}
