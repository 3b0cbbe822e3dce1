package render

// View is the render context handed to Draw: device pixel ratio plus the design-to-viewport fit
// It replaces ambient canvas transform state; the driver owns it and scenes read it
type View struct {
	// Viewport in logical (CSS-like) pixels
	Width, Height float64
	// DPR is the device pixel ratio; logical * DPR = device pixels
	DPR float64

	// Design space scenes draw in; zero means the viewport itself
	DesignWidth, DesignHeight float64

	// Scale and offset map design units into logical pixels (letterboxed)
	Scale            float64
	OffsetX, OffsetY float64
}

// NewView fits a design space into a viewport; non-positive dpr is treated as 1
func NewView(width, height, dpr, designWidth, designHeight float64) View {
	if dpr <= 0 {
		dpr = 1
	}
	v := View{
		Width:        width,
		Height:       height,
		DPR:          dpr,
		DesignWidth:  designWidth,
		DesignHeight: designHeight,
		Scale:        1,
	}
	if designWidth > 0 && designHeight > 0 && width > 0 && height > 0 {
		v.Scale = min(width/designWidth, height/designHeight)
		v.OffsetX = (width - designWidth*v.Scale) / 2
		v.OffsetY = (height - designHeight*v.Scale) / 2
	}
	return v
}

// SceneSize returns the size scenes lay out in: design size when set, else the viewport
func (v View) SceneSize() (float64, float64) {
	if v.DesignWidth > 0 && v.DesignHeight > 0 {
		return v.DesignWidth, v.DesignHeight
	}
	return v.Width, v.Height
}

// Matrix returns the combined dpr * offset * scale transform
func (v View) Matrix() Affine {
	dpr := v.DPR
	if dpr <= 0 {
		dpr = 1
	}
	return Scale(dpr, dpr).
		Multiply(Translate(v.OffsetX, v.OffsetY)).
		Multiply(Scale(v.Scale, v.Scale))
}

// DeviceSize returns the viewport in device pixels
func (v View) DeviceSize() (int, int) {
	return int(v.Width * v.DPR), int(v.Height * v.DPR)
}
