package sprite

type barFilledAssembler struct{ colorOnly }

func (barFilledAssembler) Name() string {
	return "bar-filled"
}

func (barFilledAssembler) CreateData(*Component) *RenderData {
	return createQuadData()
}

// UpdateRenderData clips a quad to the filled range. Positions and uvs are
// clipped together, so either dirty flag regenerates both.
func (barFilledAssembler) UpdateRenderData(c *Component) {
	rd := c.renderData
	if rd == nil || !rd.dirty() {
		return
	}

	bounds := contentRect(c)
	fillStart, fillEnd := fillInterval(c.fillStart, c.fillRange)

	clipped := bounds
	switch c.fillType {
	case FillVertical:
		h := bounds.Height()
		clipped.Min[1] = bounds.Min[1] + fillStart*h
		clipped.Max[1] = bounds.Min[1] + fillEnd*h

	default:
		w := bounds.Width()
		clipped.Min[0] = bounds.Min[0] + fillStart*w
		clipped.Max[0] = bounds.Min[0] + fillEnd*w
	}

	setQuadPositions(rd, clipped)

	uv := frameUV(c)
	for idx := range rd.Vertices {
		rd.Vertices[idx].UV = uvAt(bounds, uv, rd.Vertices[idx].Position)
	}

	rd.UVDirty = false
	rd.VertDirty = false
}

// fillInterval converts start and range into a normalized [start, end]
// interval. A negative range fills backwards from start.
func fillInterval(fillStart, fillRange float32) (float32, float32) {
	if fillRange < 0 {
		fillStart += fillRange
		fillRange = -fillRange
	}

	fillEnd := clamp(fillStart+fillRange, 0, 1)
	fillStart = clamp(fillStart, 0, 1)

	return fillStart, max(fillStart, fillEnd)
}

func clamp[T float32 | float64](value, lo, hi T) T {
	return min(max(value, lo), hi)
}

