package sprite

import "github.com/oliverbestmann/spritekit/glm"

type slicedAssembler struct{ colorOnly }

func (slicedAssembler) Name() string {
	return "sliced"
}

// CreateData allocates a 4x4 grid of vertices, row by row from the bottom,
// forming nine quads.
func (slicedAssembler) CreateData(*Component) *RenderData {
	rd := newRenderData(16, 9*6)

	rd.Indices = rd.Indices[:0]
	for row := uint16(0); row < 3; row++ {
		for col := uint16(0); col < 3; col++ {
			bl := row*4 + col
			br := bl + 1
			tl := bl + 4
			tr := tl + 1

			rd.Indices = append(rd.Indices, bl, br, tl, tl, br, tr)
		}
	}

	return rd
}

func (slicedAssembler) UpdateRenderData(c *Component) {
	rd := c.renderData
	if rd == nil {
		return
	}

	insets := insetsOf(c)

	if rd.VertDirty {
		rect := contentRect(c)
		size := rect.Size()

		// shrink the borders if the node is smaller than the fixed parts
		scaleX := float32(1)
		if total := insets[0] + insets[2]; total > size[0] && total > 0 {
			scaleX = size[0] / total
		}

		scaleY := float32(1)
		if total := insets[1] + insets[3]; total > size[1] && total > 0 {
			scaleY = size[1] / total
		}

		xs := [4]float32{
			rect.Min[0],
			rect.Min[0] + insets[0]*scaleX,
			rect.Max[0] - insets[2]*scaleX,
			rect.Max[0],
		}

		ys := [4]float32{
			rect.Min[1],
			rect.Min[1] + insets[3]*scaleY,
			rect.Max[1] - insets[1]*scaleY,
			rect.Max[1],
		}

		for row := range 4 {
			for col := range 4 {
				rd.Vertices[row*4+col].Position = glm.Vec2f{xs[col], ys[row]}
			}
		}

		rd.VertDirty = false
	}

	if rd.UVDirty {
		uv := frameUV(c)

		var texel glm.Vec2f
		if c.spriteFrame != nil {
			if size := c.spriteFrame.Rect().Size().ToVec2f(); size[0] > 0 && size[1] > 0 {
				texel = uv.Size().Div(size)
			}
		}

		us := [4]float32{
			uv.Min[0],
			uv.Min[0] + insets[0]*texel[0],
			uv.Max[0] - insets[2]*texel[0],
			uv.Max[0],
		}

		// bottom row of vertices samples the bottom row of the texture
		vs := [4]float32{
			uv.Max[1],
			uv.Max[1] - insets[3]*texel[1],
			uv.Min[1] + insets[1]*texel[1],
			uv.Min[1],
		}

		for row := range 4 {
			for col := range 4 {
				rd.Vertices[row*4+col].UV = glm.Vec2f{us[col], vs[row]}
			}
		}

		rd.UVDirty = false
	}
}

// insetsOf returns left, top, right and bottom insets of the sprite frame.
func insetsOf(c *Component) [4]float32 {
	if c.spriteFrame == nil {
		return [4]float32{}
	}

	insets := c.spriteFrame.Insets()

	return [4]float32{
		float32(insets.Left),
		float32(insets.Top),
		float32(insets.Right),
		float32(insets.Bottom),
	}
}
