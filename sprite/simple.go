package sprite

import "github.com/oliverbestmann/spritekit/glm"

type simpleAssembler struct{ colorOnly }

func (simpleAssembler) Name() string {
	return "simple"
}

func (simpleAssembler) CreateData(*Component) *RenderData {
	return createQuadData()
}

func (simpleAssembler) UpdateRenderData(c *Component) {
	rd := c.renderData
	if rd == nil {
		return
	}

	if rd.VertDirty {
		setQuadPositions(rd, simpleRect(c))
		rd.VertDirty = false
	}

	if rd.UVDirty {
		uv := frameUV(c)

		rd.Vertices[0].UV = glm.Vec2f{uv.Min[0], uv.Max[1]}
		rd.Vertices[1].UV = glm.Vec2f{uv.Max[0], uv.Max[1]}
		rd.Vertices[2].UV = glm.Vec2f{uv.Min[0], uv.Min[1]}
		rd.Vertices[3].UV = glm.Vec2f{uv.Max[0], uv.Min[1]}

		rd.UVDirty = false
	}
}

// simpleRect computes the quad to draw. In trimmed mode the trimmed image
// fills the node. Otherwise the untrimmed image fills the node and the
// quad shrinks by the transparent borders that were cut away.
func simpleRect(c *Component) glm.Rectangle2f {
	rect := contentRect(c)

	frame := c.spriteFrame
	if c.trim || frame == nil {
		return rect
	}

	originalSize := frame.OriginalSize().ToVec2f()
	if originalSize[0] == 0 || originalSize[1] == 0 {
		return rect
	}

	trimmedSize := frame.Rect().Size().ToVec2f()
	offset := frame.Offset()

	trimLeft := offset[0] + (originalSize[0]-trimmedSize[0])/2
	trimRight := -offset[0] + (originalSize[0]-trimmedSize[0])/2
	trimBottom := offset[1] + (originalSize[1]-trimmedSize[1])/2
	trimTop := -offset[1] + (originalSize[1]-trimmedSize[1])/2

	scale := rect.Size().Div(originalSize)

	return glm.Rectangle2f{
		Min: glm.Vec2f{
			rect.Min[0] + trimLeft*scale[0],
			rect.Min[1] + trimBottom*scale[1],
		},
		Max: glm.Vec2f{
			rect.Max[0] - trimRight*scale[0],
			rect.Max[1] - trimTop*scale[1],
		},
	}
}
