package sprite

import "github.com/oliverbestmann/spritekit/glm"

// Assembler builds and updates the render data of a Component for one
// render mode. Assemblers are stateless, all state lives in the component
// and its render data.
type Assembler interface {
	Name() string

	// CreateData allocates render data in the layout of this assembler.
	CreateData(c *Component) *RenderData

	// UpdateRenderData regenerates positions and texture coordinates as
	// requested by the dirty flags of the render data and clears them.
	UpdateRenderData(c *Component)

	// UpdateColor pushes the component color into the vertices.
	UpdateColor(c *Component)
}

var (
	SimpleAssembler       Assembler = simpleAssembler{}
	SlicedAssembler       Assembler = slicedAssembler{}
	BarFilledAssembler    Assembler = barFilledAssembler{}
	RadialFilledAssembler Assembler = radialFilledAssembler{}
)

// AssemblerFor selects the assembler matching the render mode of c.
func AssemblerFor(c *Component) Assembler {
	switch c.spriteType {
	case TypeSliced:
		return SlicedAssembler

	case TypeFilled:
		if c.fillType == FillRadial {
			return RadialFilledAssembler
		}

		return BarFilledAssembler

	default:
		return SimpleAssembler
	}
}

// quad vertices are ordered bottom-left, bottom-right, top-left, top-right
var quadIndices = [6]uint16{0, 1, 2, 2, 1, 3}

func createQuadData() *RenderData {
	rd := newRenderData(4, 6)
	copy(rd.Indices, quadIndices[:])
	return rd
}

func setQuadPositions(rd *RenderData, rect glm.Rectangle2f) {
	l, b := rect.Min.XY()
	r, t := rect.Max.XY()

	rd.Vertices[0].Position = glm.Vec2f{l, b}
	rd.Vertices[1].Position = glm.Vec2f{r, b}
	rd.Vertices[2].Position = glm.Vec2f{l, t}
	rd.Vertices[3].Position = glm.Vec2f{r, t}
}

// contentRect returns the local rectangle covered by the node, with the
// origin at the nodes anchor point. The y axis points up.
func contentRect(c *Component) glm.Rectangle2f {
	size := c.node.ContentSize()
	anchor := c.node.AnchorPoint()

	origin := size.Mul(anchor).MulScalar(-1)
	return glm.RectangleFromSize(origin, size)
}

// uvAt maps a position within bounds to the texture coordinate at the same
// relative position within uv. Texture rows grow downwards, positions upwards.
func uvAt(bounds glm.Rectangle2f, uv glm.Rectangle2f, pos glm.Vec2f) glm.Vec2f {
	var rel glm.Vec2f

	if w := bounds.Width(); w > 0 {
		rel[0] = (pos[0] - bounds.Min[0]) / w
	}

	if h := bounds.Height(); h > 0 {
		rel[1] = (pos[1] - bounds.Min[1]) / h
	}

	return glm.Vec2f{
		uv.Min[0] + rel[0]*uv.Width(),
		uv.Max[1] - rel[1]*uv.Height(),
	}
}

func frameUV(c *Component) glm.Rectangle2f {
	if c.spriteFrame == nil {
		return glm.Rectangle2f{}
	}

	return c.spriteFrame.UV()
}

type colorOnly struct{}

func (colorOnly) UpdateColor(c *Component) {
	if c.renderData != nil {
		c.renderData.setColor(c.color)
	}
}
