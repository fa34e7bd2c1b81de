package sprite

import (
	"math"
	"slices"

	"github.com/oliverbestmann/spritekit/glm"
)

type radialFilledAssembler struct{ colorOnly }

func (radialFilledAssembler) Name() string {
	return "radial-filled"
}

// CreateData returns empty render data. The number of vertices depends
// on how many corners of the rectangle the filled sector covers.
func (radialFilledAssembler) CreateData(*Component) *RenderData {
	return &RenderData{UVDirty: true, VertDirty: true}
}

// UpdateRenderData rebuilds the sector as a triangle fan around the fill center.
// The sector starts at fillStart turns and sweeps fillRange turns counter clockwise.
func (radialFilledAssembler) UpdateRenderData(c *Component) {
	rd := c.renderData
	if rd == nil || !rd.dirty() {
		return
	}

	rd.Vertices = rd.Vertices[:0]
	rd.Indices = rd.Indices[:0]

	rd.UVDirty = false
	rd.VertDirty = false

	sweep := glm.Rad(clamp(c.fillRange, 0, 1)) * glm.FullTurn
	if sweep <= 0 {
		return
	}

	bounds := contentRect(c)
	if bounds.Empty() {
		return
	}

	uv := frameUV(c)
	center := glm.Lerp(bounds.Min, bounds.Max, c.fillCenter)
	start := (glm.Rad(c.fillStart) * glm.FullTurn).Normalize()

	// angles relative to start, the corners inside the sector keep
	// the fan convex at the rectangle boundary
	angles := []glm.Rad{0}

	corners := [4]glm.Vec2f{
		bounds.Min,
		{bounds.Max[0], bounds.Min[1]},
		bounds.Max,
		{bounds.Min[0], bounds.Max[1]},
	}

	for _, corner := range corners {
		rel := (glm.Atan2(corner[1]-center[1], corner[0]-center[0]) - start).Normalize()
		if rel > 0 && rel < sweep {
			angles = append(angles, rel)
		}
	}

	slices.Sort(angles[1:])
	angles = append(angles, sweep)

	color := c.color.ToVec()

	rd.Vertices = append(rd.Vertices, Vertex{
		Position: center,
		UV:       uvAt(bounds, uv, center),
		Color:    color,
	})

	for _, rel := range angles {
		pos := intersectRect(bounds, center, start+rel)

		rd.Vertices = append(rd.Vertices, Vertex{
			Position: pos,
			UV:       uvAt(bounds, uv, pos),
			Color:    color,
		})
	}

	for idx := 1; idx < len(rd.Vertices)-1; idx++ {
		rd.Indices = append(rd.Indices, 0, uint16(idx), uint16(idx+1))
	}
}

// intersectRect returns the point where a ray starting at origin, which must
// lie within rect, leaves the rectangle.
func intersectRect(rect glm.Rectangle2f, origin glm.Vec2f, angle glm.Rad) glm.Vec2f {
	const eps = 1e-6

	sin, cos := glm.Sincos(angle)

	dist := float32(math.Inf(1))

	switch {
	case cos > eps:
		dist = min(dist, (rect.Max[0]-origin[0])/cos)
	case cos < -eps:
		dist = min(dist, (rect.Min[0]-origin[0])/cos)
	}

	switch {
	case sin > eps:
		dist = min(dist, (rect.Max[1]-origin[1])/sin)
	case sin < -eps:
		dist = min(dist, (rect.Min[1]-origin[1])/sin)
	}

	if math.IsInf(float64(dist), 1) {
		return origin
	}

	return glm.Vec2f{
		origin[0] + cos*dist,
		origin[1] + sin*dist,
	}
}
