package sprite

import "github.com/oliverbestmann/spritekit/glm"

type Vertex struct {
	Position glm.Vec2f
	UV       glm.Vec2f
	Color    glm.Vec4f
}

// RenderData is the vertex and index buffer of a single sprite, consumed by
// the batching renderer. It is created and updated by an Assembler.
type RenderData struct {
	Vertices []Vertex
	Indices  []uint16
	Material *Material

	// UVDirty requests the texture coordinates to be regenerated.
	UVDirty bool

	// VertDirty requests the positions to be regenerated.
	VertDirty bool

	released bool
}

func newRenderData(vertexCount, indexCount int) *RenderData {
	return &RenderData{
		Vertices:  make([]Vertex, vertexCount),
		Indices:   make([]uint16, indexCount),
		UVDirty:   true,
		VertDirty: true,
	}
}

func (rd *RenderData) dirty() bool {
	return rd.UVDirty || rd.VertDirty
}

// Released returns true once the owning component dropped this render data.
// Released data must not be drawn anymore.
func (rd *RenderData) Released() bool {
	return rd.released
}

func (rd *RenderData) release() {
	rd.released = true
	rd.Vertices = nil
	rd.Indices = nil
	rd.Material = nil
}

func (rd *RenderData) setColor(color glm.Color) {
	vec := color.ToVec()
	for idx := range rd.Vertices {
		rd.Vertices[idx].Color = vec
	}
}
