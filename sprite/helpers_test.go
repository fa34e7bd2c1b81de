package sprite

import (
	"github.com/oliverbestmann/spritekit/asset"
	"github.com/oliverbestmann/spritekit/glm"
)

type testView struct {
	name string
}

type commit struct {
	data      *RenderData
	texture   asset.TextureView
	assembler Assembler
}

type recorder struct {
	commits []commit
}

func (r *recorder) Commit(data *RenderData, texture asset.TextureView, assembler Assembler) {
	r.commits = append(r.commits, commit{data: data, texture: texture, assembler: assembler})
}

func newFrame(name string, rect glm.Rectangle2u) *asset.SpriteFrame {
	return asset.NewSpriteFrame(name, asset.SpriteFrameOptions{Rect: rect})
}

// loadedFrame creates a frame covering its whole texture.
func loadedFrame(name string, width, height uint32) *asset.SpriteFrame {
	frame := newFrame(name, glm.RectangleFromXYWH(0, 0, width, height))
	frame.SetTexture(&testView{name: name}, width, height)
	return frame
}

// newEnabled creates an enabled component with a custom sized node
// showing the given frame.
func newEnabled(frame *asset.SpriteFrame, size glm.Vec2f) (*Component, *BasicNode) {
	node := NewBasicNode(size)

	c := New(node, Options{})
	c.SetSizeMode(SizeModeCustom)
	c.OnEnable()
	c.SetSpriteFrame(frame)

	return c, node
}

// clean renders once so that all pending updates are resolved.
func clean(c *Component) {
	c.Render(&recorder{})
}
