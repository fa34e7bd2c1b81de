package asset

import (
	"testing"

	"github.com/oliverbestmann/spritekit/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpriteFrameLoad(t *testing.T) {
	frame := NewSpriteFrame("hero", SpriteFrameOptions{
		Rect: glm.RectangleFromXYWH[uint32](32, 0, 32, 64),
	})

	assert.False(t, frame.Loaded())
	assert.Nil(t, frame.TextureView())
	assert.Equal(t, glm.Vec2u{32, 64}, frame.OriginalSize())
	assert.Equal(t, glm.Rectangle2f{}, frame.UV())

	var calls int
	frame.OnceLoad(func() { calls++ })

	view := &fakeView{name: "atlas"}
	frame.SetTexture(view, 128, 64)

	assert.True(t, frame.Loaded())
	assert.Same(t, view, frame.TextureView())
	assert.Equal(t, 1, calls)

	assert.Equal(t, glm.RectangleFromXYWH[float32](0.25, 0, 0.25, 1), frame.UV())
}

func TestSpriteFrameUVHash(t *testing.T) {
	rect := glm.RectangleFromXYWH[uint32](0, 0, 16, 16)

	a := NewSpriteFrame("a", SpriteFrameOptions{Rect: rect})
	b := NewSpriteFrame("b", SpriteFrameOptions{Rect: rect, OriginalSize: glm.Vec2u{20, 20}})
	c := NewSpriteFrame("c", SpriteFrameOptions{Rect: glm.RectangleFromXYWH[uint32](16, 0, 16, 16)})

	for _, frame := range []*SpriteFrame{a, b, c} {
		frame.SetTexture(&fakeView{}, 64, 64)
	}

	assert.Equal(t, a.UVHash(), b.UVHash())
	assert.NotEqual(t, a.UVHash(), c.UVHash())

	// a different texture size changes the uv layout
	before := a.UVHash()
	a.SetTexture(&fakeView{}, 32, 32)
	assert.NotEqual(t, before, a.UVHash())
}

func TestSpriteFrameDestroy(t *testing.T) {
	frame := NewSpriteFrame("x", SpriteFrameOptions{})
	frame.OnLoad(func() {})
	require.Equal(t, 1, frame.LoadSubscribers())

	frame.Destroy()
	assert.False(t, frame.IsValid())
	assert.Equal(t, 0, frame.LoadSubscribers())
}

func TestSpriteAtlas(t *testing.T) {
	atlas := NewSpriteAtlas("ui")

	require.NoError(t, atlas.Add(NewSpriteFrame("button", SpriteFrameOptions{})))
	require.NoError(t, atlas.Add(NewSpriteFrame("arrow", SpriteFrameOptions{})))
	assert.Error(t, atlas.Add(NewSpriteFrame("arrow", SpriteFrameOptions{})))

	assert.Equal(t, []string{"arrow", "button"}, atlas.Names())
	assert.Nil(t, atlas.SpriteFrame("missing"))

	atlas.SetTexture(&fakeView{}, 256, 256)
	assert.True(t, atlas.Loaded())
	assert.True(t, atlas.SpriteFrame("button").Loaded())
}

func TestDepthStencilFormatText(t *testing.T) {
	for _, format := range depthStencilFormats {
		text, err := format.MarshalText()
		require.NoError(t, err)

		var parsed DepthStencilFormat
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, format, parsed)
	}

	_, err := ParseDepthStencilFormat("D99")
	assert.Error(t, err)

	assert.Equal(t, "DepthStencilFormat(9)", DepthStencilFormat(9).String())
}

func TestRenderTextureSchema(t *testing.T) {
	require.NoError(t, RenderTextureSchema.Validate())

	field, ok := RenderTextureSchema.Field("depthStencilFormat")
	require.True(t, ok)
	assert.Equal(t, []string{"None", "D16", "D24S8", "D32F", "D32FS8"}, field.Enum)
}
