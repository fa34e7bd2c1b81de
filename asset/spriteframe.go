package asset

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/oliverbestmann/spritekit/glm"
)

// Insets are the border widths of a nine slice sprite, in texels.
type Insets struct {
	Left, Top, Right, Bottom uint32
}

type SpriteFrameOptions struct {
	// Rect is the trimmed region within the texture.
	Rect glm.Rectangle2u

	// OriginalSize is the size of the image before trimming transparent
	// pixels. Defaults to the size of Rect.
	OriginalSize glm.Vec2u

	// Offset of the center of Rect relative to the center of the
	// untrimmed image.
	Offset glm.Vec2f

	Insets Insets
}

// SpriteFrame is a named rectangular region of a texture. A frame is loaded
// once its texture is available.
type SpriteFrame struct {
	Asset

	texture     TextureView
	textureSize glm.Vec2u

	rect         glm.Rectangle2u
	originalSize glm.Vec2u
	offset       glm.Vec2f
	insets       Insets

	uvHash uint64
}

func NewSpriteFrame(name string, opts SpriteFrameOptions) *SpriteFrame {
	if opts.OriginalSize == (glm.Vec2u{}) {
		opts.OriginalSize = opts.Rect.Size()
	}

	f := &SpriteFrame{
		Asset:        newAsset(name),
		rect:         opts.Rect,
		originalSize: opts.OriginalSize,
		offset:       opts.Offset,
		insets:       opts.Insets,
	}

	f.uvHash = f.computeUVHash()

	return f
}

// SetTexture provides the texture of this frame. The frame becomes loaded
// and notifies all load subscribers.
func (f *SpriteFrame) SetTexture(view TextureView, width, height uint32) {
	f.texture = view
	f.textureSize = glm.Vec2u{width, height}
	f.uvHash = f.computeUVHash()

	f.markLoaded()
}

// TextureView returns the device view of the frames texture, nil until loaded.
func (f *SpriteFrame) TextureView() TextureView {
	return f.texture
}

func (f *SpriteFrame) TextureSize() glm.Vec2u {
	return f.textureSize
}

// Rect returns the trimmed region within the texture.
func (f *SpriteFrame) Rect() glm.Rectangle2u {
	return f.rect
}

func (f *SpriteFrame) OriginalSize() glm.Vec2u {
	return f.originalSize
}

func (f *SpriteFrame) Offset() glm.Vec2f {
	return f.offset
}

func (f *SpriteFrame) Insets() Insets {
	return f.insets
}

// UV returns the trimmed region in normalized texture coordinates.
// Returns an empty rectangle while the texture size is unknown.
func (f *SpriteFrame) UV() glm.Rectangle2f {
	if f.textureSize[0] == 0 || f.textureSize[1] == 0 {
		return glm.Rectangle2f{}
	}

	textureSize := f.textureSize.ToVec2f()
	uvOffset := f.rect.Offset().ToVec2f().Div(textureSize)
	uvScale := f.rect.Size().ToVec2f().Div(textureSize)
	return glm.RectangleFromSize(uvOffset, uvScale)
}

// UVHash identifies the uv layout of the frame. Two frames with the same
// hash produce the same texture coordinates.
func (f *SpriteFrame) UVHash() uint64 {
	return f.uvHash
}

func (f *SpriteFrame) computeUVHash() uint64 {
	var buf [6 * 4]byte

	values := [6]uint32{
		f.textureSize[0], f.textureSize[1],
		f.rect.Min[0], f.rect.Min[1],
		f.rect.Width(), f.rect.Height(),
	}

	for idx, value := range values {
		binary.LittleEndian.PutUint32(buf[idx*4:], value)
	}

	return xxhash.Sum64(buf[:])
}
