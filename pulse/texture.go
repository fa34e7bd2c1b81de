package pulse

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/oliverbestmann/spritekit/glm"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Texture wraps a wgpu.Texture and an identity wgpu.TextureView.
type Texture struct {
	texture     *wgpu.Texture
	textureView *wgpu.TextureView

	// equal to texture.GetFormat()
	format wgpu.TextureFormat

	size glm.Vec2u
}

type NewTextureOptions struct {
	Format wgpu.TextureFormat
	Width  uint32
	Height uint32

	// Usage defaults to sampling, rendering and copying in both directions.
	Usage wgpu.TextureUsage

	Label string
}

func NewTexture(ctx *Context, opts NewTextureOptions) (*Texture, error) {
	usage := opts.Usage
	if usage == 0 {
		usage = wgpu.TextureUsageTextureBinding |
			wgpu.TextureUsageRenderAttachment |
			wgpu.TextureUsageCopyDst |
			wgpu.TextureUsageCopySrc
	}

	desc := &wgpu.TextureDescriptor{
		Label:         opts.Label,
		Format:        opts.Format,
		SampleCount:   1,
		MipLevelCount: 1,

		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              opts.Width,
			Height:             opts.Height,
			DepthOrArrayLayers: 1,
		},

		Usage: usage,
	}

	texture, err := ctx.TryCreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("create texture %q: %w", opts.Label, err)
	}

	textureView, err := texture.TryCreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("create view of texture %q: %w", opts.Label, err)
	}

	t := &Texture{
		texture:     texture,
		textureView: textureView,
		format:      opts.Format,
		size:        glm.Vec2u{opts.Width, opts.Height},
	}

	return t, nil
}

func (t *Texture) Width() uint32 {
	return t.size[0]
}

func (t *Texture) Height() uint32 {
	return t.size[1]
}

func (t *Texture) Size() glm.Vec2u {
	return t.size
}

func (t *Texture) Format() wgpu.TextureFormat {
	return t.format
}

func (t *Texture) ToWGPUTexture() *wgpu.Texture {
	return t.texture
}

func (t *Texture) ToWGPUTextureView() *wgpu.TextureView {
	return t.textureView
}

// Release releases the texture and its view. The texture must not be
// used after calling Release.
func (t *Texture) Release() {
	t.textureView.Release()
	t.texture.Release()
}

type WritePixelsOptions struct {
	Pixels []byte
	Region glm.Rectangle2u
	Stride uint32
}

func (t *Texture) WritePixels(ctx *Context, pixels []byte) error {
	return t.WritePixelsToRect(ctx, WritePixelsOptions{
		Pixels: pixels,
		Region: glm.RectangleFromSize(glm.Vec2u{}, t.size),
	})
}

func (t *Texture) WritePixelsToRect(ctx *Context, opts WritePixelsOptions) error {
	bounds := glm.RectangleFromSize(glm.Vec2u{}, t.size)

	if !bounds.Contains(opts.Region) {
		return fmt.Errorf("target rect %s not in texture region %s", opts.Region, bounds)
	}

	if opts.Stride == 0 {
		opts.Stride = opts.Region.Width() * 4
	}

	layout := &wgpu.TexelCopyBufferLayout{
		Offset:       0,
		BytesPerRow:  opts.Stride,
		RowsPerImage: opts.Region.Height(),
	}

	size := &wgpu.Extent3D{
		Width:              opts.Region.Width(),
		Height:             opts.Region.Height(),
		DepthOrArrayLayers: 1,
	}

	dest := &wgpu.TexelCopyTextureInfo{
		Texture: t.texture,
		Origin: wgpu.Origin3D{
			X: opts.Region.Min[0],
			Y: opts.Region.Min[1],
		},
		Aspect: wgpu.TextureAspectAll,
	}

	if err := ctx.TryWriteTexture(dest, opts.Pixels, layout, size); err != nil {
		return fmt.Errorf("copy image data to texture: %w", err)
	}

	return nil
}

// NewTextureFromImage uploads the image into a new rgba texture.
func NewTextureFromImage(ctx *Context, label string, src image.Image) (*Texture, error) {
	iw, ih := src.Bounds().Dx(), src.Bounds().Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, iw, ih))

	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)

	t, err := NewTexture(ctx, NewTextureOptions{
		Format: wgpu.TextureFormatRGBA8Unorm,
		Width:  uint32(iw),
		Height: uint32(ih),
		Label:  label,
	})
	if err != nil {
		return nil, err
	}

	if err := t.WritePixels(ctx, rgba.Pix); err != nil {
		t.Release()
		return nil, fmt.Errorf("upload texture: %w", err)
	}

	return t, nil
}
