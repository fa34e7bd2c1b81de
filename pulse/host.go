package pulse

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/spritekit/asset"
	"github.com/oliverbestmann/spritekit/glm"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// rows of a texture to buffer copy must be aligned to this many bytes
const copyBytesPerRowAlignment = 256

type HostOptions struct {
	// ReadbackBuffers is the number of staging buffers kept for
	// pixel readback. Defaults to 4.
	ReadbackBuffers int
}

// Host implements asset.Device on top of a wgpu Context.
type Host struct {
	ctx     *Context
	staging *stagingBuffers
}

var _ asset.Device = (*Host)(nil)

func NewHost(ctx *Context, opts HostOptions) (*Host, error) {
	if opts.ReadbackBuffers <= 0 {
		opts.ReadbackBuffers = 4
	}

	staging, err := newStagingBuffers(ctx, opts.ReadbackBuffers)
	if err != nil {
		return nil, err
	}

	return &Host{ctx: ctx, staging: staging}, nil
}

func (h *Host) CreateSurface(info asset.SurfaceInfo) (asset.Surface, error) {
	if info.Width == 0 || info.Height == 0 {
		return nil, fmt.Errorf("surface %q has empty size %dx%d", info.Title, info.Width, info.Height)
	}

	colorFormat, err := colorFormatOf(info.ColorFormat)
	if err != nil {
		return nil, err
	}

	color, err := NewTexture(h.ctx, NewTextureOptions{
		Format: colorFormat,
		Width:  info.Width,
		Height: info.Height,
		Label:  info.Title,
	})

	if err != nil {
		return nil, fmt.Errorf("create color attachment: %w", err)
	}

	surface := &Surface{info: info, color: color}

	if info.DepthStencilFormat != asset.DepthStencilNone {
		format, err := depthStencilFormatOf(info.DepthStencilFormat)
		if err != nil {
			surface.Release()
			return nil, err
		}

		surface.depthStencil, err = NewTexture(h.ctx, NewTextureOptions{
			Format: format,
			Width:  info.Width,
			Height: info.Height,
			Usage:  wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding,
			Label:  info.Title + ".DepthStencil",
		})

		if err != nil {
			surface.Release()
			return nil, fmt.Errorf("create depth stencil attachment: %w", err)
		}
	}

	releaseWhenCollected(surface)

	asset.Logger().Debug("Surface created",
		slog.String("title", info.Title),
		slog.Int("width", int(info.Width)),
		slog.Int("height", int(info.Height)),
		slog.String("depthStencil", info.DepthStencilFormat.String()),
	)

	return surface, nil
}

func (h *Host) DestroySurface(surface asset.Surface) {
	s, ok := surface.(*Surface)
	if !ok {
		asset.Logger().Warn("Destroy surface not owned by host",
			slog.String("type", fmt.Sprintf("%T", surface)))

		return
	}

	forgetSurface(s)
	s.Release()
}

// ReadPixels copies region of the color attachment into dst. Blocks until
// the device finished all submitted work.
func (h *Host) ReadPixels(surface asset.Surface, region glm.Rectangle2u, dst []byte) error {
	s, ok := surface.(*Surface)
	if !ok || s.color == nil {
		return asset.ErrNoSurface
	}

	width, height := region.Width(), region.Height()
	if width == 0 || height == 0 {
		return nil
	}

	rowSize := width * 4
	if need := uint64(rowSize) * uint64(height); uint64(len(dst)) < need {
		return fmt.Errorf("%w: need %d bytes, got %d", asset.ErrBufferTooSmall, need, len(dst))
	}

	stride := alignUp(rowSize, copyBytesPerRowAlignment)
	size := uint64(stride) * uint64(height)

	buf, err := h.staging.Get(size)
	if err != nil {
		return err
	}

	enc := h.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "ReadPixels"})
	defer enc.Release()

	enc.CopyTextureToBuffer(
		&wgpu.TexelCopyTextureInfo{
			Texture: s.color.ToWGPUTexture(),
			Origin: wgpu.Origin3D{
				X: region.Min[0],
				Y: region.Min[1],
			},
			Aspect: wgpu.TextureAspectAll,
		},
		&wgpu.TexelCopyBufferInfo{
			Buffer: buf,
			Layout: wgpu.TexelCopyBufferLayout{
				BytesPerRow:  stride,
				RowsPerImage: height,
			},
		},
		&wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
	)

	cmdBuffer := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "ReadPixels"})
	defer cmdBuffer.Release()

	h.ctx.Submit(cmdBuffer)

	var done bool
	var status wgpu.MapAsyncStatus

	buf.MapAsync(wgpu.MapModeRead, 0, size, func(s wgpu.MapAsyncStatus) {
		done, status = true, s
	})

	h.ctx.Poll(true, nil)

	if !done || status != wgpu.MapAsyncStatusSuccess {
		return fmt.Errorf("map staging buffer: status %d", status)
	}

	defer buf.Unmap()

	mapped := buf.GetMappedRange(0, uint(size))

	// strip the row padding
	for row := range height {
		src := mapped[row*stride : row*stride+rowSize]
		copy(dst[row*rowSize:], src)
	}

	return nil
}

// Clear fills the color attachment of the surface with the given color.
func (h *Host) Clear(surface asset.Surface, color glm.Color) error {
	s, ok := surface.(*Surface)
	if !ok || s.color == nil {
		return asset.ErrNoSurface
	}

	enc := h.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "ClearSurface"})
	defer enc.Release()

	r, g, b, a := color.Components()

	desc := &wgpu.RenderPassDescriptor{
		Label: "ClearSurface",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    s.color.ToWGPUTextureView(),
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: wgpu.StoreOpStore,
				ClearValue: wgpu.Color{
					R: float64(r),
					G: float64(g),
					B: float64(b),
					A: float64(a),
				},
			},
		},
	}

	enc.BeginRenderPass(desc).End()

	buf := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "ClearSurface"})
	defer buf.Release()

	h.ctx.Submit(buf)

	return nil
}

// Release frees the cached staging buffers. The context stays untouched.
func (h *Host) Release() {
	h.staging.Purge()
}

func alignUp(value, alignment uint32) uint32 {
	return (value + alignment - 1) / alignment * alignment
}
