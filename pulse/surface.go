package pulse

import (
	"fmt"

	"github.com/oliverbestmann/spritekit/asset"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Surface is an off-screen render target: a color texture and an optional
// depth stencil texture of the same size.
type Surface struct {
	info asset.SurfaceInfo

	color *Texture

	// nil without depth stencil format
	depthStencil *Texture
}

func (s *Surface) Info() asset.SurfaceInfo {
	return s.info
}

// ColorView returns the *wgpu.TextureView of the color attachment.
func (s *Surface) ColorView() asset.TextureView {
	if s.color == nil {
		return nil
	}

	return s.color.ToWGPUTextureView()
}

// DepthStencilView returns the *wgpu.TextureView of the depth stencil
// attachment or nil.
func (s *Surface) DepthStencilView() asset.TextureView {
	if s.depthStencil == nil {
		return nil
	}

	return s.depthStencil.ToWGPUTextureView()
}

func (s *Surface) ColorTexture() *Texture {
	return s.color
}

// leaked returns true while the surface still holds device textures.
func (s *Surface) leaked() bool {
	return s.color != nil || s.depthStencil != nil
}

// Release frees both attachments. Safe to call multiple times.
func (s *Surface) Release() {
	if s.color != nil {
		s.color.Release()
		s.color = nil
	}

	if s.depthStencil != nil {
		s.depthStencil.Release()
		s.depthStencil = nil
	}
}

func colorFormatOf(format asset.PixelFormat) (wgpu.TextureFormat, error) {
	switch format {
	case asset.PixelFormatRGBA8:
		return wgpu.TextureFormatRGBA8Unorm, nil
	default:
		return wgpu.TextureFormatUndefined, fmt.Errorf("unsupported color format %d", format)
	}
}

func depthStencilFormatOf(format asset.DepthStencilFormat) (wgpu.TextureFormat, error) {
	switch format {
	case asset.DepthStencilD16:
		return wgpu.TextureFormatDepth16Unorm, nil
	case asset.DepthStencilD24S8:
		return wgpu.TextureFormatDepth24PlusStencil8, nil
	case asset.DepthStencilD32F:
		return wgpu.TextureFormatDepth32Float, nil
	case asset.DepthStencilD32FS8:
		return wgpu.TextureFormatDepth32FloatStencil8, nil
	default:
		return wgpu.TextureFormatUndefined, fmt.Errorf("unsupported depth stencil format %s", format)
	}
}
