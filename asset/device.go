package asset

import "github.com/oliverbestmann/spritekit/glm"

// TextureView is an opaque device handle to a view of a texture. It is only
// passed through to the rendering collaborator, never inspected.
type TextureView any

// SurfaceInfo describes an off-screen surface to allocate.
type SurfaceInfo struct {
	Title              string
	Width              uint32
	Height             uint32
	ColorFormat        PixelFormat
	DepthStencilFormat DepthStencilFormat
}

// Surface is an off-screen render target allocated by a Device.
type Surface interface {
	Info() SurfaceInfo

	// ColorView returns the view of the color attachment. Might be nil.
	ColorView() TextureView

	// DepthStencilView returns the view of the depth stencil attachment,
	// nil if the surface was created without one.
	DepthStencilView() TextureView
}

// Device is the host renderer providing off-screen surfaces.
type Device interface {
	CreateSurface(info SurfaceInfo) (Surface, error)
	DestroySurface(surface Surface)

	// ReadPixels copies the RGBA8 pixels of region from the color attachment
	// of the surface into dst. This is a blocking round trip to the device.
	ReadPixels(surface Surface, region glm.Rectangle2u, dst []byte) error
}
