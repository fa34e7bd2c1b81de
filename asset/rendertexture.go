package asset

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/oliverbestmann/spritekit/glm"
)

// RenderTextureInfo holds the construction parameters of a RenderTexture,
// as delivered by the asset loader.
type RenderTextureInfo struct {
	Name               string             `yaml:"name"`
	Width              uint32             `yaml:"width"`
	Height             uint32             `yaml:"height"`
	DepthStencilFormat DepthStencilFormat `yaml:"depthStencilFormat"`
}

// RenderTexture is an off-screen render target. It owns at most one device
// surface, which always matches the current size and depth stencil format.
// Changing any of those destroys the surface, it is recreated by the next
// call to Reset or OnLoaded.
type RenderTexture struct {
	Asset

	device  Device
	surface Surface

	width              uint32
	height             uint32
	depthStencilFormat DepthStencilFormat
}

// NewRenderTexture creates an empty render texture without a surface. The device
// may be nil, surface creation is then deferred until a device is set.
func NewRenderTexture(device Device) *RenderTexture {
	return &RenderTexture{
		Asset:  newAsset(""),
		device: device,
	}
}

// SetDevice changes the device future surfaces are allocated from. The current
// surface belongs to the previous device and is destroyed.
func (rt *RenderTexture) SetDevice(device Device) {
	if rt.device == device {
		return
	}

	rt.destroySurface()
	rt.device = device
}

func (rt *RenderTexture) Width() uint32 {
	return rt.width
}

func (rt *RenderTexture) Height() uint32 {
	return rt.height
}

func (rt *RenderTexture) Size() glm.Vec2u {
	return glm.Vec2u{rt.width, rt.height}
}

func (rt *RenderTexture) DepthStencilFormat() DepthStencilFormat {
	return rt.depthStencilFormat
}

func (rt *RenderTexture) SetWidth(width uint32) {
	if rt.width != width {
		rt.width = width
		rt.destroySurface()
	}
}

func (rt *RenderTexture) SetHeight(height uint32) {
	if rt.height != height {
		rt.height = height
		rt.destroySurface()
	}
}

func (rt *RenderTexture) SetDepthStencilFormat(format DepthStencilFormat) {
	if rt.depthStencilFormat != format {
		rt.depthStencilFormat = format
		rt.destroySurface()
	}
}

// Surface returns the device surface, or nil if none was created yet.
func (rt *RenderTexture) Surface() Surface {
	return rt.surface
}

// ColorView returns the color attachment of the surface, or nil.
func (rt *RenderTexture) ColorView() TextureView {
	if rt.surface == nil {
		return nil
	}

	return rt.surface.ColorView()
}

// DepthStencilView returns the depth stencil attachment of the surface, or nil.
func (rt *RenderTexture) DepthStencilView() TextureView {
	if rt.surface == nil {
		return nil
	}

	return rt.surface.DepthStencilView()
}

// Reset adopts the given parameters, if any, and recreates the surface.
// Without a device the render texture stays without a surface, this is not
// an error.
func (rt *RenderTexture) Reset(info *RenderTextureInfo) error {
	if info != nil {
		rt.width = info.Width
		rt.height = info.Height
		rt.depthStencilFormat = info.DepthStencilFormat
	}

	return rt.tryReset()
}

// OnLoaded is called by the asset loader once the render texture was restored.
// It creates the surface, marks the asset as loaded and emits the load event.
func (rt *RenderTexture) OnLoaded() error {
	if err := rt.tryReset(); err != nil {
		return err
	}

	rt.markLoaded()
	return nil
}

// Info returns the parameters required to restore this render texture.
func (rt *RenderTexture) Info() RenderTextureInfo {
	return RenderTextureInfo{
		Name:               rt.Name(),
		Width:              rt.width,
		Height:             rt.height,
		DepthStencilFormat: rt.depthStencilFormat,
	}
}

// Restore applies parameters delivered by the asset loader. It does not
// touch the device, the loader calls OnLoaded afterwards.
func (rt *RenderTexture) Restore(info RenderTextureInfo) {
	rt.SetName(info.Name)
	rt.SetWidth(info.Width)
	rt.SetHeight(info.Height)
	rt.SetDepthStencilFormat(info.DepthStencilFormat)
}

// Destroy releases the surface and the base asset state. Calling Destroy
// multiple times is safe.
func (rt *RenderTexture) Destroy() {
	rt.destroySurface()
	rt.Asset.Destroy()
}

type ReadPixelsOptions struct {
	X, Y uint32

	// Size of the region to read. Defaults to the size of the render texture.
	Width  uint32
	Height uint32

	// Buffer to read into. A new buffer is allocated if nil.
	Buffer []byte
}

// ReadPixels copies RGBA8 pixels of the color attachment into a buffer. This is a
// blocking round trip to the device and must not be used every frame.
//
// Without a surface, the callers buffer is returned unchanged together with ErrNoSurface.
func (rt *RenderTexture) ReadPixels(opts ReadPixelsOptions) ([]byte, error) {
	if rt.surface == nil || rt.surface.ColorView() == nil {
		return opts.Buffer, ErrNoSurface
	}

	if opts.Width == 0 {
		opts.Width = rt.width
	}

	if opts.Height == 0 {
		opts.Height = rt.height
	}

	region := glm.RectangleFromXYWH(opts.X, opts.Y, opts.Width, opts.Height)

	bounds := glm.RectangleFromSize(glm.Vec2u{}, rt.Size())
	if !bounds.Contains(region) {
		return opts.Buffer, fmt.Errorf("read region %s not in render texture %s", region, bounds)
	}

	size64 := uint64(opts.Width) * uint64(opts.Height) * uint64(PixelFormatRGBA8.BytesPerPixel())
	if size64 > uint64(math.MaxInt) {
		return opts.Buffer, fmt.Errorf("read region %s needs %d bytes, more than addressable", region, size64)
	}

	size := int(size64)

	buf := opts.Buffer
	if buf == nil {
		buf = make([]byte, size)
	}

	if len(buf) < size {
		return opts.Buffer, fmt.Errorf("need %d bytes, got %d: %w", size, len(buf), ErrBufferTooSmall)
	}

	if err := rt.device.ReadPixels(rt.surface, region, buf[:size]); err != nil {
		return opts.Buffer, fmt.Errorf("read pixels of render texture %q: %w", rt.Name(), err)
	}

	return buf, nil
}

func (rt *RenderTexture) tryReset() error {
	rt.destroySurface()

	if rt.device == nil {
		Logger().Debug("No device available, defer surface creation",
			slog.String("name", rt.Name()),
		)

		return nil
	}

	surface, err := rt.device.CreateSurface(SurfaceInfo{
		Title:              rt.Name(),
		Width:              rt.width,
		Height:             rt.height,
		ColorFormat:        PixelFormatRGBA8,
		DepthStencilFormat: rt.depthStencilFormat,
	})

	if err != nil {
		return fmt.Errorf("create surface for render texture %q: %w", rt.Name(), err)
	}

	Logger().Debug("Created render texture surface",
		slog.String("name", rt.Name()),
		slog.Int("width", int(rt.width)),
		slog.Int("height", int(rt.height)),
		slog.String("depthStencil", rt.depthStencilFormat.String()),
	)

	rt.surface = surface
	return nil
}

func (rt *RenderTexture) destroySurface() {
	if rt.surface == nil {
		return
	}

	// the surface was created by rt.device, SetDevice destroys before switching
	rt.device.DestroySurface(rt.surface)
	rt.surface = nil
}
