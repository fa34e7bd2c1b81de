package asset

import "fmt"

//go:generate go tool stringer -type=DepthStencilFormat -trimprefix=DepthStencil

type PixelFormat uint8

// PixelFormatRGBA8 is the only color format render textures are created with.
// Pixel readback always produces four bytes per pixel.
const PixelFormatRGBA8 PixelFormat = 0

// BytesPerPixel of the color format.
func (f PixelFormat) BytesPerPixel() uint32 {
	return 4
}

type DepthStencilFormat uint8

const (
	DepthStencilNone DepthStencilFormat = iota
	DepthStencilD16
	DepthStencilD24S8
	DepthStencilD32F
	DepthStencilD32FS8
)

func (f DepthStencilFormat) HasDepth() bool {
	return f != DepthStencilNone
}

func (f DepthStencilFormat) HasStencil() bool {
	return f == DepthStencilD24S8 || f == DepthStencilD32FS8
}

var depthStencilFormats = []DepthStencilFormat{
	DepthStencilNone,
	DepthStencilD16,
	DepthStencilD24S8,
	DepthStencilD32F,
	DepthStencilD32FS8,
}

// ParseDepthStencilFormat parses the names produced by String.
func ParseDepthStencilFormat(name string) (DepthStencilFormat, error) {
	for _, f := range depthStencilFormats {
		if f.String() == name {
			return f, nil
		}
	}

	return 0, fmt.Errorf("unknown depth stencil format %q", name)
}

func (f DepthStencilFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *DepthStencilFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseDepthStencilFormat(string(text))
	if err != nil {
		return err
	}

	*f = parsed
	return nil
}
