package sprite

//go:generate go tool stringer -type=Type -trimprefix=Type
//go:generate go tool stringer -type=FillType -trimprefix=Fill
//go:generate go tool stringer -type=SizeMode -trimprefix=SizeMode

// Type is the render mode of a sprite.
type Type uint8

const (
	// TypeSimple stretches the whole image over the node.
	TypeSimple Type = iota

	// TypeSliced keeps the corners of the image unscaled (nine slice).
	TypeSliced

	// TypeFilled shows only a part of the image, see FillType.
	TypeFilled
)

type FillType uint8

const (
	FillHorizontal FillType = iota
	FillVertical
	FillRadial
)

// SizeMode decides how the node is sized when a sprite frame is applied.
type SizeMode uint8

const (
	// SizeModeCustom leaves the node size untouched.
	SizeModeCustom SizeMode = iota

	// SizeModeTrimmed uses the size of the frame with transparent borders removed.
	SizeModeTrimmed

	// SizeModeRaw uses the size of the untrimmed image.
	SizeModeRaw
)

// RenderType selects how the host renders.
type RenderType uint8

const (
	RenderTypeGPU RenderType = iota

	// RenderTypeCanvas is a software fallback without materials.
	RenderTypeCanvas
)
