package sprite

import "github.com/oliverbestmann/spritekit/schema"

// ComponentSchema describes the editable fields of a Component.
var ComponentSchema = schema.Schema{
	Type: "Sprite",
	Fields: []schema.Field{
		{
			Name:    "spriteAtlas",
			Kind:    schema.KindAsset,
			Asset:   "SpriteAtlas",
			Order:   4,
			Tooltip: "Atlas the sprite frame belongs to",
		},
		{
			Name:    "spriteFrame",
			Kind:    schema.KindAsset,
			Asset:   "SpriteFrame",
			Order:   5,
			Tooltip: "Sprite frame to render",
		},
		{
			Name:    "type",
			Kind:    schema.KindEnum,
			Enum:    enumNames(TypeSimple, TypeSliced, TypeFilled),
			Order:   6,
			Tooltip: "Simple stretches the image, Sliced keeps the corners unscaled, Filled shows a part of the image",
		},
		{
			Name:    "sizeMode",
			Kind:    schema.KindEnum,
			Enum:    enumNames(SizeModeCustom, SizeModeTrimmed, SizeModeRaw),
			Order:   7,
			Tooltip: "Custom keeps the node size, Trimmed and Raw use the trimmed or original frame size",
		},
		{
			Name:    "trim",
			Kind:    schema.KindBool,
			Order:   8,
			Tooltip: "Exclude transparent borders of the frame from the node rectangle",
		},
		{
			Name:    "fillType",
			Kind:    schema.KindEnum,
			Enum:    enumNames(FillHorizontal, FillVertical, FillRadial),
			Tooltip: "Direction of the fill",
		},
		{
			Name:    "fillCenter",
			Kind:    schema.KindVec2,
			Range:   &schema.Range{Min: 0, Max: 1},
			Tooltip: "Center of a radial fill, normalized to the node",
		},
		{
			Name:    "fillStart",
			Kind:    schema.KindFloat,
			Range:   &schema.Range{Min: -1, Max: 1, Step: 0.1},
			Tooltip: "Start of the fill as a fraction",
		},
		{
			Name:    "fillRange",
			Kind:    schema.KindFloat,
			Range:   &schema.Range{Min: 0, Max: 1, Step: 0.1},
			Tooltip: "Filled fraction of the image",
		},
		{Name: "grayscale", Kind: schema.KindBool},
		{Name: "color", Kind: schema.KindColor},
	},
}

func enumNames[T interface{ String() string }](values ...T) []string {
	names := make([]string, 0, len(values))
	for _, value := range values {
		names = append(names, value.String())
	}

	return names
}
