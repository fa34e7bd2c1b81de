package asset

import "github.com/oliverbestmann/spritekit/schema"

// RenderTextureSchema describes the editable fields of a RenderTexture.
var RenderTextureSchema = schema.Schema{
	Type: "RenderTexture",
	Fields: []schema.Field{
		{Name: "width", Kind: schema.KindInt, Range: &schema.Range{Min: 1, Max: 8192}},
		{Name: "height", Kind: schema.KindInt, Range: &schema.Range{Min: 1, Max: 8192}},
		{
			Name: "depthStencilFormat",
			Kind: schema.KindEnum,
			Enum: enumNames(depthStencilFormats),
		},
	},
}

func enumNames[T interface{ String() string }](values []T) []string {
	names := make([]string, 0, len(values))
	for _, value := range values {
		names = append(names, value.String())
	}

	return names
}
