package sprite

import "github.com/oliverbestmann/spritekit/asset"

// MaterialVariant selects the shader path a sprite is drawn with.
type MaterialVariant uint8

const (
	MaterialAddColorAndTexture MaterialVariant = iota
	MaterialGrayscale
)

// Material binds the main texture of a sprite. Shaders are owned by the
// renderer, a Material only carries the variant and its inputs.
type Material struct {
	variant     MaterialVariant
	mainTexture *asset.SpriteFrame
}

func NewMaterial(variant MaterialVariant) *Material {
	return &Material{variant: variant}
}

func (m *Material) Variant() MaterialVariant {
	return m.variant
}

func (m *Material) SetMainTexture(frame *asset.SpriteFrame) {
	m.mainTexture = frame
}

func (m *Material) MainTexture() *asset.SpriteFrame {
	return m.mainTexture
}
