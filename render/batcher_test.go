package render

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/oliverbestmann/spritekit/asset"
	"github.com/oliverbestmann/spritekit/glm"
	"github.com/oliverbestmann/spritekit/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type view struct {
	name string
}

type recorder struct {
	batches []Batch
	err     error
}

func (r *recorder) Submit(batch *Batch) error {
	r.batches = append(r.batches, Batch{
		Texture:  batch.Texture,
		Variant:  batch.Variant,
		Vertices: slices.Clone(batch.Vertices),
		Indices:  slices.Clone(batch.Indices),
		Sprites:  batch.Sprites,
	})

	return r.err
}

func newSprite(texture *view, frameSize uint32) *sprite.Component {
	frame := asset.NewSpriteFrame(texture.name, asset.SpriteFrameOptions{
		Rect: glm.RectangleFromXYWH(0, 0, frameSize, frameSize),
	})

	frame.SetTexture(texture, 256, 256)

	c := sprite.New(sprite.NewBasicNode(glm.Vec2f{}), sprite.Options{})
	c.OnEnable()
	c.SetSpriteFrame(frame)

	return c
}

func TestBatchesShareTexture(t *testing.T) {
	atlas := &view{name: "atlas"}

	sprites := []*sprite.Component{
		newSprite(atlas, 16),
		newSprite(atlas, 32),
		newSprite(atlas, 64),
	}

	var r recorder
	stats, err := RenderFrame(NewBatcher(&r, BatcherOptions{}), sprites)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Sprites)
	assert.Equal(t, 1, stats.Batches)
	assert.Equal(t, 12, stats.Vertices)
	assert.Equal(t, 18, stats.Indices)

	require.Len(t, r.batches, 1)

	batch := r.batches[0]
	assert.Same(t, atlas, batch.Texture)
	assert.Equal(t, sprite.MaterialAddColorAndTexture, batch.Variant)
	assert.Equal(t, 3, batch.Sprites)

	// indices of later sprites are offset by the vertices before them
	assert.Equal(t, []uint16{4, 5, 6, 6, 5, 7}, batch.Indices[6:12])
	assert.Equal(t, []uint16{8, 9, 10, 10, 9, 11}, batch.Indices[12:18])

	// second sprite is 32x32 around its anchor
	assert.Equal(t, glm.Vec2f{-16, -16}, batch.Vertices[4].Position)
}

func TestBatchesSplitOnTextureChange(t *testing.T) {
	a := &view{name: "a"}
	b := &view{name: "b"}

	sprites := []*sprite.Component{
		newSprite(a, 16),
		newSprite(b, 16),
		newSprite(b, 16),
		newSprite(a, 16),
	}

	var r recorder
	stats, err := RenderFrame(NewBatcher(&r, BatcherOptions{}), sprites)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Batches)
	require.Len(t, r.batches, 3)

	assert.Same(t, a, r.batches[0].Texture)
	assert.Same(t, b, r.batches[1].Texture)
	assert.Same(t, a, r.batches[2].Texture)
	assert.Equal(t, 2, r.batches[1].Sprites)
}

func TestBatchesSplitOnMaterialChange(t *testing.T) {
	atlas := &view{name: "atlas"}

	gray := newSprite(atlas, 16)
	gray.SetGrayscale(true)

	sprites := []*sprite.Component{newSprite(atlas, 16), gray}

	var r recorder
	_, err := RenderFrame(NewBatcher(&r, BatcherOptions{}), sprites)
	require.NoError(t, err)

	require.Len(t, r.batches, 2)
	assert.Equal(t, sprite.MaterialAddColorAndTexture, r.batches[0].Variant)
	assert.Equal(t, sprite.MaterialGrayscale, r.batches[1].Variant)
}

func TestBatchesSplitOnVertexBudget(t *testing.T) {
	atlas := &view{name: "atlas"}

	var sprites []*sprite.Component
	for range 5 {
		sprites = append(sprites, newSprite(atlas, 16))
	}

	var r recorder
	stats, err := RenderFrame(NewBatcher(&r, BatcherOptions{MaxVertices: 16}), sprites)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Batches)
	require.Len(t, r.batches, 2)
	assert.Equal(t, 4, r.batches[0].Sprites)
	assert.Equal(t, 1, r.batches[1].Sprites)
	assert.Equal(t, []uint16{0, 1, 2, 2, 1, 3}, r.batches[1].Indices)
}

func TestVertexBudgetFitsSlicedSprite(t *testing.T) {
	atlas := &view{name: "atlas"}

	sliced := newSprite(atlas, 16)
	sliced.SetType(sprite.TypeSliced)

	sprites := []*sprite.Component{newSprite(atlas, 16), sliced, newSprite(atlas, 16)}

	var r recorder
	_, err := RenderFrame(NewBatcher(&r, BatcherOptions{MaxVertices: 8}), sprites)
	require.NoError(t, err)

	require.Len(t, r.batches, 3)
	for _, batch := range r.batches {
		assert.LessOrEqual(t, len(batch.Vertices), 16)
	}

	assert.Len(t, r.batches[1].Vertices, 16)
}

func TestSkipsSpritesThatCanNotRender(t *testing.T) {
	atlas := &view{name: "atlas"}

	disabled := newSprite(atlas, 16)
	disabled.OnDisable()

	loading := sprite.New(sprite.NewBasicNode(glm.Vec2f{}), sprite.Options{})
	loading.OnEnable()
	loading.SetSpriteFrame(asset.NewSpriteFrame("loading", asset.SpriteFrameOptions{}))

	sprites := []*sprite.Component{newSprite(atlas, 16), disabled, loading}

	var r recorder
	stats, err := RenderFrame(NewBatcher(&r, BatcherOptions{}), sprites)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Sprites)
	assert.Equal(t, 2, stats.Skipped)
	assert.Len(t, r.batches, 1)
}

func TestEmptyRadialFillIsNotSubmitted(t *testing.T) {
	c := newSprite(&view{name: "atlas"}, 16)
	c.SetType(sprite.TypeFilled)
	c.SetFillType(sprite.FillRadial)
	c.SetFillRange(0)

	var r recorder
	stats, err := RenderFrame(NewBatcher(&r, BatcherOptions{}), []*sprite.Component{c})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Sprites)
	assert.Equal(t, 0, stats.Batches)
	assert.Empty(t, r.batches)
}

func TestSubmitError(t *testing.T) {
	a := &view{name: "a"}
	b := &view{name: "b"}

	r := recorder{err: errors.New("device lost")}

	batcher := NewBatcher(&r, BatcherOptions{})
	stats, err := RenderFrame(batcher, []*sprite.Component{newSprite(a, 16), newSprite(b, 16)})

	require.Error(t, err)
	assert.ErrorContains(t, err, "device lost")
	assert.Equal(t, 2, stats.Batches)

	// the next frame starts without error
	r.err = nil
	_, err = RenderFrame(batcher, []*sprite.Component{newSprite(a, 16)})
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), batcher.Times.FrameCount)
}

func TestFrameTimes(t *testing.T) {
	var times FrameTimes
	assert.Zero(t, times.FPS())

	times.Observe(10 * time.Millisecond)
	times.Observe(20 * time.Millisecond)

	assert.Equal(t, uint64(2), times.FrameCount)
	assert.Equal(t, 20*time.Millisecond, times.Last)
	assert.Equal(t, 20*time.Millisecond, times.MaxDuration)
	assert.InDelta(t, 50, times.FPS(), 1e-6)

	for range 100 {
		times.Observe(10 * time.Millisecond)
	}

	assert.InDelta(t, 100, times.FPS(), 5)
	assert.Equal(t, 20*time.Millisecond, times.MaxDuration)
}
