// Package render pulls the render contribution of sprite components once per
// frame and merges them into batches sharing texture and material.
package render

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/spritekit/asset"
	"github.com/oliverbestmann/spritekit/sprite"
)

// maximum number of vertices addressable with uint16 indices
const maxBatchVertices = 1 << 16

// vertices of the largest fixed sprite layout, the sliced 4x4 grid
const minBatchVertices = 16

// Batch is a list of triangles sharing the same texture and material variant.
// The slices are reused after Submit returns.
type Batch struct {
	Texture asset.TextureView
	Variant sprite.MaterialVariant

	Vertices []sprite.Vertex
	Indices  []uint16

	// Sprites is the number of sprites merged into this batch.
	Sprites int
}

// Submitter draws a batch, e.g. by uploading it to the device.
type Submitter interface {
	Submit(batch *Batch) error
}

// Renderable produces a render contribution, see sprite.Component.
type Renderable interface {
	Render(r sprite.Renderer) bool
}

type BatcherOptions struct {
	// MaxVertices limits the size of a single batch. Defaults to and is
	// capped at the number of vertices addressable by uint16 indices.
	// Values below the vertex count of a sliced sprite are raised to it.
	MaxVertices int
}

type batchConfig struct {
	texture asset.TextureView
	variant sprite.MaterialVariant
}

// Batcher implements sprite.Renderer. Call Begin, render all components
// and finish the frame with End.
type Batcher struct {
	submitter   Submitter
	maxVertices int

	batch       Batch
	batchConfig batchConfig

	frameStart time.Time
	stats      FrameStats
	err        error

	Times FrameTimes
}

var _ sprite.Renderer = (*Batcher)(nil)

func NewBatcher(submitter Submitter, opts BatcherOptions) *Batcher {
	if opts.MaxVertices <= 0 || opts.MaxVertices > maxBatchVertices {
		opts.MaxVertices = maxBatchVertices
	}

	opts.MaxVertices = max(opts.MaxVertices, minBatchVertices)

	return &Batcher{
		submitter:   submitter,
		maxVertices: opts.MaxVertices,
	}
}

// Begin starts a new frame.
func (b *Batcher) Begin() {
	b.reset()

	b.frameStart = time.Now()
	b.stats = FrameStats{}
	b.err = nil
}

// Draw asks r for its render contribution.
func (b *Batcher) Draw(r Renderable) {
	if r.Render(b) {
		b.stats.Sprites++
	} else {
		b.stats.Skipped++
	}
}

// Commit adds the render data of a sprite to the current batch. The texture
// view must be comparable, device views are pointers.
func (b *Batcher) Commit(data *sprite.RenderData, texture asset.TextureView, assembler sprite.Assembler) {
	if data == nil || data.Released() || len(data.Indices) == 0 {
		return
	}

	variant := sprite.MaterialAddColorAndTexture
	if data.Material != nil {
		variant = data.Material.Variant()
	}

	batchConfig := batchConfig{
		texture: texture,
		variant: variant,
	}

	requireFlush := b.batchConfig != batchConfig ||
		len(b.batch.Vertices)+len(data.Vertices) > b.maxVertices

	if requireFlush {
		b.flush()

		b.batchConfig = batchConfig
	}

	base := uint16(len(b.batch.Vertices))

	b.batch.Vertices = append(b.batch.Vertices, data.Vertices...)
	for _, idx := range data.Indices {
		b.batch.Indices = append(b.batch.Indices, base+idx)
	}

	b.batch.Sprites++
}

// End submits the pending batch and returns the statistics of the frame.
// The first error returned by the submitter is reported.
func (b *Batcher) End() (FrameStats, error) {
	b.flush()

	b.stats.Duration = time.Since(b.frameStart)
	b.Times.Observe(b.stats.Duration)

	return b.stats, b.err
}

func (b *Batcher) flush() {
	defer b.reset()

	if len(b.batch.Indices) == 0 {
		return
	}

	b.batch.Texture = b.batchConfig.texture
	b.batch.Variant = b.batchConfig.variant

	asset.Logger().Debug("Submit sprite batch",
		slog.Int("sprites", b.batch.Sprites),
		slog.Int("vertices", len(b.batch.Vertices)),
		slog.Int("indices", len(b.batch.Indices)),
	)

	b.stats.Batches++
	b.stats.Vertices += len(b.batch.Vertices)
	b.stats.Indices += len(b.batch.Indices)

	if err := b.submitter.Submit(&b.batch); err != nil && b.err == nil {
		b.err = fmt.Errorf("submit batch %d: %w", b.stats.Batches, err)
	}
}

func (b *Batcher) reset() {
	b.batch.Vertices = b.batch.Vertices[:0]
	b.batch.Indices = b.batch.Indices[:0]
	b.batch.Sprites = 0
	b.batch.Texture = nil
	b.batchConfig = batchConfig{}
}

// RenderFrame draws all renderables in a single frame.
func RenderFrame[R Renderable](b *Batcher, renderables []R) (FrameStats, error) {
	b.Begin()

	for _, r := range renderables {
		b.Draw(r)
	}

	return b.End()
}
