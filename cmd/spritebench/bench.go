package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/oliverbestmann/spritekit/asset"
	"github.com/oliverbestmann/spritekit/glm"
	"github.com/oliverbestmann/spritekit/pulse"
	"github.com/oliverbestmann/spritekit/render"
	"github.com/oliverbestmann/spritekit/sprite"
)

// backend is the optional wgpu device.
type backend struct {
	ctx  *pulse.Context
	host *pulse.Host
}

func newBackend() (*backend, error) {
	ctx, err := pulse.NewContext(pulse.ContextOptions{})
	if err != nil {
		return nil, fmt.Errorf("create wgpu context: %w", err)
	}

	host, err := pulse.NewHost(ctx, pulse.HostOptions{})
	if err != nil {
		ctx.Release()
		return nil, err
	}

	return &backend{ctx: ctx, host: host}, nil
}

func (b *backend) Release() {
	b.host.Release()
	b.ctx.Release()
}

type Result struct {
	Frames    int
	Batches   int
	Triangles int

	LastFrame render.FrameStats
	Times     render.FrameTimes

	HasSurface bool

	// first pixel of the render texture after clearing it, if available
	Pixel []byte
}

// countingSubmitter stands in for the draw calls.
type countingSubmitter struct {
	batches   int
	triangles int
}

func (s *countingSubmitter) Submit(batch *render.Batch) error {
	s.batches++
	s.triangles += len(batch.Indices) / 3
	return nil
}

// cpuTexture is the texture view of the atlas when running without device.
type cpuTexture struct {
	image *image.RGBA
}

func run(config Config, b *backend) (Result, error) {
	var device asset.Device
	if b != nil {
		device = b.host
	}

	rt := asset.NewRenderTexture(device)
	defer rt.Destroy()

	rt.Restore(config.RenderTexture)
	if err := rt.OnLoaded(); err != nil {
		return Result{}, fmt.Errorf("load render texture: %w", err)
	}

	atlas, err := buildAtlas(config.Atlas)
	if err != nil {
		return Result{}, err
	}

	names := atlas.Names()

	// sprites subscribe to frames that are not yet loaded
	sprites := make([]*sprite.Component, config.Sprites)
	for idx := range sprites {
		sprites[idx] = newSprite(idx, atlas, names[idx%len(names)])
	}

	release, err := loadAtlas(atlas, config.Atlas, b)
	if err != nil {
		return Result{}, err
	}

	defer release()

	var submitter countingSubmitter
	batcher := render.NewBatcher(&submitter, render.BatcherOptions{MaxVertices: config.MaxVertices})

	var result Result

	for frame := range config.Frames {
		mutate(sprites, names, config.Mutate, frame)

		stats, err := render.RenderFrame(batcher, sprites)
		if err != nil {
			return Result{}, fmt.Errorf("render frame %d: %w", frame, err)
		}

		result.LastFrame = stats

		if batcher.Times.FrameCount%60 == 0 {
			slog.Info("Frame stats",
				slog.Int("frame", frame),
				slog.Any("stats", stats),
				slog.Float64("fps", batcher.Times.FPS()),
			)
		}
	}

	result.Frames = config.Frames
	result.Batches = submitter.batches
	result.Triangles = submitter.triangles
	result.Times = batcher.Times
	result.HasSurface = rt.Surface() != nil

	if b != nil && rt.Surface() != nil {
		if err := b.host.Clear(rt.Surface(), glm.ColorRGBA8(255, 128, 0, 255)); err != nil {
			return Result{}, fmt.Errorf("clear render texture: %w", err)
		}
	}

	pixel, err := rt.ReadPixels(asset.ReadPixelsOptions{Width: 1, Height: 1})
	switch {
	case errors.Is(err, asset.ErrNoSurface):
		slog.Info("Render texture has no surface, skip readback")
	case err != nil:
		return Result{}, fmt.Errorf("read pixels: %w", err)
	default:
		result.Pixel = pixel
	}

	return result, nil
}

func newSprite(idx int, atlas *asset.SpriteAtlas, frame string) *sprite.Component {
	node := sprite.NewBasicNode(glm.Vec2f{})

	c := sprite.New(node, sprite.Options{})
	c.SetSpriteAtlas(atlas)

	switch idx % 4 {
	case 1:
		c.SetType(sprite.TypeSliced)
		c.SetSizeMode(sprite.SizeModeCustom)
		node.Size = glm.Vec2f{96, 64}

	case 2:
		c.SetType(sprite.TypeFilled)
		c.SetFillType(sprite.FillHorizontal)

	case 3:
		c.SetType(sprite.TypeFilled)
		c.SetFillType(sprite.FillRadial)
	}

	c.SetFillRange(1)
	c.OnEnable()
	c.ChangeSpriteFrameFromAtlas(frame)

	return c
}

func mutate(sprites []*sprite.Component, names []string, config MutateConfig, frame int) {
	for idx, c := range sprites {
		if every(config.FrameEvery, idx+frame) {
			c.ChangeSpriteFrameFromAtlas(names[(idx+frame)%len(names)])
		}

		if c.Type() == sprite.TypeFilled && every(config.FillEvery, idx+frame) {
			c.SetFillRange(float32((idx+frame)%100) / 100)
		}

		if every(config.ColorEvery, idx+frame) {
			c.SetColor(glm.ColorRGBA8(uint8(idx), uint8(frame), 255, 255))
		}
	}
}

func every(n, value int) bool {
	return n > 0 && value%n == 0
}

// buildAtlas creates the frames of a grid atlas. The frames stay unloaded
// until the atlas texture is set.
func buildAtlas(config AtlasConfig) (*asset.SpriteAtlas, error) {
	atlas := asset.NewSpriteAtlas("bench")

	size := config.FrameSize

	for row := range config.Rows {
		for col := range config.Columns {
			frame := asset.NewSpriteFrame(fmt.Sprintf("frame-%d-%d", col, row), asset.SpriteFrameOptions{
				Rect: glm.RectangleFromXYWH(col*size, row*size, size, size),
				Insets: asset.Insets{
					Left:   config.Inset,
					Top:    config.Inset,
					Right:  config.Inset,
					Bottom: config.Inset,
				},
			})

			if err := atlas.Add(frame); err != nil {
				return nil, err
			}
		}
	}

	return atlas, nil
}

// loadAtlas generates the atlas image and provides it to all frames.
// The returned function releases the device texture.
func loadAtlas(atlas *asset.SpriteAtlas, config AtlasConfig, b *backend) (func(), error) {
	width := config.Columns * config.FrameSize
	height := config.Rows * config.FrameSize

	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	for y := range int(height) {
		for x := range int(width) {
			col := uint32(x) / config.FrameSize
			row := uint32(y) / config.FrameSize

			img.SetRGBA(x, y, color.RGBA{
				R: uint8(col * 255 / config.Columns),
				G: uint8(row * 255 / config.Rows),
				B: 128,
				A: 255,
			})
		}
	}

	if b == nil {
		atlas.SetTexture(&cpuTexture{image: img}, width, height)
		return func() {}, nil
	}

	texture, err := pulse.NewTextureFromImage(b.ctx, "Atlas", img)
	if err != nil {
		return nil, fmt.Errorf("upload atlas: %w", err)
	}

	atlas.SetTexture(texture.ToWGPUTextureView(), width, height)

	return texture.Release, nil
}
