package main

import (
	"strings"
	"testing"

	"github.com/oliverbestmann/spritekit/asset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(strings.NewReader(`
sprites: 10
atlas:
  columns: 2
  rows: 1
  frameSize: 16
  inset: 4
renderTexture:
  name: target
  width: 64
  height: 32
  depthStencilFormat: D32FS8
`))

	require.NoError(t, err)

	assert.Equal(t, 10, config.Sprites)
	assert.Equal(t, 600, config.Frames)
	assert.Equal(t, AtlasConfig{Columns: 2, Rows: 1, FrameSize: 16, Inset: 4}, config.Atlas)
	assert.Equal(t, asset.RenderTextureInfo{
		Name:               "target",
		Width:              64,
		Height:             32,
		DepthStencilFormat: asset.DepthStencilD32FS8,
	}, config.RenderTexture)
}

func TestLoadConfigEmpty(t *testing.T) {
	config, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"unknown field":  "sprite: 10",
		"unknown format": "renderTexture: {depthStencilFormat: D99}",
		"empty atlas":    "atlas: {columns: 0}",
		"large inset":    "atlas: {frameSize: 8, inset: 5}",
	}

	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(text))
			assert.Error(t, err)
		})
	}
}

func TestRunWithoutDevice(t *testing.T) {
	config := DefaultConfig()
	config.Sprites = 30
	config.Frames = 20

	result, err := run(config, nil)
	require.NoError(t, err)

	assert.Equal(t, 20, result.Frames)
	assert.Positive(t, result.Batches)
	assert.Positive(t, result.Triangles)

	// all sprites became renderable once the atlas was loaded
	assert.Equal(t, 30, result.LastFrame.Sprites)
	assert.Zero(t, result.LastFrame.Skipped)

	// without a device the render texture stays without surface
	assert.False(t, result.HasSurface)
}
