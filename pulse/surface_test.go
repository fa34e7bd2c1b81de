package pulse

import (
	"testing"

	"github.com/oliverbestmann/spritekit/asset"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestSurfaceLeaked(t *testing.T) {
	released := &Surface{info: asset.SurfaceInfo{Title: "released"}}
	assert.False(t, released.leaked())
	assert.Nil(t, released.ColorView())
	assert.Nil(t, released.DepthStencilView())

	// nothing left to release, the finalizer does not touch the device
	releaseLeakedSurface(released)

	assert.True(t, (&Surface{color: &Texture{}}).leaked())
	assert.True(t, (&Surface{depthStencil: &Texture{}}).leaked())
}

func TestDepthStencilFormatOf(t *testing.T) {
	cases := map[asset.DepthStencilFormat]wgpu.TextureFormat{
		asset.DepthStencilD16:    wgpu.TextureFormatDepth16Unorm,
		asset.DepthStencilD24S8:  wgpu.TextureFormatDepth24PlusStencil8,
		asset.DepthStencilD32F:   wgpu.TextureFormatDepth32Float,
		asset.DepthStencilD32FS8: wgpu.TextureFormatDepth32FloatStencil8,
	}

	for format, expected := range cases {
		actual, err := depthStencilFormatOf(format)
		assert.NoError(t, err)
		assert.Equal(t, expected, actual, format.String())
	}

	_, err := depthStencilFormatOf(asset.DepthStencilNone)
	assert.Error(t, err)
}

func TestAlignUp(t *testing.T) {
	assert.Equal(t, uint32(256), alignUp(4, copyBytesPerRowAlignment))
	assert.Equal(t, uint32(256), alignUp(256, copyBytesPerRowAlignment))
	assert.Equal(t, uint32(512), alignUp(257, copyBytesPerRowAlignment))
}
