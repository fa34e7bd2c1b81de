package pulse

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// stagingBuffers caches map readable buffers by size. Reading back the
// same region every frame then does not allocate a new buffer each time.
type stagingBuffers struct {
	device *wgpu.Device
	cache  *lru.Cache[uint64, *wgpu.Buffer]
}

func newStagingBuffers(ctx *Context, size int) (*stagingBuffers, error) {
	cache, err := lru.NewWithEvict[uint64, *wgpu.Buffer](size, releaseBufferOnEviction)
	if err != nil {
		return nil, fmt.Errorf("create staging buffer cache: %w", err)
	}

	return &stagingBuffers{device: ctx.Device, cache: cache}, nil
}

func (s *stagingBuffers) Get(size uint64) (*wgpu.Buffer, error) {
	buf, ok := s.cache.Get(size)
	if ok {
		return buf, nil
	}

	buf, err := s.device.TryCreateBuffer(&wgpu.BufferDescriptor{
		Label: "Readback",
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})

	if err != nil {
		return nil, fmt.Errorf("create staging buffer of %d bytes: %w", size, err)
	}

	s.cache.Add(size, buf)

	return buf, nil
}

func (s *stagingBuffers) Purge() {
	s.cache.Purge()
}

func releaseBufferOnEviction(_ uint64, buf *wgpu.Buffer) {
	buf.Release()
}
