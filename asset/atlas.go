package asset

import (
	"fmt"
	"maps"
	"slices"
)

// SpriteAtlas is a collection of sprite frames packed into one texture,
// looked up by name.
type SpriteAtlas struct {
	Asset

	frames map[string]*SpriteFrame
}

func NewSpriteAtlas(name string) *SpriteAtlas {
	return &SpriteAtlas{
		Asset:  newAsset(name),
		frames: map[string]*SpriteFrame{},
	}
}

// Add registers a frame under its name.
func (a *SpriteAtlas) Add(frame *SpriteFrame) error {
	if _, exists := a.frames[frame.Name()]; exists {
		return fmt.Errorf("atlas %q already contains frame %q", a.Name(), frame.Name())
	}

	a.frames[frame.Name()] = frame
	return nil
}

// SpriteFrame returns the frame with the given name, or nil.
func (a *SpriteAtlas) SpriteFrame(name string) *SpriteFrame {
	return a.frames[name]
}

// Names returns the sorted names of all frames.
func (a *SpriteAtlas) Names() []string {
	return slices.Sorted(maps.Keys(a.frames))
}

// SetTexture provides the shared texture to all frames and marks the
// atlas as loaded once every frame is.
func (a *SpriteAtlas) SetTexture(view TextureView, width, height uint32) {
	for _, name := range a.Names() {
		a.frames[name].SetTexture(view, width, height)
	}

	a.markLoaded()
}
