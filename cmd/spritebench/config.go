package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oliverbestmann/spritekit/asset"
	"gopkg.in/yaml.v3"
)

type AtlasConfig struct {
	Columns   uint32 `yaml:"columns"`
	Rows      uint32 `yaml:"rows"`
	FrameSize uint32 `yaml:"frameSize"`

	// Inset of the nine slice border of every frame, in texels
	Inset uint32 `yaml:"inset"`
}

type MutateConfig struct {
	// Every n-th sprite changes its frame each tick, 0 disables
	FrameEvery int `yaml:"frameEvery"`

	// Every n-th filled sprite animates its fill range each tick, 0 disables
	FillEvery int `yaml:"fillEvery"`

	// Every n-th sprite changes its color each tick, 0 disables
	ColorEvery int `yaml:"colorEvery"`
}

type Config struct {
	Sprites int `yaml:"sprites"`
	Frames  int `yaml:"frames"`

	// MaxVertices of a single batch, 0 uses the maximum
	MaxVertices int `yaml:"maxVertices"`

	// GPU creates a wgpu device for the render texture and the atlas texture
	GPU bool `yaml:"gpu"`

	Atlas         AtlasConfig             `yaml:"atlas"`
	Mutate        MutateConfig            `yaml:"mutate"`
	RenderTexture asset.RenderTextureInfo `yaml:"renderTexture"`
}

func DefaultConfig() Config {
	return Config{
		Sprites: 1000,
		Frames:  600,

		Atlas: AtlasConfig{
			Columns:   8,
			Rows:      8,
			FrameSize: 32,
			Inset:     8,
		},

		Mutate: MutateConfig{
			FrameEvery: 10,
			FillEvery:  2,
			ColorEvery: 50,
		},

		RenderTexture: asset.RenderTextureInfo{
			Name:               "canvas",
			Width:              512,
			Height:             512,
			DepthStencilFormat: asset.DepthStencilD24S8,
		},
	}
}

// LoadConfig reads a yaml config on top of the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func LoadConfigFile(path string) (Config, error) {
	fp, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	defer fp.Close()

	return LoadConfig(fp)
}

func (c Config) Validate() error {
	switch {
	case c.Sprites < 0:
		return fmt.Errorf("negative sprite count %d", c.Sprites)
	case c.Frames < 0:
		return fmt.Errorf("negative frame count %d", c.Frames)
	case c.Atlas.Columns == 0 || c.Atlas.Rows == 0:
		return fmt.Errorf("atlas of %dx%d frames is empty", c.Atlas.Columns, c.Atlas.Rows)
	case c.Atlas.FrameSize == 0:
		return errors.New("atlas frame size must not be zero")
	case 2*c.Atlas.Inset > c.Atlas.FrameSize:
		return fmt.Errorf("inset %d too large for frame size %d", c.Atlas.Inset, c.Atlas.FrameSize)
	}

	return nil
}
