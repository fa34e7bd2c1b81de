package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/spritekit/asset"
	"github.com/oliverbestmann/spritekit/schema"
	"github.com/oliverbestmann/spritekit/sprite"
	"github.com/pkg/profile"
)

func main() {
	configPath := flag.String("config", "", "Path to a yaml config file")
	profileMode := flag.String("profile", "", "Write a profile: cpu, mem or trace")
	dumpSchema := flag.Bool("schema", false, "Print the editor schemas as yaml and exit")
	gpu := flag.Bool("gpu", false, "Use a wgpu device, overrides the config")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	asset.SetLogger(logger)

	if *dumpSchema {
		err := schema.Encode(os.Stdout, asset.RenderTextureSchema, sprite.ComponentSchema)
		exitOnError(err, "encode schema")
		return
	}

	config := DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = LoadConfigFile(*configPath)
		exitOnError(err, "load config")
	}

	if *gpu {
		config.GPU = true
	}

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "trace":
		defer profile.Start(profile.TraceProfile, profile.ProfilePath(".")).Stop()
	case "":
	default:
		exitOnError(fmt.Errorf("unknown profile mode %q", *profileMode), "parse flags")
	}

	var b *backend
	if config.GPU {
		var err error
		b, err = newBackend()
		exitOnError(err, "initialize gpu")

		defer b.Release()
	}

	result, err := run(config, b)
	exitOnError(err, "run benchmark")

	slog.Info("Benchmark finished",
		slog.Int("frames", result.Frames),
		slog.Int("batches", result.Batches),
		slog.Int("triangles", result.Triangles),
		slog.Duration("avgFrame", result.Times.AverageDuration),
		slog.Duration("maxFrame", result.Times.MaxDuration),
		slog.Bool("surface", result.HasSurface),
		slog.Any("pixel", result.Pixel),
	)
}

func exitOnError(err error, desc string) {
	if err == nil {
		return
	}

	slog.Error("Failed to "+desc, slog.String("err", err.Error()))
	os.Exit(1)
}
