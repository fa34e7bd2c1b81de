package render

import (
	"log/slog"
	"time"
)

// FrameStats describes a single frame rendered by a Batcher.
type FrameStats struct {
	// Sprites that committed render data
	Sprites int

	// Skipped sprites that could not render, e.g. still loading
	Skipped int

	Batches  int
	Vertices int
	Indices  int

	Duration time.Duration
}

func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("sprites", s.Sprites),
		slog.Int("skipped", s.Skipped),
		slog.Int("batches", s.Batches),
		slog.Int("vertices", s.Vertices),
		slog.Duration("duration", s.Duration),
	)
}

type FrameTimes struct {
	FrameCount      uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration

	// Duration of the most recent frame
	Last time.Duration
}

// Observe records the duration of a frame.
func (t *FrameTimes) Observe(d time.Duration) {
	const window = 64

	t.Last = d
	t.MaxDuration = max(t.MaxDuration, d)

	if t.FrameCount < window/2 {
		t.AverageDuration = d
	} else {
		t.AverageDuration = ((window-1)*t.AverageDuration + d) / window
	}

	t.FrameCount += 1
}

func (t *FrameTimes) FPS() float64 {
	if t.AverageDuration <= 0 {
		return 0
	}

	return 1.0 / t.AverageDuration.Seconds()
}
