package pulse

import (
	"log/slog"
	"runtime"

	"github.com/oliverbestmann/spritekit/asset"
)

// releaseWhenCollected releases the attachments of a surface that became
// unreachable without a call to Host.DestroySurface.
func releaseWhenCollected(surface *Surface) {
	if runtime.GOOS == "js" {
		// js values are garbage collected anyways
		return
	}

	runtime.SetFinalizer(surface, releaseLeakedSurface)
}

// forgetSurface removes the finalizer of an explicitly destroyed surface.
func forgetSurface(surface *Surface) {
	if runtime.GOOS == "js" {
		return
	}

	runtime.SetFinalizer(surface, nil)
}

func releaseLeakedSurface(surface *Surface) {
	if !surface.leaked() {
		return
	}

	info := surface.Info()

	asset.Logger().Warn("Releasing surface that was never destroyed",
		slog.String("title", info.Title),
		slog.Int("width", int(info.Width)),
		slog.Int("height", int(info.Height)),
	)

	surface.Release()
}
