// Package asset holds the shared, externally owned assets sprites render
// from, and the RenderTexture off-screen render target.
package asset

import (
	"log/slog"

	"github.com/google/uuid"
)

// Asset is the state shared by all assets: identity, loaded flag and the
// load event. Embed it into concrete asset types.
type Asset struct {
	uuid uuid.UUID
	name string

	loaded    bool
	destroyed bool

	load Event
}

func newAsset(name string) Asset {
	return Asset{uuid: uuid.New(), name: name}
}

func (a *Asset) UUID() uuid.UUID {
	return a.uuid
}

func (a *Asset) Name() string {
	return a.name
}

func (a *Asset) SetName(name string) {
	a.name = name
}

// Loaded returns true once the asset and all its dependencies are available.
func (a *Asset) Loaded() bool {
	return a.loaded
}

// IsValid returns false after the asset was destroyed.
func (a *Asset) IsValid() bool {
	return !a.destroyed
}

// OnLoad subscribes fn to every load notification of this asset.
func (a *Asset) OnLoad(fn func()) Subscription {
	return a.load.Subscribe(fn)
}

// OnceLoad subscribes fn to the next load notification only.
func (a *Asset) OnceLoad(fn func()) Subscription {
	return a.load.Once(fn)
}

// LoadSubscribers returns the number of active load subscriptions.
func (a *Asset) LoadSubscribers() int {
	return a.load.Len()
}

// markLoaded flags the asset as loaded and notifies subscribers.
func (a *Asset) markLoaded() {
	a.loaded = true

	Logger().Debug("Asset loaded",
		slog.String("name", a.name),
		slog.String("uuid", a.uuid.String()),
		slog.Int("subscribers", a.load.Len()),
	)

	a.load.Emit()
}

// Destroy releases the base state. Subscriptions are dropped without being called.
func (a *Asset) Destroy() {
	if a.destroyed {
		return
	}

	a.destroyed = true
	a.loaded = false
	a.load.Clear()
}
