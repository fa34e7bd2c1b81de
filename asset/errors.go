package asset

import "errors"

// ErrNoSurface is returned when reading pixels from a RenderTexture that has
// no device surface yet. It signals "not ready", not a device failure.
var ErrNoSurface = errors.New("render texture has no surface")

// ErrBufferTooSmall is returned when a caller supplied pixel buffer cannot
// hold the requested region.
var ErrBufferTooSmall = errors.New("pixel buffer too small")
