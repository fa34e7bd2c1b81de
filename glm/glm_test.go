package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangle(t *testing.T) {
	r := RectangleFromPoints(Vec2f{10, 4}, Vec2f{2, 8})

	assert.Equal(t, Vec2f{2, 4}, r.Min)
	assert.Equal(t, Vec2f{10, 8}, r.Max)
	assert.Equal(t, Vec2f{8, 4}, r.Size())
	assert.Equal(t, Vec2f{6, 6}, r.Center())
	assert.False(t, r.Empty())
	assert.Equal(t, "Rect(x=2, y=4, w=8, h=4)", r.String())

	assert.True(t, RectangleFromXYWH[float32](1, 1, 0, 5).Empty())

	extended := r.Extend(Vec2f{0, 20})
	assert.Equal(t, Vec2f{0, 4}, extended.Min)
	assert.Equal(t, Vec2f{10, 20}, extended.Max)
}

func TestRectangleContains(t *testing.T) {
	outer := RectangleFromXYWH[uint32](0, 0, 256, 256)

	assert.True(t, outer.Contains(outer))
	assert.True(t, outer.Contains(RectangleFromXYWH[uint32](16, 16, 32, 32)))
	assert.False(t, outer.Contains(RectangleFromXYWH[uint32](250, 0, 16, 16)))
}

func TestAngle(t *testing.T) {
	assert.InDelta(t, 0, float64(FullTurn.Normalize()), 1e-5)
	assert.InDelta(t, 3*math.Pi/2, float64(Rad(-math.Pi/2).Normalize()), 1e-5)
	assert.InDelta(t, math.Pi/2, float64(Atan2(1, 0)), 1e-5)
	assert.InDelta(t, 3*math.Pi/2, float64(Atan2(-1, 0)), 1e-5)

	sin, cos := Sincos(math.Pi / 2)
	assert.InDelta(t, 1, sin, 1e-5)
	assert.InDelta(t, 0, cos, 1e-5)
}

func TestLerp(t *testing.T) {
	mid := Lerp(Vec2f{0, 10}, Vec2f{10, 20}, Vec2f{0.5, 0.25})
	assert.Equal(t, Vec2f{5, 12.5}, mid)
}

func TestColor(t *testing.T) {
	var zero Color
	assert.Equal(t, ColorWhite, zero)
	assert.Equal(t, Vec4f{1, 1, 1, 1}, zero.ToVec())

	c := ColorLinearRGBA(0.5, 0.25, 0, 1).WithAlpha(0.5)
	assert.Equal(t, Vec4f{0.5, 0.25, 0, 0.5}, c.ToVec())
	assert.Equal(t, float32(0.5), c.Alpha())

	assert.Equal(t, ColorBlack.ToVec(), ColorRGBA8(0, 0, 0, 255).ToVec())
	assert.InDelta(t, 1, ColorRGBA8(255, 255, 255, 255).ToVec()[0], 1e-5)
}
