package glm

import (
	"math"

	"golang.org/x/mobile/exp/f32"
)

// Rad is an angle in radians.
type Rad float32

const FullTurn Rad = 2 * math.Pi

// Normalize wraps the angle into [0, 2π).
func (r Rad) Normalize() Rad {
	n := Rad(math.Mod(float64(r), float64(FullTurn)))
	if n < 0 {
		n += FullTurn
	}

	return n
}

func Sincos(r Rad) (float32, float32) {
	return f32.Sin(float32(r)), f32.Cos(float32(r))
}

// Atan2 returns the angle of the vector (x, y) in [0, 2π).
func Atan2(y, x float32) Rad {
	return Rad(math.Atan2(float64(y), float64(x))).Normalize()
}
