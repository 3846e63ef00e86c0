package scene

import (
	stdmath "math"

	"one-engine/math"
)

// Position is a point whose Z is always stored as -|z|, so objects sit in
// front of a camera looking down -Z. Y is zero unless assigned directly.
type Position struct {
	X, Y, Z float32
}

func NewPosition(x, z float32) Position {
	var p Position
	p.Set(x, z)
	return p
}

// Set assigns X as given and Z as the negated absolute value of z.
func (p *Position) Set(x, z float32) {
	p.X = x
	p.Z = -float32(stdmath.Abs(float64(z)))
}

func (p Position) Vec3() math.Vec3 {
	return math.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}
