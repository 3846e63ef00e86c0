package math

import "math"

// Vec3 is a point or a direction in world space.
type Vec3 struct {
	X, Y, Z float32
}

var (
	Vec3Zero = Vec3{}
	Vec3Up   = Vec3{Y: 1}
)

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{X: a.X * s, Y: a.Y * s, Z: a.Z * s}
}

func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) Length() float32 {
	return float32(math.Sqrt(float64(a.Dot(a))))
}

// Unit scales a to length 1. The zero vector is returned unchanged.
func (a Vec3) Unit() Vec3 {
	if l := a.Length(); l > 0 {
		return a.Scale(1 / l)
	}
	return a
}

// Point lifts a into homogeneous coordinates with w = 1.
func (a Vec3) Point() Vec4 {
	return Vec4{X: a.X, Y: a.Y, Z: a.Z, W: 1}
}

// Vec4 is a homogeneous coordinate, or any four-component shader value
// such as a light vector.
type Vec4 struct {
	X, Y, Z, W float32
}

func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Transform returns the row vector v multiplied by m.
func (v Vec4) Transform(m Mat4) Vec4 {
	in := v.Array()
	var out [4]float32
	for j := range out {
		for i, c := range in {
			out[j] += c * m[i][j]
		}
	}
	return Vec4{X: out[0], Y: out[1], Z: out[2], W: out[3]}
}

// Array returns the components in x, y, z, w order for uniform upload.
func (v Vec4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

// Project divides x, y and z by w. A zero w leaves them as they are.
func (v Vec4) Project() Vec3 {
	if v.W == 0 {
		return Vec3{X: v.X, Y: v.Y, Z: v.Z}
	}
	return Vec3{X: v.X / v.W, Y: v.Y / v.W, Z: v.Z / v.W}
}
