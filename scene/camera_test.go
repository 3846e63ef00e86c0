package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"one-engine/math"
)

func assertMatrix(t *testing.T, want mgl32.Mat4, got math.Mat4) {
	t.Helper()
	flat := got.Flatten()
	for i := range flat {
		assert.InDelta(t, want[i], flat[i], 1e-4, "element %d", i)
	}
}

func expectedMVP(c *PerspectiveCamera, angle float32) mgl32.Mat4 {
	p := c.Position
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(angle))).
		Mul4(mgl32.Translate3D(p.X, p.Y, p.Z))
}

func TestCameraRotateIsAbsolute(t *testing.T) {
	c := NewPerspectiveCamera(45, 4.0/3.0, 1, 10000)
	c.Position.Set(0, 500)

	c.Rotate(30)
	c.Rotate(10)
	assert.Equal(t, float32(10), c.Angle())
	assertMatrix(t, expectedMVP(c, 10), c.SetPerspective(nil))

	c.RotateOnYAxis(-75)
	assert.Equal(t, float32(-75), c.Angle())
	assertMatrix(t, expectedMVP(c, -75), c.SetPerspective(nil))
}

func TestCameraSetPerspectiveMutatesInput(t *testing.T) {
	c := NewPerspectiveCamera(60, 1, 0.1, 100)
	c.Position = Position{X: 3, Y: 1, Z: -7}
	c.Rotate(90)

	m := math.Mat4Identity()
	result := c.SetPerspective(&m)

	assert.Equal(t, result, m)
	assertMatrix(t, expectedMVP(c, 90), m)
}

func TestCameraSetPerspectiveComposesWithModel(t *testing.T) {
	c := NewPerspectiveCamera(45, 1, 1, 100)
	c.Position.Set(0, 10)

	model := math.Mat4Translation(math.NewVec3(2, 0, 0))
	got := c.SetPerspective(&model)

	want := expectedMVP(c, 0).Mul4(mgl32.Translate3D(2, 0, 0))
	assertMatrix(t, want, got)
}

func TestCameraRotationOrder(t *testing.T) {
	// With no projection effect on X/Z ordering, a point at the origin is
	// translated before it is rotated: the camera offset ends up rotated.
	c := NewPerspectiveCamera(90, 1, 1, 100)
	c.Position = Position{X: 5}
	c.Rotate(90)

	m := math.Mat4Identity()
	m.Translate(c.Position.Vec3()).Rotate(c.Angle(), math.Vec3Up)
	p := m.TransformPoint(math.Vec3Zero)

	assert.InDelta(t, 0, p.X, 1e-4)
	assert.InDelta(t, -5, p.Z, 1e-4)
}

func TestCameraUpdateAspectRatio(t *testing.T) {
	c := NewPerspectiveCamera(45, 1, 1, 100)
	c.UpdateAspectRatio(1280, 720)
	assert.InDelta(t, 16.0/9.0, c.Aspect, 1e-6)

	c.UpdateAspectRatio(100, 0)
	assert.InDelta(t, 16.0/9.0, c.Aspect, 1e-6)
}

func TestCameraBuildScale(t *testing.T) {
	c := NewPerspectiveCamera(45, 1, 1, 100)
	c.Position.Set(0, 250)
	assert.InDelta(t, -0.5, c.BuildScale(), 1e-6)
}
