package scene

import (
	"one-engine/math"
)

// PerspectiveCamera projects the scene with a vertical field of view. FOV and
// the rotation angle are in degrees.
type PerspectiveCamera struct {
	FOV      float32
	Aspect   float32
	Near     float32
	Far      float32
	Position Position

	angle float32
}

func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// RotateOnYAxis sets the camera's rotation around +Y. The angle replaces
// the previous one; it does not accumulate.
func (c *PerspectiveCamera) RotateOnYAxis(angle float32) {
	c.angle = angle
}

// Rotate is RotateOnYAxis.
func (c *PerspectiveCamera) Rotate(angle float32) {
	c.RotateOnYAxis(angle)
}

func (c *PerspectiveCamera) Angle() float32 {
	return c.angle
}

func (c *PerspectiveCamera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.Aspect = width / height
	}
}

// SetPerspective right-multiplies m by the camera translation, its Y
// rotation and the projection, in that order, so a vertex is translated
// first and projected last. A nil m starts from identity. m is updated in
// place and its new value returned.
func (c *PerspectiveCamera) SetPerspective(m *math.Mat4) math.Mat4 {
	if m == nil {
		identity := math.Mat4Identity()
		m = &identity
	}
	m.Translate(c.Position.Vec3()).
		Rotate(c.angle, math.Vec3Up).
		Perspective(c.FOV, c.Aspect, c.Near, c.Far)
	return *m
}

// BuildScale is the geometry scale the renderer uses for this camera.
func (c *PerspectiveCamera) BuildScale() float32 {
	return c.Position.Z / 500.0
}
