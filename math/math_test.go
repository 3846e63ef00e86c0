package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-4

func approxMat(t *testing.T, name string, got Mat4, want [16]float32) {
	t.Helper()
	flat := got.Flatten()
	for i := range flat {
		if math.Abs(float64(flat[i]-want[i])) > tolerance {
			t.Errorf("%s: element %d expected %v, got %v", name, i, want[i], flat[i])
		}
	}
}

func approxVec(a, b Vec3) bool {
	return a.Sub(b).Length() <= tolerance
}

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	if got, want := v2.Sub(v1), NewVec3(3, 3, 3); got != want {
		t.Errorf("Sub: expected %v, got %v", want, got)
	}
	if got, want := v1.Scale(2), NewVec3(2, 4, 6); got != want {
		t.Errorf("Scale: expected %v, got %v", want, got)
	}
	if got := v1.Dot(v2); got != 32 {
		t.Errorf("Dot: expected 32, got %v", got)
	}

	// +X cross +Y is +Z in a right-handed system
	if got, want := NewVec3(1, 0, 0).Cross(Vec3Up), NewVec3(0, 0, 1); got != want {
		t.Errorf("Cross: expected %v, got %v", want, got)
	}
}

func TestVec3Unit(t *testing.T) {
	if got, want := NewVec3(3, 0, 4).Unit(), NewVec3(0.6, 0, 0.8); !approxVec(got, want) {
		t.Errorf("Unit: expected %v, got %v", want, got)
	}
	if Vec3Zero.Unit() != Vec3Zero {
		t.Errorf("Unit: zero vector should stay zero")
	}
}

func TestVec4Project(t *testing.T) {
	if got, want := NewVec4(2, 4, 6, 2).Project(), NewVec3(1, 2, 3); got != want {
		t.Errorf("Project: expected %v, got %v", want, got)
	}
	if got, want := NewVec4(2, 4, 6, 0).Project(), NewVec3(2, 4, 6); got != want {
		t.Errorf("Project: w=0 expected %v, got %v", want, got)
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	if m[3][0] != 1 || m[3][1] != 2 || m[3][2] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[3][0], m[3][1], m[3][2])
	}
	if got := m.TransformPoint(Vec3Zero); got != translation {
		t.Errorf("Translation: expected %v, got %v", translation, got)
	}

	approxMat(t, "Translation vs mgl32", m, mgl32.Translate3D(1, 2, 3))
}

func TestMat4AxisAngle(t *testing.T) {
	angle := float32(math.Pi / 3)
	approxMat(t, "AxisAngle Y vs mgl32", Mat4AxisAngle(Vec3Up, angle), mgl32.HomogRotate3DY(angle))

	// The axis does not need to be unit length.
	approxMat(t, "AxisAngle scaled axis", Mat4AxisAngle(NewVec3(0, 5, 0), angle), mgl32.HomogRotate3DY(angle))

	// 90 degrees around Y takes +X to -Z.
	got := Mat4AxisAngle(Vec3Up, math.Pi/2).TransformPoint(NewVec3(1, 0, 0))
	if want := NewVec3(0, 0, -1); !approxVec(got, want) {
		t.Errorf("AxisAngle: expected %v, got %v", want, got)
	}
}

func TestMat4Perspective(t *testing.T) {
	fov := float32(math.Pi / 4)
	aspect := float32(16.0 / 9.0)
	near := float32(0.1)
	far := float32(100.0)

	m := Mat4Perspective(fov, aspect, near, far)
	approxMat(t, "Perspective vs mgl32", m, mgl32.Perspective(fov, aspect, near, far))
}

func TestMat4ChainedTransforms(t *testing.T) {
	m := Mat4Identity()
	m.Translate(NewVec3(1, -2, -30)).Rotate(30, Vec3Up).Perspective(45, 1.5, 1, 1000)

	want := mgl32.Perspective(mgl32.DegToRad(45), 1.5, 1, 1000).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(30))).
		Mul4(mgl32.Translate3D(1, -2, -30))
	approxMat(t, "Translate/Rotate/Perspective", m, want)
}

func TestMat4Inverse(t *testing.T) {
	m := Mat4Translation(NewVec3(4, 5, 6)).Mul(Mat4AxisAngle(Vec3Up, 0.7))
	inv := m.Inverse()

	product := m.Mul(inv)
	approxMat(t, "M * M^-1", product, Mat4Identity().Flatten())

	col := mgl32.Mat4(m.Flatten())
	approxMat(t, "Inverse vs mgl32", inv, col.Inv())

	singular := Mat4Zero()
	if singular.Inverse() != Mat4Identity() {
		t.Errorf("Inverse: singular matrix should fall back to identity")
	}
}

func TestNormalMatrixOfIdentity(t *testing.T) {
	if Mat4Identity().NormalMatrix() != Mat4Identity() {
		t.Errorf("NormalMatrix: expected identity for identity model")
	}
}

func TestRadians(t *testing.T) {
	if math.Abs(float64(Radians(180))-math.Pi) > tolerance {
		t.Errorf("Radians: expected pi, got %v", Radians(180))
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4Identity()
	m2 := Mat4AxisAngle(Vec3Up, 0.5)

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}
