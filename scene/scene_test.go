package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"one-engine/core"
)

type taggedObject string

func (o taggedObject) Type() string { return string(o) }

func TestPositionSet(t *testing.T) {
	for _, z := range []float32{0, 5, -5, 123.5} {
		p := NewPosition(3, z)
		assert.Equal(t, float32(3), p.X)
		assert.Equal(t, float32(0), p.Y)
		assert.LessOrEqual(t, p.Z, float32(0))
		if z < 0 {
			assert.Equal(t, z, p.Z)
		} else {
			assert.Equal(t, -z, p.Z)
		}
	}

	var p Position
	p.Y = 2
	p.Set(-1, 9)
	assert.Equal(t, Position{X: -1, Y: 2, Z: -9}, p)
}

func TestSceneAddLight(t *testing.T) {
	s := NewScene()
	s.Add(NewDirectionalLight(0xffffff))

	assert.Len(t, s.Lights, 1)
	assert.Empty(t, s.Meshes)
	assert.Equal(t, core.ColorWhite, s.FirstLight().GetColor())
}

func TestSceneAddMesh(t *testing.T) {
	s := NewScene()
	mesh := NewMesh(NewLineGeometry(100), NewMeshBasicMaterial(MaterialProps{Color: 0xff0000}))
	s.Add(mesh)

	require.Len(t, s.Meshes, 1)
	assert.Same(t, mesh, s.Meshes[0])
	assert.Empty(t, s.Lights)
	assert.Nil(t, s.FirstLight())
}

func TestSceneAddKeepsOrder(t *testing.T) {
	s := NewScene()
	first := NewDirectionalLight(0x111111)
	second := NewDirectionalLight(0x222222)
	s.Add(first)
	s.Add(second)

	require.Len(t, s.Lights, 2)
	assert.Same(t, first, s.Lights[0])
	assert.Same(t, second, s.Lights[1])
}

func TestSceneAddDropsUnknown(t *testing.T) {
	s := NewScene()
	s.Add(taggedObject("camera"))
	s.Add(nil)
	// Tagged as a light or mesh but not one.
	s.Add(taggedObject(TypeLight))
	s.Add(taggedObject(TypeMesh))

	assert.Empty(t, s.Lights)
	assert.Empty(t, s.Meshes)
}

func TestMaterialColor(t *testing.T) {
	red := NewMeshBasicMaterial(MaterialProps{Color: 0xff0000})
	assert.Equal(t, core.Color{R: 1, A: 1}, red.GetColor())

	unset := NewMeshBasicMaterial(MaterialProps{})
	assert.Equal(t, core.ColorWhite, unset.GetColor())
}

func TestDirectionalLight(t *testing.T) {
	l := NewDirectionalLight(0x0000ff)
	l.Position.Set(1, 2)

	assert.Equal(t, TypeLight, l.Type())
	assert.Equal(t, core.Color{B: 1, A: 1}, l.GetColor())
	assert.Equal(t, Position{X: 1, Z: -2}, l.GetPosition())
}
