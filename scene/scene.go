package scene

import "one-engine/internal/logging"

// Object types recognised by Scene.Add.
const (
	TypeLight = "light"
	TypeMesh  = "mesh"
)

// Object is anything that can be added to a Scene. Type reports the tag the
// scene uses to file it.
type Object interface {
	Type() string
}

// Scene holds the lights and meshes to render, each in insertion order.
type Scene struct {
	Lights []Light
	Meshes []*Mesh
}

func NewScene() *Scene {
	return &Scene{
		Lights: make([]Light, 0),
		Meshes: make([]*Mesh, 0),
	}
}

// Add files obj under Lights or Meshes according to its Type. Objects with
// any other type, or whose tag does not match their Go type, are dropped.
func (s *Scene) Add(obj Object) {
	if obj == nil {
		return
	}
	switch obj.Type() {
	case TypeLight:
		if light, ok := obj.(Light); ok {
			s.Lights = append(s.Lights, light)
			return
		}
	case TypeMesh:
		if mesh, ok := obj.(*Mesh); ok {
			s.Meshes = append(s.Meshes, mesh)
			return
		}
	}
	logging.Logger().Debug("scene: dropping object", "type", obj.Type())
}

// FirstLight returns the light that drives shading, or nil.
func (s *Scene) FirstLight() Light {
	if len(s.Lights) == 0 {
		return nil
	}
	return s.Lights[0]
}
