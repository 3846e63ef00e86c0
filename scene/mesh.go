package scene

// Mesh pairs a Geometry with the Material it is drawn with. The mesh owns
// both; they are not shared between meshes.
type Mesh struct {
	Geometry Geometry
	Material Material
}

func NewMesh(geometry Geometry, material Material) *Mesh {
	return &Mesh{
		Geometry: geometry,
		Material: material,
	}
}

func (m *Mesh) Type() string { return TypeMesh }
