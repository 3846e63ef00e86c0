package scene

import "one-engine/core"

// Material supplies the flat surface color of a mesh.
type Material interface {
	GetColor() core.Color
}

// MaterialProps configures a MeshBasicMaterial.
type MaterialProps struct {
	// Color is packed 0xRRGGBB. Zero means unset and resolves to white.
	Color uint32
}

// MeshBasicMaterial is an unlit single-color material. It is immutable
// once constructed.
type MeshBasicMaterial struct {
	props MaterialProps
}

func NewMeshBasicMaterial(props MaterialProps) *MeshBasicMaterial {
	return &MeshBasicMaterial{props: props}
}

// GetColor returns the material color, white when none was given.
func (m *MeshBasicMaterial) GetColor() core.Color {
	if m.props.Color == 0 {
		return core.ColorWhite
	}
	return core.GetRGB(m.props.Color)
}
