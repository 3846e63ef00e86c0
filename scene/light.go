package scene

import "one-engine/core"

// Light is a scene object that contributes a color and a direction.
type Light interface {
	Object
	GetColor() core.Color
	GetPosition() Position
}

// DirectionalLight shades flatly from the direction of its position.
type DirectionalLight struct {
	Color    uint32 // packed 0xRRGGBB
	Position Position
}

func NewDirectionalLight(color uint32) *DirectionalLight {
	return &DirectionalLight{Color: color}
}

func (l *DirectionalLight) Type() string { return TypeLight }

func (l *DirectionalLight) GetColor() core.Color {
	return core.GetRGB(l.Color)
}

func (l *DirectionalLight) GetPosition() Position {
	return l.Position
}
