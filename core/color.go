package core

// Color is a normalized RGBA color.
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// GetRGB unpacks a 24-bit 0xRRGGBB value into a fully opaque Color.
// Bits above the low 24 are ignored.
func GetRGB(packed uint32) Color {
	return Color{
		R: float32((packed>>16)&0xff) / 0xff,
		G: float32((packed>>8)&0xff) / 0xff,
		B: float32(packed&0xff) / 0xff,
		A: 1,
	}
}

// Array returns the channels in r, g, b, a order for uniform upload.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
