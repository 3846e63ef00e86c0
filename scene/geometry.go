package scene

import "one-engine/math"

// Geometry produces the vertex streams for a mesh. Build is called once per
// frame before the buffers are read.
type Geometry interface {
	Build(scale float32)
	Buffers() (positions, uvs []float32, indices []uint16)
}

// LineGeometry is a quad Length wide, centered on the origin in the XY plane.
// Its height is the scale passed to Build, so it reads as a line from far away
// and widens as the camera depth grows.
type LineGeometry struct {
	Length float32

	Positions []float32 // 4 vertices, xyz
	UVs       []float32
	Indices   []uint16 // 2 triangles
}

func NewLineGeometry(length float32) *LineGeometry {
	return &LineGeometry{Length: length}
}

// Build regenerates the quad with height scale.
func (g *LineGeometry) Build(scale float32) {
	hl := g.Length / 2
	hs := scale / 2
	g.Positions = []float32{
		-hl, hs, 0,
		hl, hs, 0,
		-hl, -hs, 0,
		hl, -hs, 0,
	}
	g.UVs = []float32{
		0, 0, 1, 0, 0, 1,
		0, 1, 1, 0, 1, 1,
	}
	g.Indices = []uint16{
		0, 1, 2,
		2, 1, 3,
	}
}

func (g *LineGeometry) Buffers() (positions, uvs []float32, indices []uint16) {
	return g.Positions, g.UVs, g.Indices
}

// Built reports whether Build has run.
func (g *LineGeometry) Built() bool {
	return g.Positions != nil
}

func (g *LineGeometry) IndexCount() int {
	return len(g.Indices)
}

// Vertex returns position i of the last build.
func (g *LineGeometry) Vertex(i int) math.Vec3 {
	return math.Vec3{X: g.Positions[i*3], Y: g.Positions[i*3+1], Z: g.Positions[i*3+2]}
}
