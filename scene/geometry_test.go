package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineGeometryUnbuilt(t *testing.T) {
	g := NewLineGeometry(100)
	assert.False(t, g.Built())
	positions, uvs, indices := g.Buffers()
	assert.Nil(t, positions)
	assert.Nil(t, uvs)
	assert.Nil(t, indices)
}

func TestLineGeometryBuild(t *testing.T) {
	for _, tc := range []struct {
		length, scale float32
	}{
		{100, 1},
		{100, 0.25},
		{2, 40},
		{0.5, 1e-3},
	} {
		g := NewLineGeometry(tc.length)
		g.Build(tc.scale)

		require.True(t, g.Built())
		require.Len(t, g.Positions, 12)
		require.Equal(t, 6, g.IndexCount())

		seen := map[[3]float32]bool{}
		for i := 0; i < 4; i++ {
			v := g.Vertex(i)
			seen[[3]float32{v.X, v.Y, v.Z}] = true
			assert.Equal(t, tc.length/2, abs32(v.X))
			assert.Equal(t, tc.scale/2, abs32(v.Y))
			assert.Zero(t, v.Z)
		}
		assert.Len(t, seen, 4, "positions must be unique")

		for _, idx := range g.Indices {
			assert.Less(t, idx, uint16(4))
		}
		for tri := 0; tri < 2; tri++ {
			a := g.Vertex(int(g.Indices[tri*3]))
			b := g.Vertex(int(g.Indices[tri*3+1]))
			c := g.Vertex(int(g.Indices[tri*3+2]))
			area := b.Sub(a).Cross(c.Sub(a)).Length() / 2
			assert.Greater(t, area, float32(0), "triangle %d is degenerate", tri)
		}
	}
}

func TestLineGeometryLayout(t *testing.T) {
	g := NewLineGeometry(100)
	g.Build(2)

	assert.Equal(t, []float32{
		-50, 1, 0,
		50, 1, 0,
		-50, -1, 0,
		50, -1, 0,
	}, g.Positions)
	assert.Equal(t, []uint16{0, 1, 2, 2, 1, 3}, g.Indices)
	assert.Equal(t, []float32{0, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 1}, g.UVs)
}

func TestLineGeometryRebuild(t *testing.T) {
	g := NewLineGeometry(10)
	g.Build(1)
	g.Build(4)
	assert.Equal(t, float32(2), g.Vertex(0).Y)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
