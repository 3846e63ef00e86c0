package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRGB(t *testing.T) {
	c := GetRGB(0xFF8000)
	assert.InDelta(t, 1.0, c.R, 1e-6)
	assert.InDelta(t, 0.502, c.G, 1e-3)
	assert.InDelta(t, 0.0, c.B, 1e-6)
	assert.Equal(t, float32(1), c.A)
}

func TestGetRGBExtremes(t *testing.T) {
	assert.Equal(t, ColorWhite, GetRGB(0xffffff))
	assert.Equal(t, ColorBlack, GetRGB(0))
	assert.Equal(t, Color{R: 1, A: 1}, GetRGB(0xff0000))
	// Only the low 24 bits carry color.
	assert.Equal(t, GetRGB(0x00ff00), GetRGB(0xff00ff00))
}

func TestColorArray(t *testing.T) {
	assert.Equal(t, [4]float32{1, 0, 0, 1}, GetRGB(0xff0000).Array())
}
