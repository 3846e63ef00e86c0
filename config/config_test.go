package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, Color(0xff0000), cfg.Scene.MaterialColor)
	assert.Equal(t, float32(100), cfg.Scene.LineLength)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[window]
width = 800
height = 600

[camera]
fov = 60.0
z = 1000.0
angle = 15.0

[scene]
material_color = "#00ff80"
light_color = "0x808080"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "one-engine", cfg.Window.Title, "unset keys keep defaults")
	assert.Equal(t, float32(60), cfg.Camera.FOV)
	assert.Equal(t, float32(1000), cfg.Camera.Z)
	assert.Equal(t, float32(15), cfg.Camera.Angle)
	assert.Equal(t, float32(10000), cfg.Camera.Far)
	assert.Equal(t, Color(0x00ff80), cfg.Scene.MaterialColor)
	assert.Equal(t, Color(0x808080), cfg.Scene.LightColor)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeConfig(t, "[window\nwidth = 3\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadBadColor(t *testing.T) {
	path := writeConfig(t, "[scene]\nmaterial_color = \"red\"\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Window.Width = 0
	cfg.Camera.Near = 0
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window size")
	assert.Contains(t, err.Error(), "near")
	assert.Contains(t, err.Error(), "log_level")
}

func TestColorText(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("#ABCDEF")))
	assert.Equal(t, Color(0xabcdef), c)

	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#abcdef", string(text))

	assert.Error(t, c.UnmarshalText([]byte("#1234567")))
	assert.Error(t, c.UnmarshalText([]byte("#")))
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Scene.MaterialColor = 0x123456

	data, err := cfg.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(data), "#123456")

	path := writeConfig(t, string(data))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
