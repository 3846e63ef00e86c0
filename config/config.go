// Package config loads the demo settings from TOML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config describes the window, camera and the single-quad scene.
type Config struct {
	Window   Window `toml:"window"`
	Camera   Camera `toml:"camera"`
	Scene    Scene  `toml:"scene"`
	LogLevel string `toml:"log_level"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

// Camera angles are in degrees. Z is the distance in front of the scene;
// its sign is ignored.
type Camera struct {
	FOV   float32 `toml:"fov"`
	Near  float32 `toml:"near"`
	Far   float32 `toml:"far"`
	X     float32 `toml:"x"`
	Z     float32 `toml:"z"`
	Angle float32 `toml:"angle"`
}

// Colors are "#rrggbb" or "0xrrggbb" strings.
type Scene struct {
	LightColor    Color   `toml:"light_color"`
	LightX        float32 `toml:"light_x"`
	LightZ        float32 `toml:"light_z"`
	MaterialColor Color   `toml:"material_color"`
	LineLength    float32 `toml:"line_length"`
}

// Color is a packed 0xRRGGBB value read from a hex string.
type Color uint32

func (c Color) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%06x", uint32(c))), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	switch {
	case strings.HasPrefix(s, "#"):
		s = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) == 0 || len(s) > 6 {
		return fmt.Errorf("invalid color %q", string(text))
	}
	*c = Color(v)
	return nil
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "one-engine",
			VSync:  true,
		},
		Camera: Camera{
			FOV:  45,
			Near: 1,
			Far:  10000,
			Z:    500,
		},
		Scene: Scene{
			LightColor:    0xffffff,
			LightZ:        1,
			MaterialColor: 0xff0000,
			LineLength:    100,
		},
		LogLevel: "info",
	}
}

// Load reads path over the defaults, so a file only needs the keys it
// changes.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return cfg, fmt.Errorf("parse config %q at %d:%d: %w", path, row, col, err)
		}
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the renderer cannot draw with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %v must be in (0, 180)", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera near %v / far %v must satisfy 0 < near < far", c.Camera.Near, c.Camera.Far))
	}
	if c.Scene.LineLength <= 0 {
		errs = append(errs, fmt.Errorf("line_length %v must be positive", c.Scene.LineLength))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Encode writes c as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
