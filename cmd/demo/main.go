//go:build !js

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"one-engine/config"
	"one-engine/desktop"
	"one-engine/renderer"
	"one-engine/scene"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("demo", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "TOML config file")
	width := flags.Int("width", 0, "window width, overrides the config")
	height := flags.Int("height", 0, "window height, overrides the config")
	export := flags.String("export", "", "write the built quad to this .glb file and exit")
	frames := flags.Int("frames", 0, "render this many frames then exit (0 runs until closed)")
	logLevel := flags.String("log-level", "", "debug, info, warn or error, overrides the config")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	renderer.SetLogger(logger)

	s, camera := buildScene(cfg, float32(cfg.Window.Width)/float32(cfg.Window.Height))

	if *export != "" {
		mesh := s.Meshes[0]
		mesh.Geometry.Build(camera.BuildScale())
		if err := scene.ExportGLTF(*export, mesh); err != nil {
			return err
		}
		logger.Info("exported quad", "path", *export)
		return nil
	}

	windowConfig := desktop.DefaultWindowConfig()
	windowConfig.Width = cfg.Window.Width
	windowConfig.Height = cfg.Window.Height
	windowConfig.Title = cfg.Window.Title
	windowConfig.VSync = cfg.Window.VSync

	window := desktop.NewWindow(windowConfig)
	defer window.Destroy()

	r := renderer.NewRenderer(window)
	if err := r.SetSize(cfg.Window.Width, cfg.Window.Height); err != nil {
		return err
	}
	defer r.Destroy()

	return loop(window, r, s, camera, *frames, logger)
}

// loop renders until the window closes, Escape is pressed or maxFrames
// frames have been drawn. Left/Right turn the camera, Up/Down move it.
func loop(window *desktop.Window, r *renderer.Renderer, s *scene.Scene, camera *scene.PerspectiveCamera, maxFrames int, logger *slog.Logger) error {
	const (
		turnSpeed = 45.0  // degrees per second
		moveSpeed = 250.0 // units per second
	)

	title := window.Title
	angle := camera.Angle()
	frameCount := 0
	total := 0
	lastTime := time.Now()
	lastFPS := lastTime

	for !window.ShouldClose() {
		window.PollEvents()
		if window.IsKeyPressed(desktop.KeyEscape) {
			break
		}

		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if window.IsKeyPressed(desktop.KeyLeft) {
			angle -= turnSpeed * dt
		}
		if window.IsKeyPressed(desktop.KeyRight) {
			angle += turnSpeed * dt
		}
		camera.Rotate(angle)

		depth := -camera.Position.Z
		if window.IsKeyPressed(desktop.KeyUp) {
			depth -= moveSpeed * dt
		}
		if window.IsKeyPressed(desktop.KeyDown) {
			depth += moveSpeed * dt
		}
		camera.Position.Set(camera.Position.X, max(depth, camera.Near))

		// Minimized windows report a zero framebuffer.
		fbw, fbh := window.GetFramebufferSize()
		if w, h := r.Size(); fbw > 0 && fbh > 0 && (fbw != w || fbh != h) {
			r.Resize(fbw, fbh)
			camera.UpdateAspectRatio(float32(fbw), float32(fbh))
		}

		if err := r.Render(s, camera); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		window.SwapBuffers()

		frameCount++
		total++
		if now.Sub(lastFPS) >= time.Second {
			window.SetTitle(fmt.Sprintf("%s - FPS: %d", title, frameCount))
			logger.Debug("frame stats", "fps", frameCount, "angle", angle, "depth", depth)
			frameCount = 0
			lastFPS = now
		}
		if maxFrames > 0 && total >= maxFrames {
			break
		}
	}
	return nil
}
