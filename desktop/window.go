//go:build !js

// Package desktop hosts the renderer in a GLFW window with an OpenGL 2.1
// context.
package desktop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"one-engine/gpu"
	"one-engine/internal/logging"
	"one-engine/opengl"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	config WindowConfig
	ctx    *opengl.Context
}

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1280,
		Height:    720,
		Title:     "one-engine",
		Resizable: true,
		VSync:     true,
	}
}

// NewWindow records the configuration. The native window and its GL
// context are created by CreateSurface, when the renderer is sized.
func NewWindow(config WindowConfig) *Window {
	return &Window{
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
		config: config,
	}
}

// CreateSurface opens the window at the given size, makes its GL context
// current and returns it. Calling it again resizes the existing window and
// returns the same context.
func (w *Window) CreateSurface(width, height int) (gpu.Context, error) {
	if w.Handle != nil {
		w.Handle.SetSize(width, height)
		w.Width, w.Height = width, height
		return w.ctx, nil
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, boolToInt(w.config.Resizable))

	handle, err := glfw.CreateWindow(width, height, w.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	if w.config.VSync {
		glfw.SwapInterval(1)
	}

	ctx, err := opengl.NewContext()
	if err != nil {
		handle.Destroy()
		glfw.Terminate()
		return nil, err
	}

	w.Handle = handle
	w.Width, w.Height = width, height
	w.ctx = ctx

	handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.Width = width
		w.Height = height
	})

	logging.Logger().Info("desktop: window created", "gl_version", ctx.Version(), "width", width, "height", height)
	return ctx, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle == nil || w.Handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) Destroy() {
	if w.Handle == nil {
		return
	}
	w.Handle.Destroy()
	w.Handle = nil
	glfw.Terminate()
}

func (w *Window) IsKeyPressed(key int) bool {
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

const (
	KeyEscape = int(glfw.KeyEscape)
	KeyRight  = int(glfw.KeyRight)
	KeyLeft   = int(glfw.KeyLeft)
	KeyDown   = int(glfw.KeyDown)
	KeyUp     = int(glfw.KeyUp)
)
