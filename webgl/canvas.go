//go:build js && wasm

package webgl

import (
	"syscall/js"

	"one-engine/gpu"
	"one-engine/internal/logging"
)

// Canvas creates a <canvas> element and acquires its WebGL context.
type Canvas struct {
	Element js.Value
	ctx     *Context
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

// CreateSurface sizes the canvas, creating it on first use. It returns a
// nil context when the browser offers neither "webgl" nor
// "experimental-webgl".
func (c *Canvas) CreateSurface(width, height int) (gpu.Context, error) {
	if c.Element.IsUndefined() {
		c.Element = js.Global().Get("document").Call("createElement", "canvas")
	}
	c.Element.Set("width", width)
	c.Element.Set("height", height)

	if c.ctx != nil {
		return c.ctx, nil
	}

	gl := c.Element.Call("getContext", "webgl")
	if gl.IsNull() || gl.IsUndefined() {
		gl = c.Element.Call("getContext", "experimental-webgl")
	}
	if gl.IsNull() || gl.IsUndefined() {
		return nil, nil
	}
	c.ctx = newContext(gl)
	logging.Logger().Info("webgl: context acquired", "width", width, "height", height)
	return c.ctx, nil
}

// AppendTo attaches the canvas to parent, typically document.body.
func (c *Canvas) AppendTo(parent js.Value) {
	parent.Call("appendChild", c.Element)
}
