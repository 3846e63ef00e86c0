//go:build js && wasm

// Command wasm renders the tutorial scene into a WebGL canvas appended to
// the page body.
package main

import (
	"fmt"
	"syscall/js"

	"one-engine/renderer"
	"one-engine/scene"
	"one-engine/webgl"
)

const (
	width  = 800
	height = 600
)

func main() {
	canvas := webgl.NewCanvas()
	r := renderer.NewRenderer(canvas)
	if err := r.SetSize(width, height); err != nil {
		js.Global().Get("console").Call("error", fmt.Sprintf("one-engine: %v", err))
		return
	}
	canvas.AppendTo(js.Global().Get("document").Get("body"))

	s := scene.NewScene()
	s.Add(scene.NewDirectionalLight(0xffffff))
	s.Add(scene.NewMesh(
		scene.NewLineGeometry(100),
		scene.NewMeshBasicMaterial(scene.MaterialProps{Color: 0xff0000}),
	))

	camera := scene.NewPerspectiveCamera(45, float32(width)/float32(height), 1, 10000)
	camera.Position.Set(0, 500)

	var frame js.Func
	angle := float32(0)
	frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		angle += 0.5
		camera.Rotate(angle)
		if err := r.Render(s, camera); err != nil {
			js.Global().Get("console").Call("error", fmt.Sprintf("one-engine: %v", err))
			frame.Release()
			return nil
		}
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)

	select {}
}
