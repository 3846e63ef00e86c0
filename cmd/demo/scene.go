package main

import (
	"one-engine/config"
	"one-engine/scene"
)

// buildScene assembles the tutorial scene: one directional light and one
// line quad, viewed by a camera placed from cfg.
func buildScene(cfg config.Config, aspect float32) (*scene.Scene, *scene.PerspectiveCamera) {
	s := scene.NewScene()

	light := scene.NewDirectionalLight(uint32(cfg.Scene.LightColor))
	light.Position.Set(cfg.Scene.LightX, cfg.Scene.LightZ)
	s.Add(light)

	s.Add(scene.NewMesh(
		scene.NewLineGeometry(cfg.Scene.LineLength),
		scene.NewMeshBasicMaterial(scene.MaterialProps{Color: uint32(cfg.Scene.MaterialColor)}),
	))

	camera := scene.NewPerspectiveCamera(cfg.Camera.FOV, aspect, cfg.Camera.Near, cfg.Camera.Far)
	camera.Position.Set(cfg.Camera.X, cfg.Camera.Z)
	camera.Rotate(cfg.Camera.Angle)
	return s, camera
}
