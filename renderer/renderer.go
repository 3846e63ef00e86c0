// Package renderer draws a single-mesh scene through a gpu.Context.
package renderer

import (
	"fmt"
	"log/slog"
	"slices"

	"one-engine/core"
	"one-engine/gpu"
	"one-engine/internal/logging"
	"one-engine/math"
	"one-engine/scene"
)

// Host creates the drawing surface and returns its current GPU context. A
// nil context without an error means the environment has no GPU support.
type Host interface {
	CreateSurface(width, height int) (gpu.Context, error)
}

// State is the renderer lifecycle stage.
type State int

const (
	StateUninitialized State = iota
	StateSized
	// StateRendering is entered once a frame has been drawn or cleared.
	StateRendering
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSized:
		return "sized"
	case StateRendering:
		return "rendering"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// SetLogger configures the logger for the renderer and the scene package.
// By default nothing is logged. Pass nil to silence it again.
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// gpuMesh holds the buffer objects uploaded for a mesh.
type gpuMesh struct {
	vbuffers   [3]gpu.Buffer // position, normal, uv
	ibuffer    gpu.Buffer
	numIndices int

	// Uploaded data, compared against each rebuild to skip re-uploads.
	positions []float32
	uvs       []float32
	indices   []uint16
}

// Renderer draws a scene with exactly one mesh. The shader program is
// compiled on the first Render and reused; mesh buffers are re-uploaded
// only when the rebuilt geometry differs from what the GPU already holds.
type Renderer struct {
	host  Host
	ctx   gpu.Context
	state State

	width, height int

	program   *program
	gpuMeshes map[*scene.Mesh]*gpuMesh
}

func NewRenderer(host Host) *Renderer {
	return &Renderer{
		host:      host,
		gpuMeshes: make(map[*scene.Mesh]*gpuMesh),
	}
}

// SetSize creates the drawing surface and acquires its GPU context. It fails
// with ErrUnsupported when the host has no GPU context to give.
func (r *Renderer) SetSize(width, height int) error {
	ctx, err := r.host.CreateSurface(width, height)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	if ctx == nil {
		return ErrUnsupported
	}

	if r.ctx != nil && r.ctx != ctx {
		// A new context cannot see objects from the old one.
		r.program = nil
		clear(r.gpuMeshes)
	}
	r.ctx = ctx
	r.width, r.height = width, height
	r.state = StateSized
	ctx.Viewport(0, 0, width, height)

	logging.Logger().Info("renderer: surface created", "width", width, "height", height)
	return nil
}

// Resize updates the viewport of an existing surface.
func (r *Renderer) Resize(width, height int) {
	if r.ctx == nil || width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	r.ctx.Viewport(0, 0, width, height)
}

func (r *Renderer) State() State {
	return r.state
}

func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Render draws one frame of s as seen from camera.
func (r *Renderer) Render(s *scene.Scene, camera *scene.PerspectiveCamera) error {
	if r.ctx == nil {
		return ErrNotSized
	}
	if len(s.Meshes) > 1 {
		return fmt.Errorf("%w: got %d", ErrMultipleMeshes, len(s.Meshes))
	}

	var mesh *scene.Mesh
	var gm *gpuMesh
	if len(s.Meshes) == 1 {
		mesh = s.Meshes[0]
		mesh.Geometry.Build(camera.BuildScale())
		gm = r.ensureUploaded(mesh)
		r.initTexture(mesh)
		if err := r.ensureProgram(); err != nil {
			return err
		}
	}
	r.releaseStale(mesh)
	r.state = StateRendering

	ctx := r.ctx
	ctx.ClearColor(0, 0, 0, 1)
	// GL clamps the clear depth to [0, 1].
	ctx.ClearDepth(camera.Far)
	ctx.Clear(gpu.ColorBufferBit | gpu.DepthBufferBit)
	ctx.Enable(gpu.DepthTest)

	if gm == nil {
		ctx.Flush()
		return nil
	}
	ctx.UseProgram(r.program.handle)

	lightVec := math.Vec4{}
	lightColor := core.GetRGB(0)
	if light := s.FirstLight(); light != nil {
		p := light.GetPosition()
		lightVec = math.NewVec4(p.X, p.Y, -p.Z, 0)
		lightColor = light.GetColor()
	}

	model := math.Mat4Identity()
	mvp := model
	camera.SetPerspective(&mvp)
	normal := model.NormalMatrix()

	materialColor := mesh.Material.GetColor()

	u := r.program.uniforms
	ctx.UniformMatrix4fv(u[uniformMVP], mvp.Flatten())
	ctx.UniformMatrix4fv(u[uniformNormal], normal.Flatten())
	ctx.Uniform4fv(u[uniformLightVec], lightVec.Array())
	ctx.Uniform4fv(u[uniformLightColor], lightColor.Array())
	ctx.Uniform4fv(u[uniformMaterialColor], materialColor.Array())

	strides := [3]int{3, 3, 2}
	for i, size := range strides {
		ctx.EnableVertexAttribArray(uint32(i))
		ctx.BindBuffer(gpu.ArrayBuffer, gm.vbuffers[i])
		ctx.VertexAttribPointer(uint32(i), size, gpu.Float, false, 0, 0)
	}

	ctx.BindBuffer(gpu.ElementArrayBuffer, gm.ibuffer)
	ctx.DrawElements(gpu.Triangles, gm.numIndices, gpu.UnsignedShort, 0)
	ctx.Flush()
	return nil
}

// Destroy releases every GPU object the renderer created.
func (r *Renderer) Destroy() {
	if r.ctx == nil {
		return
	}
	for mesh := range r.gpuMeshes {
		r.releaseMesh(mesh)
	}
	if r.program != nil {
		r.ctx.DeleteProgram(r.program.handle)
		r.program = nil
	}
	r.state = StateSized
}

func (r *Renderer) ensureProgram() error {
	if r.program != nil {
		return nil
	}
	p, err := newProgram(r.ctx, vertSrc, fragSrc)
	if err != nil {
		return fmt.Errorf("shader program: %w", err)
	}
	r.program = p
	logging.Logger().Debug("renderer: program linked", "program", p.handle)
	return nil
}

// ensureUploaded uploads the mesh's current geometry unless the GPU already
// holds identical data. Replaced buffers are deleted.
func (r *Renderer) ensureUploaded(mesh *scene.Mesh) *gpuMesh {
	positions, uvs, indices := mesh.Geometry.Buffers()
	if gm, ok := r.gpuMeshes[mesh]; ok {
		if slices.Equal(gm.positions, positions) &&
			slices.Equal(gm.uvs, uvs) &&
			slices.Equal(gm.indices, indices) {
			return gm
		}
		r.releaseMesh(mesh)
	}

	ctx := r.ctx
	gm := &gpuMesh{
		numIndices: len(indices),
		positions:  slices.Clone(positions),
		uvs:        slices.Clone(uvs),
		indices:    slices.Clone(indices),
	}

	// The normal stream reuses the positions until real normals exist.
	streams := [3][]float32{positions, positions, uvs}
	for i, data := range streams {
		gm.vbuffers[i] = ctx.CreateBuffer()
		ctx.BindBuffer(gpu.ArrayBuffer, gm.vbuffers[i])
		ctx.BufferDataFloat32(gpu.ArrayBuffer, data, gpu.StaticDraw)
	}
	ctx.BindBuffer(gpu.ArrayBuffer, 0)

	gm.ibuffer = ctx.CreateBuffer()
	ctx.BindBuffer(gpu.ElementArrayBuffer, gm.ibuffer)
	ctx.BufferDataUint16(gpu.ElementArrayBuffer, indices, gpu.StaticDraw)
	ctx.BindBuffer(gpu.ElementArrayBuffer, 0)

	r.gpuMeshes[mesh] = gm
	logging.Logger().Debug("renderer: mesh uploaded", "vertices", len(positions)/3, "indices", len(indices))
	return gm
}

// initTexture is where a material texture would be bound. The fragment
// shader does not sample one, so there is nothing to do.
func (r *Renderer) initTexture(*scene.Mesh) {}

func (r *Renderer) releaseMesh(mesh *scene.Mesh) {
	gm, ok := r.gpuMeshes[mesh]
	if !ok {
		return
	}
	for _, b := range gm.vbuffers {
		r.ctx.DeleteBuffer(b)
	}
	r.ctx.DeleteBuffer(gm.ibuffer)
	delete(r.gpuMeshes, mesh)
}

// releaseStale frees buffers of meshes other than keep.
func (r *Renderer) releaseStale(keep *scene.Mesh) {
	for mesh := range r.gpuMeshes {
		if mesh != keep {
			r.releaseMesh(mesh)
		}
	}
}
