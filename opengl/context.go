//go:build !js

// Package opengl implements gpu.Context on desktop OpenGL 2.1, whose shading
// language accepts the same shader sources as WebGL 1.
package opengl

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v2.1/gl"

	"one-engine/gpu"
)

// Context is the OpenGL backend. Create it with NewContext after the window's
// GL context has been made current on the calling thread.
type Context struct {
	version string
}

var _ gpu.Context = (*Context)(nil)

// NewContext loads the GL function pointers for the current context.
func NewContext() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	return &Context{version: gl.GoStr(gl.GetString(gl.VERSION))}, nil
}

// Version is the driver's GL_VERSION string.
func (c *Context) Version() string {
	return c.version
}

func (c *Context) CreateBuffer() gpu.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return gpu.Buffer(b)
}

func (c *Context) DeleteBuffer(b gpu.Buffer) {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}

func (c *Context) BindBuffer(target gpu.Enum, b gpu.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b))
}

func (c *Context) BufferDataFloat32(target gpu.Enum, data []float32, usage gpu.Enum) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data)*4, gl.Ptr(data), uint32(usage))
}

func (c *Context) BufferDataUint16(target gpu.Enum, data []uint16, usage gpu.Enum) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data)*2, gl.Ptr(data), uint32(usage))
}

func (c *Context) CreateShader(typ gpu.Enum) gpu.Shader {
	return gpu.Shader(gl.CreateShader(uint32(typ)))
}

func (c *Context) ShaderSource(s gpu.Shader, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s), 1, csrc, nil)
	free()
}

func (c *Context) CompileShader(s gpu.Shader) {
	gl.CompileShader(uint32(s))
}

func (c *Context) ShaderCompiled(s gpu.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ShaderInfoLog(s gpu.Shader) string {
	var logLen int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLen)
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(uint32(s), logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) DeleteShader(s gpu.Shader) {
	gl.DeleteShader(uint32(s))
}

func (c *Context) CreateProgram() gpu.Program {
	return gpu.Program(gl.CreateProgram())
}

func (c *Context) AttachShader(p gpu.Program, s gpu.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (c *Context) BindAttribLocation(p gpu.Program, index uint32, name string) {
	gl.BindAttribLocation(uint32(p), index, gl.Str(name+"\x00"))
}

func (c *Context) LinkProgram(p gpu.Program) {
	gl.LinkProgram(uint32(p))
}

func (c *Context) ProgramLinked(p gpu.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ProgramInfoLog(p gpu.Program) string {
	var logLen int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLen)
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(uint32(p), logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) DeleteProgram(p gpu.Program) {
	gl.DeleteProgram(uint32(p))
}

func (c *Context) UseProgram(p gpu.Program) {
	gl.UseProgram(uint32(p))
}

func (c *Context) GetUniformLocation(p gpu.Program, name string) gpu.UniformLocation {
	return gpu.UniformLocation(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

// UniformMatrix4fv uploads m as laid out by math.Mat4.Flatten, which is
// already column-major from GL's point of view.
func (c *Context) UniformMatrix4fv(loc gpu.UniformLocation, m [16]float32) {
	gl.UniformMatrix4fv(int32(loc), 1, false, &m[0])
}

func (c *Context) Uniform4fv(loc gpu.UniformLocation, v [4]float32) {
	gl.Uniform4fv(int32(loc), 1, &v[0])
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (c *Context) VertexAttribPointer(index uint32, size int, typ gpu.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(index, int32(size), uint32(typ), normalized, int32(stride), gl.PtrOffset(offset))
}

func (c *Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) ClearDepth(d float32) {
	gl.ClearDepth(float64(d))
}

func (c *Context) Clear(mask gpu.Enum) {
	gl.Clear(uint32(mask))
}

func (c *Context) Enable(capability gpu.Enum) {
	gl.Enable(uint32(capability))
}

func (c *Context) DrawElements(mode gpu.Enum, count int, typ gpu.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(typ), gl.PtrOffset(offset))
}

func (c *Context) Flush() {
	gl.Flush()
}
